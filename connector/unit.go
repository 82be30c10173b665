package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// PhysUnit is one physical-unit table entry, the non-enum Unit sub-shape
// (spec.md §4.4).
type PhysUnit struct {
	IntVal1 uint16
	IntVal2 uint16
}

// Unit is the numeric-with-units variant, tags 0x15..0x1E (spec.md §4.4).
// Exactly one of EnumLabels or PhysUnits is populated, depending on Tag.
type Unit struct {
	Tag        format.TypeTag
	EnumLabels [][]byte
	PhysUnits  []PhysUnit
	Prop1      uint8

	// tablePadded records whether the enum label table's byte length was
	// odd, so a padding byte follows it; tablePadding is that byte's
	// actual on-wire value, checked by Sanity and always rewritten as 0
	// on Serialize.
	tablePadded  bool
	tablePadding uint8
}

func (u *Unit) TypeTag() format.TypeTag { return u.Tag }

// isEnum reports whether Tag selects the enum sub-shape (UnitUInt8/16/32)
// rather than the physical-unit table.
func (u *Unit) isEnum() bool {
	switch u.Tag {
	case format.TagUnitUInt8, format.TagUnitUInt16, format.TagUnitUInt32:
		return true
	default:
		return false
	}
}

func (u *Unit) ParsePayload(r *cursor.Reader, _ Context) error {
	count, err := r.U16()
	if err != nil {
		return err
	}

	if u.isEnum() {
		tableLen := 0
		u.EnumLabels = make([][]byte, 0, count)

		for i := 0; i < int(count); i++ {
			labelLen, err := r.U8()
			if err != nil {
				return err
			}

			lbl, err := r.ReadBytes(int(labelLen))
			if err != nil {
				return err
			}

			u.EnumLabels = append(u.EnumLabels, append([]byte(nil), lbl...))
			tableLen += 1 + int(labelLen)
		}

		if tableLen%2 != 0 {
			pad, err := r.U8()
			if err != nil {
				return err
			}

			u.tablePadded = true
			u.tablePadding = pad
		}
	} else {
		u.PhysUnits = make([]PhysUnit, 0, count)

		for i := 0; i < int(count); i++ {
			v1, err := r.U16()
			if err != nil {
				return err
			}

			v2, err := r.U16()
			if err != nil {
				return err
			}

			u.PhysUnits = append(u.PhysUnits, PhysUnit{IntVal1: v1, IntVal2: v2})
		}
	}

	prop1, err := r.U8()
	if err != nil {
		return err
	}

	u.Prop1 = prop1

	return nil
}

func (u *Unit) WritePayload(w *cursor.Writer, _ Context) {
	if u.isEnum() {
		w.PutU16(uint16(len(u.EnumLabels))) //nolint:gosec

		tableLen := 0

		for _, lbl := range u.EnumLabels {
			w.PutU8(uint8(len(lbl))) //nolint:gosec
			w.PutBytes(lbl)
			tableLen += 1 + len(lbl)
		}

		if tableLen%2 != 0 {
			w.PutU8(0)
		}
	} else {
		w.PutU16(uint16(len(u.PhysUnits))) //nolint:gosec

		for _, pu := range u.PhysUnits {
			w.PutU16(pu.IntVal1)
			w.PutU16(pu.IntVal2)
		}
	}

	w.PutU8(u.Prop1)
}

func (u *Unit) Sanity(selfIndex, _ int, sink *diag.Sink) {
	if u.Prop1 != 0 {
		sink.Addf(diag.InvariantViolation, selfIndex, "unit prop1 expected 0, got %d", u.Prop1)
	}

	if u.tablePadded && u.tablePadding != 0 {
		sink.Addf(diag.InvariantViolation, selfIndex, "unit enum table padding expected 0, got %d", u.tablePadding)
	}

	if u.isEnum() && len(u.EnumLabels) == 0 {
		sink.Addf(diag.InvariantViolation, selfIndex, "unit enum table is empty")
	}

	if !u.isEnum() && len(u.PhysUnits) == 0 {
		sink.Addf(diag.InvariantViolation, selfIndex, "unit physical table is empty")
	}
}
