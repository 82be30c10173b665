package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// FixedPointRange is one of the three range records attached to a
// FixedPoint connector (spec.md §4.7). Prop1/Prop2/Prop3 are only present
// when the owning FixedPoint's rangeFormat/dataVersion select the extended
// shape; HasExtra distinguishes that from the legacy bare-double shape.
type FixedPointRange struct {
	Prop1    uint16
	Prop2    uint16
	Prop3    int32
	Value    float64
	HasExtra bool
}

// FixedPoint is the tags 0x5E (ComplexFixedPt) / 0x5F (FixedPoint) variant
// (spec.md §4.7). Field1C packs several sub-fields; only dataVersion and
// rangeFormat are needed to pick a range record shape, so the rest are
// preserved only as part of the raw Field1C value rather than decomposed
// (spec.md §9 Open Question (a): unknown bits are kept verbatim, not
// reinterpreted).
type FixedPoint struct {
	Tag     format.TypeTag
	Field1C uint16
	Field1E uint16
	Field20 uint32
	Ranges  [3]FixedPointRange
}

func (f *FixedPoint) TypeTag() format.TypeTag { return f.Tag }

func (f *FixedPoint) dataVersion() uint16 { return f.Field1C & 0x0F }

func (f *FixedPoint) rangeFormat() uint16 { return (f.Field1C >> 4) & 0x03 }

// legacyRanges reports whether rangeFormat==1 selects the bare-double
// shape (no Prop1/Prop2/Prop3) rather than the extended one.
func (f *FixedPoint) legacyRanges() bool {
	return f.rangeFormat() == 1 && !(f.Field1E > 0x40 || f.dataVersion() > 0)
}

func (f *FixedPoint) ParsePayload(r *cursor.Reader, _ Context) error {
	field1C, err := r.U16()
	if err != nil {
		return err
	}

	f.Field1C = field1C

	field1E, err := r.U16()
	if err != nil {
		return err
	}

	f.Field1E = field1E

	field20, err := r.U32()
	if err != nil {
		return err
	}

	f.Field20 = field20

	legacy := f.legacyRanges()

	for i := 0; i < 3; i++ {
		switch {
		case f.rangeFormat() == 0:
			d, err := r.Float64()
			if err != nil {
				return err
			}

			f.Ranges[i] = FixedPointRange{Value: d}
		case !legacy:
			p1, err := r.U16()
			if err != nil {
				return err
			}

			p2, err := r.U16()
			if err != nil {
				return err
			}

			p3, err := r.I32()
			if err != nil {
				return err
			}

			d, err := r.Float64()
			if err != nil {
				return err
			}

			f.Ranges[i] = FixedPointRange{Prop1: p1, Prop2: p2, Prop3: p3, Value: d, HasExtra: true}
		default:
			d, err := r.Float64()
			if err != nil {
				return err
			}

			f.Ranges[i] = FixedPointRange{Value: d}
		}
	}

	return nil
}

func (f *FixedPoint) WritePayload(w *cursor.Writer, _ Context) {
	w.PutU16(f.Field1C)
	w.PutU16(f.Field1E)
	w.PutU32(f.Field20)

	legacy := f.legacyRanges()

	for i := 0; i < 3; i++ {
		rg := f.Ranges[i]

		switch {
		case f.rangeFormat() == 0:
			w.PutFloat64(rg.Value)
		case !legacy:
			w.PutU16(rg.Prop1)
			w.PutU16(rg.Prop2)
			w.PutI32(rg.Prop3)
			w.PutFloat64(rg.Value)
		default:
			w.PutFloat64(rg.Value)
		}
	}
}

func (*FixedPoint) Sanity(_, _ int, _ *diag.Sink) {}
