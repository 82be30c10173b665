package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// ArrayDim is one dimension entry: a flags byte packed into the high byte
// of an on-disk u32, and a 24-bit fixed size in the low bytes.
type ArrayDim struct {
	Flags     uint8
	FixedSize uint32
}

// DimFlag0x80 marks dimension 0's flags byte per spec.md invariant 3.
const DimFlag0x80 uint8 = 0x80

const arrayMaxDims = 64

// Array is the array variant, tags 0x40..0x4F (spec.md §4.3): a dimension
// table followed by exactly one element-type client.
type Array struct {
	Tag         format.TypeTag
	Dims        []ArrayDim
	ClientIndex uint32
}

func (a *Array) TypeTag() format.TypeTag { return a.Tag }

func (a *Array) ParsePayload(r *cursor.Reader, _ Context) error {
	ndim, err := r.U16()
	if err != nil {
		return err
	}

	a.Dims = make([]ArrayDim, ndim)

	for i := range a.Dims {
		packed, err := r.U32()
		if err != nil {
			return err
		}

		a.Dims[i] = ArrayDim{
			Flags:     uint8(packed >> 24), //nolint:gosec
			FixedSize: packed & 0x00FFFFFF,
		}
	}

	idx, err := r.U2p2()
	if err != nil {
		return err
	}

	a.ClientIndex = idx

	return nil
}

func (a *Array) WritePayload(w *cursor.Writer, _ Context) {
	w.PutU16(uint16(len(a.Dims))) //nolint:gosec

	for _, d := range a.Dims {
		packed := uint32(d.Flags)<<24 | (d.FixedSize & 0x00FFFFFF)
		w.PutU32(packed)
	}

	w.PutU2p2(a.ClientIndex, false)
}

func (a *Array) Sanity(selfIndex, catalogSize int, sink *diag.Sink) {
	if len(a.Dims) > arrayMaxDims {
		sink.Addf(diag.InvariantViolation, selfIndex, "array dimension count %d exceeds %d", len(a.Dims), arrayMaxDims)
	}

	if len(a.Dims) > 0 && a.Dims[0].Flags&DimFlag0x80 == 0 {
		sink.Addf(diag.InvariantViolation, selfIndex, "array dimension 0 missing 0x80 flag bit")
	}

	if selfIndex == NestedIndex {
		return
	}

	if int(a.ClientIndex) >= catalogSize {
		sink.Addf(diag.InvariantViolation, selfIndex, "array client index %d out of range", a.ClientIndex)
	} else if int(a.ClientIndex) >= selfIndex {
		sink.Addf(diag.InvariantViolation, selfIndex, "array client index %d is not strictly less than owning record %d", a.ClientIndex, selfIndex)
	}
}
