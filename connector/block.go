package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// BlockSingleClient covers TypeBlock, VoidBlock, AlignmentMarker and PtrTo:
// a single client index encoded as U2p2, nothing else (spec.md §4.8).
type BlockSingleClient struct {
	Tag         format.TypeTag
	ClientIndex uint32
}

func (b *BlockSingleClient) TypeTag() format.TypeTag { return b.Tag }

func (b *BlockSingleClient) ParsePayload(r *cursor.Reader, _ Context) error {
	idx, err := r.U2p2()
	if err != nil {
		return err
	}

	b.ClientIndex = idx

	return nil
}

func (b *BlockSingleClient) WritePayload(w *cursor.Writer, _ Context) {
	w.PutU2p2(b.ClientIndex, false)
}

func (b *BlockSingleClient) Sanity(selfIndex, catalogSize int, sink *diag.Sink) {
	if selfIndex == NestedIndex {
		return
	}

	if int(b.ClientIndex) >= catalogSize {
		sink.Addf(diag.InvariantViolation, selfIndex, "block client index %d out of range", b.ClientIndex)
	}
}

// BlockRepeated covers AlignedBlock and RepeatedBlock: u32 prop1, u16 prop2
// (spec.md §4.8).
type BlockRepeated struct {
	Tag   format.TypeTag
	Prop1 uint32
	Prop2 uint16
}

func (b *BlockRepeated) TypeTag() format.TypeTag { return b.Tag }

func (b *BlockRepeated) ParsePayload(r *cursor.Reader, _ Context) error {
	p1, err := r.U32()
	if err != nil {
		return err
	}

	p2, err := r.U16()
	if err != nil {
		return err
	}

	b.Prop1, b.Prop2 = p1, p2

	return nil
}

func (b *BlockRepeated) WritePayload(w *cursor.Writer, _ Context) {
	w.PutU32(b.Prop1)
	w.PutU16(b.Prop2)
}

func (*BlockRepeated) Sanity(_, _ int, _ *diag.Sink) {}
