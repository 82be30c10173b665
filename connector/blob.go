package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// Blob covers the string/path/picture family, tags 0x30..0x3F excluding
// 0x37 (Tag, handled separately): a single u32 prop1 (spec.md §4.3).
type Blob struct {
	Tag   format.TypeTag
	Prop1 uint32
}

func (b *Blob) TypeTag() format.TypeTag { return b.Tag }

func (b *Blob) ParsePayload(r *cursor.Reader, _ Context) error {
	v, err := r.U32()
	if err != nil {
		return err
	}

	b.Prop1 = v

	return nil
}

func (b *Blob) WritePayload(w *cursor.Writer, _ Context) { w.PutU32(b.Prop1) }

func (*Blob) Sanity(_, _ int, _ *diag.Sink) {}

// PolyVI is the blob-shaped polymorphic-VI variant, tag 0xF2 (spec.md §4.3).
type PolyVI struct {
	Prop1 uint32
}

func (*PolyVI) TypeTag() format.TypeTag { return format.TagPolyVI }

func (p *PolyVI) ParsePayload(r *cursor.Reader, _ Context) error {
	v, err := r.U32()
	if err != nil {
		return err
	}

	p.Prop1 = v

	return nil
}

func (p *PolyVI) WritePayload(w *cursor.Writer, _ Context) { w.PutU32(p.Prop1) }

func (*PolyVI) Sanity(_, _ int, _ *diag.Sink) {}

// MeasureData is tag 0x54: a single u16 cluster format (spec.md §4.3).
type MeasureData struct {
	ClusterFmt uint16
}

func (*MeasureData) TypeTag() format.TypeTag { return format.TagMeasureData }

func (m *MeasureData) ParsePayload(r *cursor.Reader, _ Context) error {
	v, err := r.U16()
	if err != nil {
		return err
	}

	m.ClusterFmt = v

	return nil
}

func (m *MeasureData) WritePayload(w *cursor.Writer, _ Context) { w.PutU16(m.ClusterFmt) }

func (*MeasureData) Sanity(_, _ int, _ *diag.Sink) {}
