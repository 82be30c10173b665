package connector

import (
	"fmt"

	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// typeDefNestedLengthBias is the undocumented +4 the nested connector's
// header length field carries on disk relative to its real byte span
// (spec.md §4.5, §9 Open Question (c)). Preserved on round-trip, never
// "corrected".
const typeDefNestedLengthBias = 4

// TypeDef is the tag 0xF1 variant (spec.md §4.5): a flag word, a label
// table, then exactly one nested sub-connector (spec.md invariant 5).
type TypeDef struct {
	Flag1  uint32
	Labels [][]byte
	Nested *Connector
}

func (*TypeDef) TypeTag() format.TypeTag { return format.TagTypeDef }

func (t *TypeDef) ParsePayload(r *cursor.Reader, ctx Context) error {
	flag1, err := r.U32()
	if err != nil {
		return err
	}

	t.Flag1 = flag1

	labelCount, err := r.U32()
	if err != nil {
		return err
	}

	t.Labels = make([][]byte, 0, labelCount)

	for i := uint32(0); i < labelCount; i++ {
		ll, err := r.U8()
		if err != nil {
			return err
		}

		lbl, err := r.ReadBytes(int(ll))
		if err != nil {
			return err
		}

		t.Labels = append(t.Labels, append([]byte(nil), lbl...))
	}

	nested, err := parseNestedConnector(r, ctx, typeDefNestedLengthBias)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingNested, err)
	}

	t.Nested = nested

	return nil
}

func (t *TypeDef) WritePayload(w *cursor.Writer, ctx Context) {
	w.PutU32(t.Flag1)
	w.PutU32(uint32(len(t.Labels))) //nolint:gosec

	for _, lbl := range t.Labels {
		w.PutU8(uint8(len(lbl))) //nolint:gosec
		w.PutBytes(lbl)
	}

	writeNestedConnector(w, t.Nested, ctx, typeDefNestedLengthBias)
}

func (t *TypeDef) Sanity(selfIndex, catalogSize int, sink *diag.Sink) {
	if t.Nested == nil {
		sink.Addf(diag.InvariantViolation, selfIndex, "typedef missing its one nested connector")
		return
	}

	if t.Nested.Index != NestedIndex {
		sink.Addf(diag.InvariantViolation, selfIndex, "typedef nested connector index is not the nested sentinel")
	}

	t.Nested.CheckSanity(catalogSize, sink)
}
