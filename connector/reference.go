package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// RefClient is one client owned by a Reference record: a catalog index, a
// 2-byte flag word, and reftype-specific extras (spec.md §4.10).
type RefClient struct {
	Index  uint32
	Flags  uint16
	Extras []byte
}

// Reference is the tag 0x70 variant (spec.md §4.10): a two-byte sub-tag
// selecting a plug-in from connector/refnum, then the plug-in's payload.
//
// ParsePayload reads only the sub-tag and the plug-in's payload; it does
// not read a client list, so Clients is empty after a parse and any client,
// item or nested LVVariant bytes on disk stay inside Body (DefaultPlugin
// consumes every remaining byte). WritePayload emits Body followed by each
// entry of Clients (index, flags, plug-in extras), so Clients is filled only
// by callers that build the record themselves, such as lvtext.
type Reference struct {
	RefType uint16
	Body    []byte
	Clients []RefClient
}

func (*Reference) TypeTag() format.TypeTag { return format.TagRefnum }

func (ref *Reference) ParsePayload(r *cursor.Reader, ctx Context) error {
	reftype, err := r.U16()
	if err != nil {
		return err
	}

	ref.RefType = reftype

	plugin := ctx.refnumFor(reftype)

	body, err := plugin.ParsePayload(r)
	if err != nil {
		return err
	}

	ref.Body = body

	return nil
}

func (ref *Reference) WritePayload(w *cursor.Writer, ctx Context) {
	w.PutU16(ref.RefType)

	plugin := ctx.refnumFor(ref.RefType)
	plugin.WritePayload(w, ref.Body)

	for _, client := range ref.Clients {
		w.PutU2p2(client.Index, false)
		w.PutU16(client.Flags)
		plugin.WriteClientExtras(w, client.Extras)
	}
}

func (ref *Reference) Sanity(selfIndex, catalogSize int, sink *diag.Sink) {
	if selfIndex == NestedIndex {
		return
	}

	for _, client := range ref.Clients {
		if int(client.Index) >= catalogSize {
			sink.Addf(diag.InvariantViolation, selfIndex, "reference client index %d out of range", client.Index)
		} else if int(client.Index) >= selfIndex {
			sink.Addf(diag.InvariantViolation, selfIndex, "reference client index %d is not strictly less than owning record %d", client.Index, selfIndex)
		}
	}
}
