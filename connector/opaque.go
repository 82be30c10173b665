package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// Opaque is the fallback for a type tag outside the closed dispatch table
// (spec.md §7 kind 3): the payload bytes are retained verbatim and emitted
// unchanged. This is not an error — only a diag.UnknownVariant finding.
type Opaque struct {
	Tag  format.TypeTag
	Body []byte
}

func (o *Opaque) TypeTag() format.TypeTag { return o.Tag }

func (o *Opaque) ParsePayload(r *cursor.Reader, _ Context) error {
	body, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return err
	}

	o.Body = append([]byte(nil), body...)

	return nil
}

func (o *Opaque) WritePayload(w *cursor.Writer, _ Context) { w.PutBytes(o.Body) }

func (*Opaque) Sanity(_, _ int, _ *diag.Sink) {}
