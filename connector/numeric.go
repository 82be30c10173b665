package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// Numeric is the bare numeric primitive variant, tags 0x01..0x0E. The tag
// itself names the numeric kind; there is no payload (spec.md §4.3).
type Numeric struct {
	Tag format.TypeTag
}

func (n *Numeric) TypeTag() format.TypeTag { return n.Tag }

func (*Numeric) ParsePayload(_ *cursor.Reader, _ Context) error { return nil }

func (*Numeric) WritePayload(_ *cursor.Writer, _ Context) {}

func (*Numeric) Sanity(_, _ int, _ *diag.Sink) {}

// Boolean is the boolean variant, tags 0x20/0x21. No payload.
type Boolean struct {
	Tag format.TypeTag
}

func (b *Boolean) TypeTag() format.TypeTag { return b.Tag }

func (*Boolean) ParsePayload(_ *cursor.Reader, _ Context) error { return nil }

func (*Boolean) WritePayload(_ *cursor.Writer, _ Context) {}

func (*Boolean) Sanity(_, _ int, _ *diag.Sink) {}

// LVVariant is tag 0x53, explicitly treated as Void-shaped at the top level
// (spec.md §4.3). The richer embedded form nested inside a Tag record is
// handled separately (see tag.go).
type LVVariant struct{}

func (*LVVariant) TypeTag() format.TypeTag { return format.TagLVVariant }

func (*LVVariant) ParsePayload(_ *cursor.Reader, _ Context) error { return nil }

func (*LVVariant) WritePayload(_ *cursor.Writer, _ Context) {}

func (*LVVariant) Sanity(_, _ int, _ *diag.Sink) {}

// Pointer is the Void-shaped half of the pointer family, tag 0x80.
type Pointer struct{}

func (*Pointer) TypeTag() format.TypeTag { return format.TagPtr }

func (*Pointer) ParsePayload(_ *cursor.Reader, _ Context) error { return nil }

func (*Pointer) WritePayload(_ *cursor.Writer, _ Context) {}

func (*Pointer) Sanity(_, _ int, _ *diag.Sink) {}
