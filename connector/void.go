package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// Void is the empty-payload variant, tag 0x00 (spec.md §4.3).
type Void struct{}

func (*Void) TypeTag() format.TypeTag { return format.TagVoid }

func (*Void) ParsePayload(_ *cursor.Reader, _ Context) error { return nil }

func (*Void) WritePayload(_ *cursor.Writer, _ Context) {}

func (*Void) Sanity(_, _ int, _ *diag.Sink) {}
