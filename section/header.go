// Package section implements the 4-byte preamble common to every connector
// record (spec.md §4.2): length, flags, and type tag.
package section

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/format"
)

// HeaderSize is the fixed byte length of a connector record's header.
const HeaderSize = 4

// Header is the common preamble of every connector record.
//
// Length counts all bytes from its own first byte through the end of the
// record, header inclusive (spec.md invariant 1).
type Header struct {
	Length  uint16
	Flags   ConnectorFlags
	TypeTag format.TypeTag
}

// Parse reads a Header from the first HeaderSize bytes of r.
func Parse(r *cursor.Reader) (Header, error) {
	length, err := r.U16()
	if err != nil {
		return Header{}, err
	}

	flagByte, err := r.U8()
	if err != nil {
		return Header{}, err
	}

	tag, err := r.U8()
	if err != nil {
		return Header{}, err
	}

	return Header{
		Length:  length,
		Flags:   ConnectorFlags(flagByte),
		TypeTag: format.TypeTag(tag),
	}, nil
}

// Write appends the header to w. Callers write the header first (with a
// placeholder or final Length), then the variant payload — the header
// never trails its record.
func (h Header) Write(w *cursor.Writer) {
	w.PutU16(h.Length)
	w.PutU8(uint8(h.Flags))
	w.PutU8(uint8(h.TypeTag))
}
