// Package rsrc sketches the outer resource-file envelope that spec.md §6
// treats as an external collaborator: the chained resource headers and the
// block directory they lead to. Its only job is locating a named block's
// byte range so catalog.Parse/catalog.Serialize can take over; payload
// dispatch for anything but the VCTP block is out of scope and represented
// only as an opaque Block.
package rsrc

import (
	"fmt"

	"github.com/ymj120572092/pylabview/cursor"
)

// HeaderSize is the byte length of one chained resource header, grounded on
// original_source/readRSRC.py's RSRCHeader ctypes layout (6+2+4+4+4+4).
const HeaderSize = 24

var magic = [6]byte{'R', 'S', 'R', 'C', '\r', '\n'}
var lbvwTag = [4]byte{'L', 'B', 'V', 'W'}

// Header is one chained resource header (spec.md §6).
type Header struct {
	Version  uint16
	Type     FileType
	Offset   uint32
	Size     uint32
	position int // absolute file offset this header was read from
}

// ParseHeader reads one Header starting at r's current position.
func ParseHeader(r *cursor.Reader) (Header, error) {
	pos := r.Pos()

	id1, err := r.ReadBytes(6)
	if err != nil {
		return Header{}, fmt.Errorf("rsrc: reading magic: %w", err)
	}

	if string(id1) != string(magic[:]) {
		return Header{}, fmt.Errorf("%w: got %q", ErrBadMagic, id1)
	}

	version, err := r.U16()
	if err != nil {
		return Header{}, fmt.Errorf("rsrc: reading version: %w", err)
	}

	var fileTag [4]byte

	ftBytes, err := r.ReadBytes(4)
	if err != nil {
		return Header{}, fmt.Errorf("rsrc: reading file type: %w", err)
	}

	copy(fileTag[:], ftBytes)

	ftype := RecognizeFileType(fileTag)
	if ftype == FileTypeNone {
		return Header{}, fmt.Errorf("%w: %q", ErrUnknownFileType, ftBytes)
	}

	id4, err := r.ReadBytes(4)
	if err != nil {
		return Header{}, fmt.Errorf("rsrc: reading LBVW tag: %w", err)
	}

	if string(id4) != string(lbvwTag[:]) {
		return Header{}, fmt.Errorf("%w: got %q", ErrBadLBVW, id4)
	}

	offset, err := r.U32()
	if err != nil {
		return Header{}, fmt.Errorf("rsrc: reading offset: %w", err)
	}

	size, err := r.U32()
	if err != nil {
		return Header{}, fmt.Errorf("rsrc: reading size: %w", err)
	}

	return Header{Version: version, Type: ftype, Offset: offset, Size: size, position: pos}, nil
}

// Write appends h to w in the same layout ParseHeader reads.
func (h Header) Write(w *cursor.Writer) {
	w.PutBytes(magic[:])
	w.PutU16(h.Version)

	tag := h.Type.Tag()
	w.PutBytes(tag[:])
	w.PutBytes(lbvwTag[:])
	w.PutU32(h.Offset)
	w.PutU32(h.Size)
}

// Last reports whether h terminates the header chain: the chain ends when
// a header's offset points back to its own starting position.
func (h Header) Last() bool { return int(h.Offset) == h.position }
