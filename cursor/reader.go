package cursor

import (
	"math"

	"github.com/ymj120572092/pylabview/endian"
)

// Reader is a forward-only cursor over a byte buffer.
//
// A Reader never copies the underlying buffer; slices returned by Bytes
// alias it. A Reader is not safe for concurrent use.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at the start of data, decoding
// multi-byte integers with the VI resource format's big-endian order.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, engine: endian.GetBigEndianEngine()}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Bytes returns the full underlying buffer, unaffected by the read position.
//
// Callers that need to look behind or ahead of the cursor (the label search
// window, for example) use this instead of advancing and rewinding.
func (r *Reader) Bytes() []byte { return r.data }

// Seek repositions the cursor to an absolute offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 {
		return ErrNegativeLength
	}
	if pos > len(r.data) {
		return ErrShortBuffer
	}
	r.pos = pos

	return nil
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.pos + n)
}

// ReadBytes returns the next n bytes and advances the cursor.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if r.pos+n > len(r.data) {
		return nil, ErrShortBuffer
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// U8 reads one unsigned byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// U16 reads a big-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// U32 reads a big-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// U64 reads a big-endian uint64.
func (r *Reader) U64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// I8 reads one signed byte.
func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err //nolint:gosec
}

// I16 reads a big-endian int16.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err //nolint:gosec
}

// I32 reads a big-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err //nolint:gosec
}

// I64 reads a big-endian int64.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err //nolint:gosec
}

// Float64 reads a big-endian IEEE-754 double.
func (r *Reader) Float64() (float64, error) {
	v, err := r.U64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// U2p2 reads the variable-width unsigned integer primitive.
//
// Encoding: read a 16-bit value v; if v != 0xFFFF, the integer is v.
// Otherwise a following 32-bit value is the integer (the "wide" form).
func (r *Reader) U2p2() (uint32, error) {
	narrow, err := r.U16()
	if err != nil {
		return 0, err
	}
	if narrow != 0xFFFF {
		return uint32(narrow), nil
	}

	return r.U32()
}
