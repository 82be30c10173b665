package cursor

import (
	"math"

	"github.com/ymj120572092/pylabview/endian"
	"github.com/ymj120572092/pylabview/internal/pool"
)

// Writer is an appending, big-endian byte cursor backed by a pooled buffer.
//
// Release returns the backing buffer to its pool; callers that need the
// encoded bytes to outlive the Writer must copy them first (Bytes does not
// clone).
type Writer struct {
	buf    *pool.Buffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer backed by a buffer sized for one connector record.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetRecordBuffer(), engine: endian.GetBigEndianEngine()}
}

// NewCatalogWriter creates a Writer backed by a buffer sized for a whole catalog.
func NewCatalogWriter() *Writer {
	return &Writer{buf: pool.GetCatalogBuffer(), engine: endian.GetBigEndianEngine()}
}

// Bytes returns the bytes written so far. The slice aliases the internal
// buffer and is invalidated by the next Release.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// Release returns the backing buffer to its pool. The Writer must not be
// used afterwards.
func (w *Writer) Release() {
	pool.PutRecordBuffer(w.buf)
}

// ReleaseCatalog returns a catalog-tier backing buffer to its pool.
func (w *Writer) ReleaseCatalog() {
	pool.PutCatalogBuffer(w.buf)
}

// PutBytes appends raw bytes verbatim.
func (w *Writer) PutBytes(b []byte) { w.buf.Append(b) }

// PutU8 appends one unsigned byte.
func (w *Writer) PutU8(v uint8) { w.buf.AppendByte(v) }

// PutU16 appends a big-endian uint16.
func (w *Writer) PutU16(v uint16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// PutU32 appends a big-endian uint32.
func (w *Writer) PutU32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// PutU64 appends a big-endian uint64.
func (w *Writer) PutU64(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// PutI8 appends one signed byte.
func (w *Writer) PutI8(v int8) { w.PutU8(uint8(v)) } //nolint:gosec

// PutI16 appends a big-endian int16.
func (w *Writer) PutI16(v int16) { w.PutU16(uint16(v)) } //nolint:gosec

// PutI32 appends a big-endian int32.
func (w *Writer) PutI32(v int32) { w.PutU32(uint32(v)) } //nolint:gosec

// PutI64 appends a big-endian int64.
func (w *Writer) PutI64(v int64) { w.PutU64(uint64(v)) } //nolint:gosec

// PutFloat64 appends a big-endian IEEE-754 double.
func (w *Writer) PutFloat64(v float64) { w.PutU64(math.Float64bits(v)) }

// PutU2p2 appends v using the variable-width unsigned integer primitive.
//
// Values representable in the narrow 16-bit form are written as two bytes;
// anything that would require the 0xFFFF sentinel value, or any value the
// caller marks via forceWide, is written wide (sentinel + 4-byte value).
func (w *Writer) PutU2p2(v uint32, forceWide bool) {
	if !forceWide && v < 0xFFFF {
		w.PutU16(uint16(v))
		return
	}

	w.PutU16(0xFFFF)
	w.PutU32(v)
}
