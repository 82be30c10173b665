// Package pool provides pooled, growable byte buffers for the connector
// encoding path, where a fresh buffer would otherwise be allocated for every
// record or every catalog serialized.
package pool

import "sync"

// Default and maximum retained sizes for the two buffer tiers the codec
// needs: one record at a time (small, numerous) and one whole catalog
// (large, infrequent).
const (
	RecordBufferDefaultSize  = 256        // most connector records are well under this
	RecordBufferMaxThreshold = 1024 * 64  // discard outliers instead of pooling them
	CatalogBufferDefaultSize = 1024 * 64  // a few thousand records, typical catalog
	CatalogBufferMaxThreshold = 1024 * 1024 * 16
)

// Buffer is a growable byte slice with an amortized growth strategy, reused
// across Parse/Serialize calls via a sync.Pool.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.B) }

// Reset empties the buffer while retaining its backing array.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Grow ensures at least n more bytes can be appended without reallocating.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	growBy := n
	if cap(b.B) > 0 {
		quadrupled := cap(b.B) * 2
		if quadrupled > growBy {
			growBy = quadrupled
		}
	}

	next := make([]byte, len(b.B), len(b.B)+growBy)
	copy(next, b.B)
	b.B = next
}

// Append appends data, growing the buffer as needed.
func (b *Buffer) Append(data []byte) {
	b.Grow(len(data))
	b.B = append(b.B, data...)
}

// AppendByte appends a single byte, growing the buffer as needed.
func (b *Buffer) AppendByte(v byte) {
	b.Grow(1)
	b.B = append(b.B, v)
}

// bufferPool pools Buffers of a given default/max size tier.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *bufferPool) get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

func (p *bufferPool) put(buf *Buffer) {
	if buf == nil {
		return
	}
	if cap(buf.B) > p.maxThreshold {
		return // let an oversized buffer be garbage collected instead of retained
	}
	buf.Reset()
	p.pool.Put(buf)
}

var (
	recordPool  = newBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	catalogPool = newBufferPool(CatalogBufferDefaultSize, CatalogBufferMaxThreshold)
)

// GetRecordBuffer retrieves a pooled Buffer sized for encoding one connector record.
func GetRecordBuffer() *Buffer { return recordPool.get() }

// PutRecordBuffer returns a record Buffer to its pool.
func PutRecordBuffer(b *Buffer) { recordPool.put(b) }

// GetCatalogBuffer retrieves a pooled Buffer sized for encoding a whole catalog.
func GetCatalogBuffer() *Buffer { return catalogPool.get() }

// PutCatalogBuffer returns a catalog Buffer to its pool.
func PutCatalogBuffer(b *Buffer) { catalogPool.put(b) }
