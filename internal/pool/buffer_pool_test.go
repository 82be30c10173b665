package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/internal/pool"
)

func TestRecordBufferComesBackEmptyAfterPut(t *testing.T) {
	buf := pool.GetRecordBuffer()
	buf.Append([]byte("hello"))
	require.Equal(t, 5, buf.Len())

	pool.PutRecordBuffer(buf)

	buf2 := pool.GetRecordBuffer()
	require.Equal(t, 0, buf2.Len(), "a reused buffer must come back empty")
	pool.PutRecordBuffer(buf2)
}

func TestCatalogBufferIndependentFromRecordBuffer(t *testing.T) {
	rec := pool.GetRecordBuffer()
	cat := pool.GetCatalogBuffer()

	rec.Append([]byte{0x01})
	cat.Append([]byte{0x02, 0x03})

	require.Equal(t, 1, rec.Len())
	require.Equal(t, 2, cat.Len())

	pool.PutRecordBuffer(rec)
	pool.PutCatalogBuffer(cat)
}

func TestBufferGrowPreservesContent(t *testing.T) {
	b := pool.NewBuffer(1)
	b.Append([]byte("abc"))
	b.Append([]byte("defghijklmnopqrstuvwxyz"))
	require.Equal(t, "abcdefghijklmnopqrstuvwxyz", string(b.Bytes()))
}

func TestPutNilBufferIsNoop(t *testing.T) {
	require.NotPanics(t, func() { pool.PutRecordBuffer(nil) })
}
