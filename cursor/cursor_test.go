package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU2p2NarrowRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x7FFF, 0xFFFE} {
		w := NewWriter()
		w.PutU2p2(v, false)
		require.Len(t, w.Bytes(), 2)

		r := NewReader(w.Bytes())
		got, err := r.U2p2()
		require.NoError(t, err)
		require.Equal(t, v, got)
		w.Release()
	}
}

func TestU2p2WideSentinel(t *testing.T) {
	w := NewWriter()
	w.PutU2p2(0x12345, false)
	require.Equal(t, []byte{0xFF, 0xFF, 0x00, 0x01, 0x23, 0x45}, w.Bytes())

	r := NewReader(w.Bytes())
	got, err := r.U2p2()
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345), got)
	w.Release()
}

func TestU2p2WideBoundary(t *testing.T) {
	for _, v := range []uint32{0xFFFF, 0x10000} {
		w := NewWriter()
		w.PutU2p2(v, false)
		require.Len(t, w.Bytes(), 6)

		r := NewReader(w.Bytes())
		got, err := r.U2p2()
		require.NoError(t, err)
		require.Equal(t, v, got)
		w.Release()
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.U16()
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestFloat64RoundTrip(t *testing.T) {
	w := NewWriter()
	w.PutFloat64(3.140625)
	r := NewReader(w.Bytes())
	got, err := r.Float64()
	require.NoError(t, err)
	require.InDelta(t, 3.140625, got, 0)
	w.Release()
}
