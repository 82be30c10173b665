package label

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSimple(t *testing.T) {
	// length byte (5) + "Hello"
	payload := append([]byte{0x00, 0x00, 0x00}, append([]byte{5}, "Hello"...)...)
	lbl, offset, ok := Find(payload, len(payload), DefaultSearchWindow)
	require.True(t, ok)
	require.Equal(t, "Hello", string(lbl))
	require.Equal(t, 3, offset)
}

func TestFindStripsOneTrailingPaddingByte(t *testing.T) {
	// length byte (2) + "Hi" gives an odd-length label region (3 bytes),
	// so the record carries one trailing zero byte to keep its total
	// length even.
	payload := append([]byte{0x00, 0x00, 0x00}, append([]byte{2}, "Hi"...)...)
	payload = append(payload, 0x00)

	lbl, offset, ok := Find(payload, len(payload), DefaultSearchWindow)
	require.True(t, ok)
	require.Equal(t, "Hi", string(lbl))
	require.Equal(t, 3, offset)
}

func TestFindDoesNotStripPaddingWhenLabelIsEvenLength(t *testing.T) {
	// length byte (5) + "Hello" is already even (6 bytes); no padding
	// byte is present, and the last label byte ('o') must not be
	// mistaken for one.
	payload := append([]byte{0x00, 0x00, 0x00}, append([]byte{5}, "Hello"...)...)

	lbl, offset, ok := Find(payload, len(payload), DefaultSearchWindow)
	require.True(t, ok)
	require.Equal(t, "Hello", string(lbl))
	require.Equal(t, 3, offset)
}

func TestFindIdempotent(t *testing.T) {
	payload := append([]byte{0xAA, 0xBB}, append([]byte{3}, "abc"...)...)
	lbl1, off1, ok1 := Find(payload, len(payload), 0)
	lbl2, off2, ok2 := Find(payload, len(payload), 0)
	require.Equal(t, ok1, ok2)
	require.Equal(t, off1, off2)
	require.Equal(t, lbl1, lbl2)
}

func TestFindNoMatch(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	_, _, ok := Find(payload, len(payload), 0)
	require.False(t, ok)
}

func TestFindRejectsNonPrintable(t *testing.T) {
	// claims length 2 but contains a control byte (0x01) that isn't CR/LF/TAB
	payload := []byte{2, 0x01, 0x41}
	_, _, ok := Find(payload, len(payload), 0)
	require.False(t, ok)
}

func TestEncodeTruncates(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	out := Encode(nil, long)
	require.Equal(t, byte(255), out[0])
	require.Len(t, out, 256)
}

func TestEncodeRoundTrip(t *testing.T) {
	out := Encode([]byte{0xDE, 0xAD}, []byte("Hi"))
	require.Equal(t, []byte{0xDE, 0xAD, 2, 'H', 'i'}, out)
}
