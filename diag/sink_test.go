package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinkAccumulatesNonFatal(t *testing.T) {
	s := NewSink()
	s.Addf(InvariantViolation, 3, "client index %d out of range", 9)
	require.Equal(t, 1, s.Len())
	require.NoError(t, s.Err())
	require.False(t, s.HasFatal())
}

func TestSinkFatalJoined(t *testing.T) {
	s := NewSink()
	s.Add(Finding{Kind: Structural, RecordIndex: 1, Message: "bad header", Fatal: true})
	s.Add(Finding{Kind: Structural, RecordIndex: 2, Message: "recursive nesting", Fatal: true})
	require.True(t, s.HasFatal())
	require.Error(t, s.Err())
}

func TestSinkReset(t *testing.T) {
	s := NewSink()
	s.Addf(UnknownVariant, -1, "tag 0x%02x unknown", 0x99)
	s.Reset()
	require.Equal(t, 0, s.Len())
}
