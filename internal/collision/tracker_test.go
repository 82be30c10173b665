package collision_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/internal/collision"
)

func TestTrackerSameBodyIsNotACollision(t *testing.T) {
	tr := collision.NewTracker()

	require.False(t, tr.Track("abc", []byte("hello")))
	require.False(t, tr.Track("abc", []byte("hello")))
	require.False(t, tr.HasCollision())
	require.Equal(t, 1, tr.Count())
}

func TestTrackerDifferentBodySameNameIsACollision(t *testing.T) {
	tr := collision.NewTracker()

	require.False(t, tr.Track("abc", []byte("hello")))
	require.True(t, tr.Track("abc", []byte("world")))
	require.True(t, tr.HasCollision())
}

func TestTrackerReset(t *testing.T) {
	tr := collision.NewTracker()
	tr.Track("abc", []byte("hello"))
	tr.Track("abc", []byte("world"))
	require.True(t, tr.HasCollision())

	tr.Reset()
	require.False(t, tr.HasCollision())
	require.Equal(t, 0, tr.Count())
}
