package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
)

func TestClusterRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x02}

	c := &connector.Cluster{}
	require.NoError(t, c.ParsePayload(cursor.NewReader(payload), testContext()))
	require.Equal(t, []uint16{0, 1, 2}, c.ClientIndices)

	w := cursor.NewWriter()
	defer w.Release()
	c.WritePayload(w, testContext())
	require.Equal(t, payload, w.Bytes())
}

func TestClusterSanityOutOfRangeClient(t *testing.T) {
	c := &connector.Cluster{ClientIndices: []uint16{0, 50}}

	sink := diag.NewSink()
	c.Sanity(5, 10, sink)

	require.Equal(t, 1, sink.Len())
}

func TestClusterSanityAllowsNonBackwardReference(t *testing.T) {
	// Cluster has no forward-only requirement, unlike Array/Reference.
	c := &connector.Cluster{ClientIndices: []uint16{0}}

	sink := diag.NewSink()
	c.Sanity(0, 10, sink)

	require.Equal(t, 0, sink.Len())
}
