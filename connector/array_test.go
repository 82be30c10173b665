package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// TestArrayOfNumInt32 is spec.md §8 scenario S3.
func TestArrayOfNumInt32(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00}

	a := &connector.Array{Tag: format.TagArray}
	require.NoError(t, a.ParsePayload(cursor.NewReader(payload), testContext()))

	require.Equal(t, []connector.ArrayDim{{Flags: 0x80, FixedSize: 0}}, a.Dims)
	require.Equal(t, uint32(0), a.ClientIndex)

	w := cursor.NewWriter()
	defer w.Release()
	a.WritePayload(w, testContext())
	require.Equal(t, payload, w.Bytes())
}

func TestArraySanityForwardReference(t *testing.T) {
	a := &connector.Array{Tag: format.TagArray, ClientIndex: 5}

	sink := diag.NewSink()
	a.Sanity(1, 10, sink)

	require.Equal(t, 1, sink.Len())
	require.Equal(t, diag.InvariantViolation, sink.Findings()[0].Kind)
}

func TestArraySanityOutOfRangeClient(t *testing.T) {
	a := &connector.Array{Tag: format.TagArray, ClientIndex: 20}

	sink := diag.NewSink()
	a.Sanity(5, 10, sink)

	require.Equal(t, 1, sink.Len())
}

func TestArraySanityDimensionZeroFlagMissing(t *testing.T) {
	a := &connector.Array{Tag: format.TagArray, Dims: []connector.ArrayDim{{Flags: 0x00}}, ClientIndex: 0}

	sink := diag.NewSink()
	a.Sanity(5, 10, sink)

	require.Equal(t, 1, sink.Len())
}
