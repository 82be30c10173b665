package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
)

func TestReferenceDefaultPluginRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x2A, 0xDE, 0xAD, 0xBE, 0xEF}

	ref := &connector.Reference{}
	require.NoError(t, ref.ParsePayload(cursor.NewReader(payload), testContext()))

	require.Equal(t, uint16(0x002A), ref.RefType)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, ref.Body)

	w := cursor.NewWriter()
	defer w.Release()
	ref.WritePayload(w, testContext())
	require.Equal(t, payload, w.Bytes())
}

func TestReferenceSanityForwardOnly(t *testing.T) {
	ref := &connector.Reference{
		Clients: []connector.RefClient{{Index: 9}},
	}

	sink := diag.NewSink()
	ref.Sanity(3, 20, sink)

	require.Equal(t, 1, sink.Len())
	require.Equal(t, diag.InvariantViolation, sink.Findings()[0].Kind)
}
