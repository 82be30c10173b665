package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// TestUnitEnum is spec.md §8 scenario S2.
func TestUnitEnum(t *testing.T) {
	payload := []byte{0x00, 0x02, 0x01, 'A', 0x02, 'B', 'B', 0x00, 0x00}

	u := &connector.Unit{Tag: format.TagUnitUInt8}
	require.NoError(t, u.ParsePayload(cursor.NewReader(payload), testContext()))

	require.Equal(t, [][]byte{[]byte("A"), []byte("BB")}, u.EnumLabels)
	require.Equal(t, uint8(0), u.Prop1)

	w := cursor.NewWriter()
	defer w.Release()
	u.WritePayload(w, testContext())
	require.Equal(t, payload, w.Bytes())
}

func TestUnitSanityFlagsNonzeroEnumPadding(t *testing.T) {
	// Same shape as TestUnitEnum but the padding byte before prop1 is
	// 0x07 instead of the expected 0x00.
	payload := []byte{0x00, 0x02, 0x01, 'A', 0x02, 'B', 'B', 0x07, 0x00}

	u := &connector.Unit{Tag: format.TagUnitUInt8}
	require.NoError(t, u.ParsePayload(cursor.NewReader(payload), testContext()))

	sink := diag.NewSink()
	u.Sanity(0, 0, sink)

	require.Equal(t, 1, sink.Len())
	require.Equal(t, diag.InvariantViolation, sink.Findings()[0].Kind)

	// Serialize always rewrites the padding byte as 0, so re-encoding a
	// malformed-but-parseable input silently normalizes it.
	w := cursor.NewWriter()
	defer w.Release()
	u.WritePayload(w, testContext())
	require.Equal(t, byte(0x00), w.Bytes()[7])
}

func TestUnitPhysical(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x00, 0x2A, 0x00, 0x00, 0x00}

	u := &connector.Unit{Tag: format.TagUnitFloat64}
	require.NoError(t, u.ParsePayload(cursor.NewReader(payload), testContext()))

	require.Equal(t, []connector.PhysUnit{{IntVal1: 0x2A, IntVal2: 0}}, u.PhysUnits)

	w := cursor.NewWriter()
	defer w.Release()
	u.WritePayload(w, testContext())
	require.Equal(t, payload, w.Bytes())
}
