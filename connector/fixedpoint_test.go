package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/format"
)

func TestFixedPointLegacyDoubleRanges(t *testing.T) {
	fp := &connector.FixedPoint{
		Tag:     format.TagFixedPoint,
		Field1C: 0x0010, // rangeFormat=1, dataVersion=0, field1E==0 -> legacy shape
		Field1E: 0,
		Field20: 0,
		Ranges: [3]connector.FixedPointRange{
			{Value: 1.5},
			{Value: 2.5},
			{Value: 3.5},
		},
	}

	w := cursor.NewWriter()
	defer w.Release()
	fp.WritePayload(w, testContext())

	round := &connector.FixedPoint{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), testContext()))
	require.Equal(t, fp.Ranges, round.Ranges)
}

func TestFixedPointRangeFormatZeroDoubles(t *testing.T) {
	fp := &connector.FixedPoint{
		Tag:     format.TagFixedPoint,
		Field1C: 0x0000, // rangeFormat=0 -> bare double shape regardless of extra fields
		Ranges: [3]connector.FixedPointRange{
			{Value: 1},
			{Value: 2},
			{Value: 3},
		},
	}

	w := cursor.NewWriter()
	defer w.Release()
	fp.WritePayload(w, testContext())

	round := &connector.FixedPoint{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), testContext()))
	require.Equal(t, fp.Ranges, round.Ranges)
}

func TestFixedPointExtendedRangesWithProps(t *testing.T) {
	fp := &connector.FixedPoint{
		Tag:     format.TagFixedPoint,
		Field1C: 0x0010, // rangeFormat=1
		Field1E: 0x41,   // forces the non-legacy branch since Field1E > 0x40
		Ranges: [3]connector.FixedPointRange{
			{Prop1: 1, Prop2: 2, Prop3: -3, Value: 1.25, HasExtra: true},
			{Prop1: 4, Prop2: 5, Prop3: 6, Value: 2.5, HasExtra: true},
			{Prop1: 7, Prop2: 8, Prop3: 9, Value: 3.75, HasExtra: true},
		},
	}

	w := cursor.NewWriter()
	defer w.Release()
	fp.WritePayload(w, testContext())

	round := &connector.FixedPoint{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), testContext()))
	require.Equal(t, fp.Ranges, round.Ranges)
}
