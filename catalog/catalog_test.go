package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/catalog"
	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/lvver"
)

func testContext() connector.Context {
	return connector.Context{Version: lvver.New(7, 0, 0, lvver.StageFinal)}
}

func buildRaw(records ...[]byte) []byte {
	out := []byte{0, 0, 0, 0}
	total := uint32(len(records)) //nolint:gosec
	out[0] = byte(total >> 24)
	out[1] = byte(total >> 16)
	out[2] = byte(total >> 8)
	out[3] = byte(total)

	for _, r := range records {
		out = append(out, r...)
	}

	return out
}

func TestCatalogParseAndSerializeRoundTrip(t *testing.T) {
	voidRecord := []byte{0x00, 0x04, 0x00, 0x00} // length=4, flags=0, tag=Void
	raw := buildRaw(voidRecord)

	sink := diag.NewSink()
	cat, err := catalog.Parse(raw, testContext(), sink)
	require.NoError(t, err)
	require.Equal(t, 0, sink.Len())
	require.Equal(t, 1, cat.Len())
	require.IsType(t, &connector.Void{}, cat.At(0).Payload)

	out := catalog.Serialize(cat, testContext())
	require.Equal(t, raw, out)
}

func TestCatalogParseTruncatedRecordIsFatal(t *testing.T) {
	raw := buildRaw([]byte{0x00, 0xFF, 0x00, 0x00}) // claims 255 bytes, only 4 present

	sink := diag.NewSink()
	cat, err := catalog.Parse(raw, testContext(), sink)
	require.NoError(t, err)
	require.Equal(t, 0, cat.Len())
	require.True(t, sink.HasFatal())
}

func TestCatalogCheckSanityForwardReference(t *testing.T) {
	// Record 0 is an Array whose client index (1) is not < its own index
	// (0) -> forward-reference violation caught at the catalog level.
	records := []*connector.Connector{
		connector.New(0, 0, nil, &connector.Array{ClientIndex: 1}),
		connector.New(1, 0, nil, &connector.Void{}),
	}

	cat := catalog.New(records)

	sink := diag.NewSink()
	cat.CheckSanity(sink)

	require.GreaterOrEqual(t, sink.Len(), 1)
}

func TestCatalogAtOutOfRange(t *testing.T) {
	cat := catalog.New(nil)
	require.Nil(t, cat.At(0))
	require.Nil(t, cat.At(-1))
}
