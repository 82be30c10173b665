package lvtext_test

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/catalog"
	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/lvtext"
	"github.com/ymj120572092/pylabview/lvver"
)

func testContext() connector.Context {
	return connector.Context{Version: lvver.New(7, 0, 0, lvver.StageFinal)}
}

func buildCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	records := []*connector.Connector{
		connector.New(0, 0, nil, &connector.Void{}),
		connector.New(1, 0, []byte("MyUnit"), &connector.Unit{
			Tag:        0x15, // UnitUInt8: selects the enum sub-shape
			EnumLabels: [][]byte{[]byte("A"), []byte("B")},
		}),
		connector.New(2, 0, nil, &connector.Array{ClientIndex: 0}),
	}

	return catalog.New(records)
}

func TestFromCatalogToCatalogInlineRoundTrip(t *testing.T) {
	cat := buildCatalog(t)

	dump, err := lvtext.FromCatalog(cat, testContext(), lvtext.DumpOptions{})
	require.NoError(t, err)
	require.NotNil(t, dump.Dict, "a label was interned so a dictionary must be emitted")

	sink := diag.NewSink()
	round, err := lvtext.ToCatalog(dump.Root, dump.Sidecars, testContext(), sink)
	require.NoError(t, err)
	require.Equal(t, 0, sink.Len())
	require.Equal(t, cat.Len(), round.Len())

	require.IsType(t, &connector.Void{}, round.At(0).Payload)

	unit, ok := round.At(1).Payload.(*connector.Unit)
	require.True(t, ok)
	require.Equal(t, [][]byte{[]byte("A"), []byte("B")}, unit.EnumLabels)
	require.Equal(t, []byte("MyUnit"), round.At(1).Label)

	arr, ok := round.At(2).Payload.(*connector.Array)
	require.True(t, ok)
	require.Equal(t, uint32(0), arr.ClientIndex)
}

func TestFromCatalogOpaqueSidecarRoundTrip(t *testing.T) {
	voidRaw := []byte{0x00, 0x0A, 0x40, 0x00, 0x05, 'H', 'e', 'l', 'l', 'o'}

	sink := diag.NewSink()
	rec := connector.Parse(voidRaw, 0, testContext(), sink)

	// Force opaque emission by classifying as unknown-tag even though it
	// parsed cleanly, exercising the sidecar path directly.
	rec.Payload = &connector.Opaque{Tag: rec.TypeTag, Body: nil}

	cat := catalog.New([]*connector.Connector{rec})

	dump, err := lvtext.FromCatalog(cat, testContext(), lvtext.DumpOptions{})
	require.NoError(t, err)
	require.Len(t, dump.Sidecars, 1)

	roundSink := diag.NewSink()
	round, err := lvtext.ToCatalog(dump.Root, dump.Sidecars, testContext(), roundSink)
	require.NoError(t, err)
	require.Equal(t, voidRaw, round.At(0).RawBytes)
}

func TestElementXMLRoundTrip(t *testing.T) {
	cat := buildCatalog(t)

	dump, err := lvtext.FromCatalog(cat, testContext(), lvtext.DumpOptions{})
	require.NoError(t, err)

	raw, err := xml.Marshal(dump.Root)
	require.NoError(t, err)

	var reparsed lvtext.Element
	require.NoError(t, xml.Unmarshal(raw, &reparsed))

	sink := diag.NewSink()
	round, err := lvtext.ToCatalog(&reparsed, dump.Sidecars, testContext(), sink)
	require.NoError(t, err)
	require.Equal(t, 0, sink.Len())
	require.Equal(t, cat.Len(), round.Len())
}

func TestToCatalogMissingSidecarRecordsFinding(t *testing.T) {
	root := lvtext.NewElement("VCTP")
	rec := lvtext.NewElement("Connector")
	rec.SetAttr("Index", "0")
	rec.SetAttr("Format", "bin")
	rec.SetAttr("Src", "deadbeef")
	root.AddChild(rec)

	sink := diag.NewSink()
	_, err := lvtext.ToCatalog(root, map[string][]byte{}, testContext(), sink)
	require.NoError(t, err)
	require.Equal(t, 1, sink.Len())
	require.Equal(t, diag.TextMismatch, sink.Findings()[0].Kind)
}
