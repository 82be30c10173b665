package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/lvver"
)

func TestTagUserDefinedIdentRoundTrip(t *testing.T) {
	ctx := connector.Context{Version: lvver.TagIdentSince}

	tg := &connector.Tag{
		Prop1:   0xFFFFFFFF,
		TagType: connector.TagTypeUserDefined,
		Ident:   []byte("Foo"),
	}

	w := cursor.NewWriter()
	defer w.Release()
	tg.WritePayload(w, ctx)

	round := &connector.Tag{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), ctx))
	require.Equal(t, tg.Ident, round.Ident)
	require.Equal(t, tg.TagType, round.TagType)
}

func TestTagSanityConstProp1(t *testing.T) {
	tg := &connector.Tag{Prop1: 0}

	sink := diag.NewSink()
	tg.Sanity(0, 0, sink)

	require.Equal(t, 1, sink.Len())
}

func TestTagCarriesVariantGate(t *testing.T) {
	ctx := connector.Context{Version: lvver.New(8, 2, 1, lvver.StageFinal)}

	tg := &connector.Tag{Prop1: 0xFFFFFFFF, TagType: 1, Variant: []byte{0x01, 0x02, 0x03}}

	w := cursor.NewWriter()
	defer w.Release()
	tg.WritePayload(w, ctx)

	round := &connector.Tag{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), ctx))
	require.Equal(t, tg.Variant, round.Variant)
}
