package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

func TestBlockSingleClientRoundTrip(t *testing.T) {
	b := &connector.BlockSingleClient{Tag: format.TagTypeBlock, ClientIndex: 3}

	w := cursor.NewWriter()
	defer w.Release()
	b.WritePayload(w, testContext())

	round := &connector.BlockSingleClient{Tag: format.TagTypeBlock}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), testContext()))
	require.Equal(t, b.ClientIndex, round.ClientIndex)
}

func TestBlockSingleClientSanityOutOfRange(t *testing.T) {
	b := &connector.BlockSingleClient{Tag: format.TagTypeBlock, ClientIndex: 99}

	sink := diag.NewSink()
	b.Sanity(2, 10, sink)

	require.Equal(t, 1, sink.Len())
}

func TestBlockSingleClientSanitySkippedWhenNested(t *testing.T) {
	b := &connector.BlockSingleClient{Tag: format.TagTypeBlock, ClientIndex: 99}

	sink := diag.NewSink()
	b.Sanity(connector.NestedIndex, 10, sink)

	require.Equal(t, 0, sink.Len())
}

func TestBlockRepeatedRoundTrip(t *testing.T) {
	b := &connector.BlockRepeated{Tag: format.TagAlignedBlock, Prop1: 0xAABBCCDD, Prop2: 0x1122}

	w := cursor.NewWriter()
	defer w.Release()
	b.WritePayload(w, testContext())

	round := &connector.BlockRepeated{Tag: format.TagAlignedBlock}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), testContext()))
	require.Equal(t, b.Prop1, round.Prop1)
	require.Equal(t, b.Prop2, round.Prop2)
}
