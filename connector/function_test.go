package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/lvver"
)

// TestFunctionNarrowClientFlags is spec.md §8 scenario S4 (pre-8.0 version:
// no thrall field, 2-byte per-client flags).
func TestFunctionNarrowClientFlags(t *testing.T) {
	payload := []byte{
		0x00, 0x02, // count = 2
		0x00, 0x00, // client 0
		0x00, 0x01, // client 1
		0x00, 0x00, // fflags
		0x00, 0x41, // pattern
		0x00, 0x00, // client 0 flags (u16)
		0x00, 0x00, // client 1 flags (u16)
	}

	ctx := connector.Context{Version: lvver.New(7, 0, 0, lvver.StageFinal)}

	f := &connector.Function{}
	require.NoError(t, f.ParsePayload(cursor.NewReader(payload), ctx))

	require.Equal(t, []uint32{0, 1}, f.ClientIndices)
	require.Equal(t, uint16(0), f.FFlags)
	require.Equal(t, uint16(0x0041), f.Pattern)
	require.Equal(t, []uint32{0, 0}, f.ClientFlags)
	require.Equal(t, uint16(0), f.HasThrall)

	w := cursor.NewWriter()
	defer w.Release()
	f.WritePayload(w, ctx)
	require.Equal(t, payload, w.Bytes())
}

func TestFunctionWideClientFlagsWiden(t *testing.T) {
	ctx := connector.Context{Version: lvver.WideClientFlagsSince}

	f := &connector.Function{
		ClientIndices: []uint32{0, 1},
		Pattern:       0x0041,
		ClientFlags:   []uint32{0, 0},
	}

	w := cursor.NewWriter()
	defer w.Release()
	f.WritePayload(w, ctx)

	// count(2) + 2*u2p2(2 each, narrow) + fflags(2) + pattern(2)
	// + 2*u32 client flags(8) + has_thrall(2, since WideClientFlagsSince
	// also satisfies HasThrallField's lower threshold).
	require.Equal(t, 2+4+2+2+8+2, w.Len())

	round := &connector.Function{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), ctx))
	require.Equal(t, f.ClientIndices, round.ClientIndices)
	require.Equal(t, f.ClientFlags, round.ClientFlags)
}

// TestFunctionExtraFieldsAndTrailingClient exercises the fflags == 0x8800
// boundary behavior from spec.md §8 ("both extra fields and trailing
// special client").
func TestFunctionExtraFieldsAndTrailingClient(t *testing.T) {
	ctx := connector.Context{Version: lvver.New(7, 0, 0, lvver.StageFinal)}

	f := &connector.Function{
		ClientIndices:  []uint32{0},
		FFlags:         0x8800,
		Pattern:        0x0001,
		ClientFlags:    []uint32{0},
		Field6:         7,
		Field7:         9,
		ExtraClient:    3,
		HasExtraClient: true,
	}

	w := cursor.NewWriter()
	defer w.Release()
	f.WritePayload(w, ctx)

	round := &connector.Function{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(w.Bytes()), ctx))

	require.Equal(t, f.Field6, round.Field6)
	require.Equal(t, f.Field7, round.Field7)
	require.True(t, round.HasExtraClient)
	require.Equal(t, f.ExtraClient, round.ExtraClient)
}

// TestFunctionThrallOffsetByOne is spec.md §8 property 7.
func TestFunctionThrallOffsetByOne(t *testing.T) {
	ctx := connector.Context{Version: lvver.ThrallOffsetByOneSince}

	f := &connector.Function{
		ClientIndices: []uint32{0, 1},
		ClientFlags:   []uint32{0, 0},
		HasThrall:     1,
		ThrallSources: [][]uint8{{0}, {}},
	}

	w := cursor.NewWriter()
	defer w.Release()
	f.WritePayload(w, ctx)

	bytes := w.Bytes()
	// count(2) + 2*u2p2 clients(4) + fflags(2) + pattern(2)
	// + 2*u16 client flags(4, narrow since WideClientFlagsSince is not
	// reached) + has_thrall(2) = 16 bytes before the thrall section.
	thrallStart := 16
	require.Equal(t, byte(1), bytes[thrallStart], "source 0 written as 0+1")
	require.Equal(t, byte(0), bytes[thrallStart+1], "terminator for client 0")
	require.Equal(t, byte(0), bytes[thrallStart+2], "client 1 has no sources, only terminator")

	round := &connector.Function{}
	require.NoError(t, round.ParsePayload(cursor.NewReader(bytes), ctx))
	require.Equal(t, []uint8{0}, round.ThrallSources[0])
	require.Empty(t, round.ThrallSources[1])
}
