package rsrc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/rsrc"
)

func TestWriteParseRoundTrip(t *testing.T) {
	vctp := []byte{0x00, 0x0A, 0x40, 0x00, 'h', 'i'}
	icon := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	raw := rsrc.Write(rsrc.FileTypeVI, []rsrc.Block{
		{Tag: [4]byte{'V', 'C', 'T', 'P'}, Data: vctp},
		{Tag: [4]byte{'i', 'c', 'l', '8'}, Data: icon},
	})

	f, err := rsrc.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, rsrc.FileTypeVI, f.Type())

	got, ok := f.VCTP()
	require.True(t, ok)
	require.Equal(t, vctp, got)

	b, ok := f.Block("icl8")
	require.True(t, ok)
	require.Equal(t, icon, b.Data)
}

func TestWriteEmptyBlocksReturnsNil(t *testing.T) {
	require.Nil(t, rsrc.Write(rsrc.FileTypeVI, nil))
}
