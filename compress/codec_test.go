package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ymj120572092/pylabview/format"
)

func TestCodecsRoundTrip(t *testing.T) {
	data := []byte("opaque connector payload opaque connector payload opaque connector payload")

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionZstd,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, restored)
		})
	}
}

func TestGetCodecUnknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(99))
	require.Error(t, err)
}
