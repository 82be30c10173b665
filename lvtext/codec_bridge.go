package lvtext

import (
	"encoding/base64"

	"github.com/ymj120572092/pylabview/compress"
	"github.com/ymj120572092/pylabview/format"
)

func compressCodec(t format.CompressionType) (compress.Codec, error) {
	return compress.GetCodec(t)
}

func encodeBase64(b []byte) string  { return base64.StdEncoding.EncodeToString(b) }
func decodeBase64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
