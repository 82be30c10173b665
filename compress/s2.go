package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses sidecar payloads with Snappy-compatible S2, the
// fastest codec on offer — appropriate for a large opaque dump where
// decode speed during `extract` matters more than ratio.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates an S2Compressor.
func NewS2Compressor() S2Compressor { return S2Compressor{} }

// Compress compresses data with S2.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores S2-compressed data.
func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
