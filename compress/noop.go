package compress

// NoOpCompressor bypasses compression entirely.
//
// This is the default for opaque sidecar payloads below the size threshold
// where codec framing overhead would outweigh the saving — most connector
// records are a few dozen bytes, far smaller than any real codec's minimum
// useful block size.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a NoOpCompressor.
func NewNoOpCompressor() NoOpCompressor { return NoOpCompressor{} }

// Compress returns data unchanged.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }
