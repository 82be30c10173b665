package compress

// ZstdCompressor compresses sidecar payloads with Zstandard, the highest
// ratio codec on offer — appropriate for archiving a large catalog dump
// where `dump` runs once and `extract`/`create` runs rarely.
//
// The actual implementation is chosen at build time: zstd_cgo.go binds
// valyala/gozstd (cgo, fastest) while zstd_pure.go binds
// klauspost/compress/zstd (pure Go, used when cgo is disabled).
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a ZstdCompressor.
func NewZstdCompressor() ZstdCompressor { return ZstdCompressor{} }
