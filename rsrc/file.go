package rsrc

import (
	"fmt"

	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/internal/options"
)

const defaultMaxChainLength = 64

// fileConfig holds File's optional settings, applied via functional Options.
type fileConfig struct {
	maxChainLength int
}

// Option configures File parsing.
type Option = options.Option[*fileConfig]

// WithMaxChainLength overrides the default limit on chained resource
// headers a File will follow before giving up with ErrChainTooLong.
func WithMaxChainLength(n int) Option {
	return options.NoError(func(c *fileConfig) { c.maxChainLength = n })
}

// File is a parsed resource file: its chain of headers and the block
// directory owned by the last one.
type File struct {
	Headers   []Header
	Directory Directory
	raw       []byte
}

// Parse reads a File out of raw, following the chained resource headers to
// the last one and parsing its block-info directory (spec.md §6).
func Parse(raw []byte, opts ...Option) (*File, error) {
	cfg := &fileConfig{maxChainLength: defaultMaxChainLength}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := cursor.NewReader(raw)

	var headers []Header

	for {
		if len(headers) >= cfg.maxChainLength {
			return nil, fmt.Errorf("%w: %d", ErrChainTooLong, cfg.maxChainLength)
		}

		pos := r.Pos()

		h, err := ParseHeader(r)
		if err != nil {
			return nil, fmt.Errorf("rsrc: parsing header %d: %w", len(headers), err)
		}

		headers = append(headers, h)

		if h.Last() {
			break
		}

		if int(h.Offset) <= pos {
			return nil, fmt.Errorf("%w: header %d points backward", ErrBrokenChain, len(headers)-1)
		}

		if err := r.Seek(int(h.Offset)); err != nil {
			return nil, fmt.Errorf("%w: header %d points past the end of the file: %w", ErrBrokenChain, len(headers)-1, err)
		}
	}

	last := headers[len(headers)-1]

	if err := r.Seek(int(last.Offset) + HeaderSize); err != nil {
		return nil, fmt.Errorf("rsrc: seeking past last header: %w", err)
	}

	dir, err := ParseDirectory(r, int(last.Offset))
	if err != nil {
		return nil, err
	}

	return &File{Headers: headers, Directory: dir, raw: raw}, nil
}

// Block returns the named block's raw bytes, or ok=false if absent.
func (f *File) Block(tag string) (Block, bool) {
	entry, ok := f.Directory.Find(tag)
	if !ok {
		return Block{}, false
	}

	start, end := f.Directory.Range(entry)
	if start < 0 || end > len(f.raw) || start > end {
		return Block{}, false
	}

	return Block{Tag: entry.Name, Data: f.raw[start:end]}, true
}

// VCTP returns the raw bytes of the VCTP block, the catalog package's entry
// point (spec.md §6's "the core accepts raw VCTP bytes").
func (f *File) VCTP() ([]byte, bool) {
	b, ok := f.Block("VCTP")
	if !ok {
		return nil, false
	}

	return b.Data, true
}

// Type returns the file-type tag carried by the last (directory-owning)
// header.
func (f *File) Type() FileType {
	if len(f.Headers) == 0 {
		return FileTypeNone
	}

	return f.Headers[len(f.Headers)-1].Type
}
