package rsrc

import (
	"fmt"

	"github.com/ymj120572092/pylabview/cursor"
)

// dirHeaderSize is the byte length of the block-info list header: seven
// big-endian u32 fields (spec.md §6).
const dirHeaderSize = 7 * 4

// directoryHeader is the block-info list header following the last chained
// resource header: positions of the dataset region (where block payload
// bytes live) and the block-info region (where the directory itself lives).
type directoryHeader struct {
	DatasetOffset   uint32
	DatasetSize     uint32
	reserved1       uint32
	reserved2       uint32
	reserved3       uint32
	BlockInfoOffset uint32
	BlockInfoSize   uint32
}

func parseDirectoryHeader(r *cursor.Reader) (directoryHeader, error) {
	var h directoryHeader

	fields := []*uint32{
		&h.DatasetOffset, &h.DatasetSize,
		&h.reserved1, &h.reserved2, &h.reserved3,
		&h.BlockInfoOffset, &h.BlockInfoSize,
	}

	for _, f := range fields {
		v, err := r.U32()
		if err != nil {
			return directoryHeader{}, fmt.Errorf("rsrc: reading directory header: %w", err)
		}

		*f = v
	}

	return h, nil
}

// Entry names one block's byte range within the dataset region.
type Entry struct {
	Name   [4]byte
	Count  uint32
	Offset uint32
}

// TagString returns the block's 4-character name as a string.
func (e Entry) TagString() string { return string(e.Name[:]) }

// Directory is the parsed block-info directory: one Entry per named block.
type Directory struct {
	entries     []Entry
	datasetBase int // absolute file offset of the dataset region
}

// ParseDirectory reads a block-info list header followed by its directory
// of block headers, starting at r's current position. basePos is the
// absolute file offset of the resource header that owns this directory
// (the list header's dataset and block-info offsets are relative to it;
// each Entry's Offset is relative to the start of the dataset region).
func ParseDirectory(r *cursor.Reader, basePos int) (Directory, error) {
	listHdr, err := parseDirectoryHeader(r)
	if err != nil {
		return Directory{}, err
	}

	if err := r.Seek(basePos + int(listHdr.BlockInfoOffset)); err != nil {
		return Directory{}, fmt.Errorf("rsrc: seeking to block-info region: %w", err)
	}

	countMinusOne, err := r.U32()
	if err != nil {
		return Directory{}, fmt.Errorf("rsrc: reading block-info count: %w", err)
	}

	count := int(countMinusOne) + 1

	entries := make([]Entry, 0, count)

	for i := 0; i < count; i++ {
		nameBytes, err := r.ReadBytes(4)
		if err != nil {
			return Directory{}, fmt.Errorf("rsrc: reading block %d name: %w", i, err)
		}

		var e Entry

		copy(e.Name[:], nameBytes)

		if e.Count, err = r.U32(); err != nil {
			return Directory{}, fmt.Errorf("rsrc: reading block %d count: %w", i, err)
		}

		if e.Offset, err = r.U32(); err != nil {
			return Directory{}, fmt.Errorf("rsrc: reading block %d offset: %w", i, err)
		}

		entries = append(entries, e)
	}

	dir := Directory{entries: entries}
	dir.datasetBase = basePos + int(listHdr.DatasetOffset)

	return dir, nil
}

// Entries returns every directory entry in on-disk order.
func (d Directory) Entries() []Entry { return d.entries }

// Find returns the first entry named tag (a 4-character block name such as
// "VCTP"), or false if no block by that name is present.
func (d Directory) Find(tag string) (Entry, bool) {
	for _, e := range d.entries {
		if e.TagString() == tag {
			return e, true
		}
	}

	return Entry{}, false
}

// Range returns e's absolute byte range within the file that produced d.
func (d Directory) Range(e Entry) (start, end int) {
	start = d.datasetBase + int(e.Offset)
	end = start + int(e.Count)

	return start, end
}
