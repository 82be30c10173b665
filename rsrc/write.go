package rsrc

import "github.com/ymj120572092/pylabview/cursor"

// Write serializes blocks into a single-header resource file of the given
// type: one terminating Header, its block-info directory, and the dataset
// region holding each block's bytes back to back in the order given.
//
// This is the minimal envelope Parse can read back — enough to round-trip
// through the CLI's create/dump cycle. It does not reproduce every
// quirk of a file LabVIEW itself would write (spec.md §1 keeps full
// envelope fidelity out of scope).
func Write(ftype FileType, blocks []Block) []byte {
	if len(blocks) == 0 {
		return nil
	}

	w := cursor.NewCatalogWriter()
	defer w.ReleaseCatalog()

	const (
		headerPos    = 0
		dirHeaderPos = HeaderSize
		blockInfoPos = dirHeaderPos + dirHeaderSize
	)

	blockInfoSize := 4 + len(blocks)*12
	datasetPos := blockInfoPos + blockInfoSize

	Header{Version: 3, Type: ftype, Offset: headerPos, Size: 0}.Write(w)

	datasetSize := 0
	for _, b := range blocks {
		datasetSize += len(b.Data)
	}

	w.PutU32(uint32(datasetPos))
	w.PutU32(uint32(datasetSize))
	w.PutU32(0)
	w.PutU32(0)
	w.PutU32(0)
	w.PutU32(uint32(blockInfoPos))
	w.PutU32(uint32(blockInfoSize))

	w.PutU32(uint32(len(blocks) - 1)) //nolint:gosec

	offset := 0

	for _, b := range blocks {
		w.PutBytes(b.Tag[:])
		w.PutU32(uint32(len(b.Data)))
		w.PutU32(uint32(offset))
		offset += len(b.Data)
	}

	for _, b := range blocks {
		w.PutBytes(b.Data)
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out
}
