// Package labelindex implements the shared label dictionary attached to an
// inline text dump (SPEC_FULL.md §4.13): every connector and TypeDef
// identifier label discovered while emitting a catalog is deduplicated and
// compressed with a trained FSST symbol table, so a dump with many
// repeated unit/enum names stores each distinct string once.
package labelindex

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/axiomhq/fsst"
)

// Dictionary holds the distinct labels seen while emitting one catalog
// dump, in first-seen order, plus the FSST table trained on them.
type Dictionary struct {
	table  *fsst.Table
	labels [][]byte
	slots  map[string]int
}

// NewDictionary creates an empty Dictionary. Labels are added with Intern
// as they are discovered; the FSST table is trained lazily by Marshal once
// the full label set is known.
func NewDictionary() *Dictionary {
	return &Dictionary{slots: make(map[string]int)}
}

// Intern registers label if not already present and returns its slot
// index, stable for the lifetime of the Dictionary.
func (d *Dictionary) Intern(label []byte) int {
	if slot, ok := d.slots[string(label)]; ok {
		return slot
	}

	slot := len(d.labels)
	d.labels = append(d.labels, append([]byte(nil), label...))
	d.slots[string(label)] = slot

	return slot
}

// Label returns the literal label stored at slot, or nil if out of range.
func (d *Dictionary) Label(slot int) []byte {
	if slot < 0 || slot >= len(d.labels) {
		return nil
	}

	return d.labels[slot]
}

// Len returns the number of distinct interned labels.
func (d *Dictionary) Len() int {
	return len(d.labels)
}

// Marshal trains an FSST table over the interned labels and serializes the
// dictionary as: u32 table length, table bytes, u32 label count, then each
// label as u32 length + FSST-encoded bytes. This is the <Labels> preamble
// payload referenced by SPEC_FULL.md §4.13.
func (d *Dictionary) Marshal() []byte {
	table := fsst.Train(d.labels)
	d.table = table

	tableBytes, err := table.MarshalBinary()
	if err != nil {
		// fsst.Table.MarshalBinary only fails on io errors from a
		// caller-supplied writer, which WriteTo never hits for an
		// in-memory buffer (SIMD-free encode path).
		panic(fmt.Sprintf("labelindex: marshaling fsst table: %v", err))
	}

	var buf bytes.Buffer

	var u32 [4]byte

	binary.BigEndian.PutUint32(u32[:], uint32(len(tableBytes))) //nolint:gosec
	buf.Write(u32[:])
	buf.Write(tableBytes)

	binary.BigEndian.PutUint32(u32[:], uint32(len(d.labels))) //nolint:gosec
	buf.Write(u32[:])

	for _, lbl := range d.labels {
		encoded := table.EncodeAll(lbl)
		binary.BigEndian.PutUint32(u32[:], uint32(len(encoded))) //nolint:gosec
		buf.Write(u32[:])
		buf.Write(encoded)
	}

	return buf.Bytes()
}

// Unmarshal reconstructs a Dictionary from the bytes produced by Marshal.
func Unmarshal(data []byte) (*Dictionary, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("labelindex: truncated dictionary header")
	}

	tableLen := binary.BigEndian.Uint32(data[0:4])
	data = data[4:]

	if uint32(len(data)) < tableLen { //nolint:gosec
		return nil, fmt.Errorf("labelindex: truncated fsst table")
	}

	table := &fsst.Table{}
	if err := table.UnmarshalBinary(data[:tableLen]); err != nil {
		return nil, fmt.Errorf("labelindex: decoding fsst table: %w", err)
	}

	data = data[tableLen:]

	if len(data) < 4 {
		return nil, fmt.Errorf("labelindex: truncated label count")
	}

	count := binary.BigEndian.Uint32(data[0:4])
	data = data[4:]

	d := &Dictionary{table: table, slots: make(map[string]int, count)}

	for i := uint32(0); i < count; i++ {
		if len(data) < 4 {
			return nil, fmt.Errorf("labelindex: truncated label %d length", i)
		}

		n := binary.BigEndian.Uint32(data[0:4])
		data = data[4:]

		if uint32(len(data)) < n { //nolint:gosec
			return nil, fmt.Errorf("labelindex: truncated label %d body", i)
		}

		encoded := data[:n]
		data = data[n:]

		label := table.DecodeAll(encoded)
		d.labels = append(d.labels, label)
		d.slots[string(label)] = int(i)
	}

	return d, nil
}
