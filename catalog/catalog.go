// Package catalog implements the ordered Virtual Connector/Terminal Point
// list (spec.md §4.11/§6): an append-only-then-frozen sequence of
// connector.Connector records addressed by position, with whole-catalog
// binary parse/serialize and cross-record sanity checking layered on top
// of each record's own connector.Payload.Sanity.
//
// The ordered-collection-with-index-resolution shape is grounded on
// mebo's blob.Set (blob/blob_set.go): a slice of records plus helpers that
// resolve and validate references between them.
package catalog

import (
	"encoding/binary"
	"fmt"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
)

// Catalog is the ordered VCTP record list. Once built by Parse or New, it
// is frozen: callers read Records() but do not mutate the slice in place.
type Catalog struct {
	records []*connector.Connector
}

// New wraps an already-built slice of records into a Catalog without
// reparsing them (used by higher layers, e.g. lvtext, that construct
// records from a text projection rather than raw bytes).
func New(records []*connector.Connector) *Catalog {
	return &Catalog{records: append([]*connector.Connector(nil), records...)}
}

// Records returns the catalog's records in on-disk order. The returned
// slice must not be mutated by the caller.
func (c *Catalog) Records() []*connector.Connector {
	return c.records
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// At returns the record at index, or nil if index is out of range.
func (c *Catalog) At(index int) *connector.Connector {
	if index < 0 || index >= len(c.records) {
		return nil
	}

	return c.records[index]
}

// Parse reads a VCTP catalog: u32 catalog_count followed by that many
// connector records (spec.md §6 "VCTP wire format"). A record that fails
// to parse structurally is retained raw-only (connector.Parse never
// returns an error for a single record; it downgrades to a diagnostic),
// so Parse itself only fails when the catalog_count prefix cannot be read.
// A record whose declared length runs past the end of raw, or a catalog
// that ends before catalog_count records, stops the loop with a Structural
// finding on sink (Fatal for the length overrun), and the records read
// before it are returned with a nil error.
func Parse(raw []byte, ctx connector.Context, sink *diag.Sink) (*Catalog, error) {
	r := cursor.NewReader(raw)

	count, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading catalog_count", err)
	}

	cat := &Catalog{records: make([]*connector.Connector, 0, count)}

	for i := 0; i < int(count); i++ {
		start := r.Pos()
		if start >= r.Len() {
			sink.Addf(diag.Structural, i, "catalog truncated: expected %d records, got %d", count, i)
			break
		}

		recLen, lenErr := peekLength(raw[start:])
		if lenErr != nil || start+recLen > r.Len() {
			sink.Add(diag.Finding{Kind: diag.Structural, RecordIndex: i, Message: "record length runs past end of catalog", Fatal: true})
			break
		}

		recRaw := raw[start : start+recLen]
		if err := r.Skip(recLen); err != nil {
			return nil, err
		}

		rec := connector.Parse(recRaw, i, ctx, sink)
		cat.records = append(cat.records, rec)
	}

	return cat, nil
}

// peekLength reads the 2-byte length field a record's header opens with,
// without disturbing the caller's cursor.
func peekLength(recRaw []byte) (int, error) {
	if len(recRaw) < 2 {
		return 0, fmt.Errorf("record shorter than its own length field")
	}

	return int(binary.BigEndian.Uint16(recRaw)), nil
}

// Serialize writes the catalog back to its VCTP wire form: u32
// catalog_count followed by each record's own serialization.
func Serialize(cat *Catalog, ctx connector.Context) []byte {
	w := cursor.NewWriter()
	defer w.Release()

	w.PutU32(uint32(len(cat.records))) //nolint:gosec

	for _, rec := range cat.records {
		w.PutBytes(connector.Serialize(rec, ctx))
	}

	return append([]byte(nil), w.Bytes()...)
}

// CheckSanity runs every record's own Sanity check plus the catalog-level
// forward-reference invariant from spec.md §4.11(b): non-nested client
// indices must be < len(records), and for Array/Reference records
// specifically, < the owning record's own index. Each record's Sanity
// method already enforces the per-record half of this; CheckSanity adds
// the catalog-wide bound (len(records)) that an individual record cannot
// know on its own.
func (c *Catalog) CheckSanity(sink *diag.Sink) {
	size := len(c.records)

	for _, rec := range c.records {
		if rec == nil {
			continue
		}

		rec.CheckSanity(size, sink)
	}
}
