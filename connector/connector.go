// Package connector implements the polymorphic connector record family at
// the heart of the VCTP catalog (spec.md §4.3-§4.11): a closed sum type
// dispatched by an 8-bit type tag, reconciled between its raw on-disk bytes
// and its derived fields through an explicit three-state tag rather than a
// pair of "dirty" booleans (spec.md §9 Design Note).
package connector

import (
	"encoding/binary"
	"fmt"

	"github.com/ymj120572092/pylabview/connector/refnum"
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
	"github.com/ymj120572092/pylabview/label"
	"github.com/ymj120572092/pylabview/lvver"
	"github.com/ymj120572092/pylabview/section"
)

// NestedIndex marks a Connector owned inline by its parent (a TypeDef's
// sub-connector) rather than listed in the catalog (spec.md §3 "Nested
// connector").
const NestedIndex = -1

// Context carries the ambient information every variant's payload
// parse/write needs: the file format version that gates several encodings
// (spec.md §4.12), and the diagnostic sink nested parses append to.
type Context struct {
	Version lvver.Version
	Sink    *diag.Sink
	// Refnum selects the reference sub-variant plug-in family consulted by
	// Reference records (spec.md §4.10). A nil Refnum falls back to
	// refnum.DefaultPlugin for every reftype.
	Refnum *refnum.Registry
}

// refnumFor returns ctx.Refnum's plugin for reftype, falling back to
// refnum.DefaultPlugin when ctx carries no registry.
func (ctx Context) refnumFor(reftype uint16) refnum.Plugin {
	if ctx.Refnum == nil {
		return refnum.DefaultPlugin{}
	}

	return ctx.Refnum.Lookup(reftype)
}

// Payload is the per-variant behavior selected by a record's type tag
// (spec.md §9 Design Note "Polymorphism": a closed sum with a dispatch
// table, not an inheritance hierarchy).
type Payload interface {
	// TypeTag reports the tag this payload was constructed for.
	TypeTag() format.TypeTag
	// ParsePayload reads the variant body from r, which is scoped to the
	// bytes between the record header and the label's length byte; for a
	// record without a label it runs to the end of the record, so an
	// even-padding byte, if any, is included.
	ParsePayload(r *cursor.Reader, ctx Context) error
	// WritePayload appends the variant body (no header, no label).
	WritePayload(w *cursor.Writer, ctx Context)
	// Sanity appends non-fatal findings for local invariant violations
	// (spec.md §4.11). selfIndex is NestedIndex for owned sub-connectors.
	Sanity(selfIndex, catalogSize int, sink *diag.Sink)
}

// Connector is one record of the catalog: common header fields plus a
// variant-specific Payload, reconciled through State (spec.md §3).
type Connector struct {
	Index    int
	Flags    section.ConnectorFlags
	TypeTag  format.TypeTag
	Label    []byte
	RawBytes []byte
	State    State
	Payload  Payload
}

// New builds a Connector from already-parsed fields (the "fields-then-raw"
// lifecycle of spec.md §3, used when loading from text). The Connector
// starts StateParsedOnly; call Serialize to populate RawBytes.
func New(index int, flags section.ConnectorFlags, lbl []byte, payload Payload) *Connector {
	if lbl != nil {
		flags = flags.WithLabel(true)
	}

	return &Connector{
		Index:   index,
		Flags:   flags,
		TypeTag: payload.TypeTag(),
		Label:   lbl,
		Payload: payload,
		State:   StateParsedOnly,
	}
}

// Parse builds a Connector from its raw on-disk bytes (the "raw-then-derive"
// lifecycle of spec.md §3). Structural failures are recorded as fatal
// Structural findings and leave the Connector StateRawOnly so the catalog
// can still return it with the slot marked raw (spec.md §7 kind 1).
func Parse(raw []byte, index int, ctx Context, sink *diag.Sink) *Connector {
	c := &Connector{Index: index, RawBytes: raw, State: StateRawOnly}

	if err := c.derive(ctx, sink); err != nil {
		sink.Add(diag.Finding{Kind: diag.Structural, RecordIndex: index, Message: err.Error(), Fatal: true})
	}

	return c
}

// derive reconciles fields from RawBytes, per the three-state transition
// named in spec.md §9.
func (c *Connector) derive(ctx Context, sink *diag.Sink) error {
	ctx.Sink = sink

	r := cursor.NewReader(c.RawBytes)

	hdr, err := section.Parse(r)
	if err != nil {
		return fmt.Errorf("connector: header: %w", err)
	}

	if int(hdr.Length) != len(c.RawBytes) {
		return fmt.Errorf("%w: header declares %d, buffer holds %d bytes", ErrLengthMismatch, hdr.Length, len(c.RawBytes))
	}

	c.Flags = hdr.Flags
	c.TypeTag = hdr.TypeTag

	payloadEnd := len(c.RawBytes)

	if hdr.Flags.HasLabel() {
		lbl, lenOffset, ok := label.Find(c.RawBytes, payloadEnd, label.DefaultSearchWindow)
		if ok {
			c.Label = append([]byte(nil), lbl...)
			payloadEnd = lenOffset
		} else {
			sink.Addf(diag.InvariantViolation, c.Index, "HasLabel set but no label found within search window")
		}
	}

	payload := c.RawBytes[section.HeaderSize:payloadEnd]
	pr := cursor.NewReader(payload)

	variant, unknown := newPayload(hdr.TypeTag)
	if unknown {
		sink.Add(diag.Finding{
			Kind:        diag.UnknownVariant,
			RecordIndex: c.Index,
			Message:     fmt.Sprintf("unrecognized type tag 0x%02X, retained as opaque bytes", uint8(hdr.TypeTag)),
		})
	}

	if err := variant.ParsePayload(pr, ctx); err != nil {
		return fmt.Errorf("connector: payload: %w", err)
	}

	c.Payload = variant
	c.State = StateBoth

	return nil
}

// Serialize returns the record's on-disk bytes. A StateRawOnly Connector
// returns its original bytes verbatim (spec.md §8 property 1); otherwise
// the payload is re-synthesized from its fields.
func Serialize(c *Connector, ctx Context) []byte {
	if c.State == StateRawOnly {
		return c.RawBytes
	}

	c.synthesize(ctx)

	return c.RawBytes
}

// synthesize rebuilds RawBytes from Flags/TypeTag/Label/Payload, moving the
// Connector to StateBoth.
func (c *Connector) synthesize(ctx Context) {
	w := cursor.NewWriter()
	defer w.Release()

	section.Header{Flags: c.Flags, TypeTag: c.TypeTag}.Write(w)
	c.Payload.WritePayload(w, ctx)

	body := append([]byte(nil), w.Bytes()...)

	if c.Flags.HasLabel() {
		body = label.Encode(body, c.Label)
	}

	if len(body)%2 != 0 {
		body = append(body, 0)
	}

	binary.BigEndian.PutUint16(body[0:2], uint16(len(body))) //nolint:gosec

	c.RawBytes = body
	c.State = StateBoth
}

// CheckSanity runs the generic record-level checks of spec.md §4.11(a) —
// declared length agrees with the buffer — then delegates to the payload's
// variant-specific Sanity.
func (c *Connector) CheckSanity(catalogSize int, sink *diag.Sink) {
	if len(c.RawBytes) > 0 {
		if len(c.RawBytes) < section.HeaderSize {
			sink.Addf(diag.InvariantViolation, c.Index, "record shorter than header size")
		} else {
			declared := binary.BigEndian.Uint16(c.RawBytes[0:2])
			if int(declared) != len(c.RawBytes) {
				sink.Addf(diag.InvariantViolation, c.Index, "declared length %d does not match actual %d", declared, len(c.RawBytes))
			}
		}
	}

	if c.Payload != nil {
		c.Payload.Sanity(c.Index, catalogSize, sink)
	}
}

// parseNestedConnector reads one connector owned inline by its parent
// (spec.md §4.5 TypeDef), whose header length field is biased by
// bias bytes relative to its true span. It returns a Connector with
// Index == NestedIndex.
func parseNestedConnector(r *cursor.Reader, ctx Context, bias int) (*Connector, error) {
	start := r.Pos()

	claimedLength, err := r.U16()
	if err != nil {
		return nil, err
	}

	if err := r.Seek(start); err != nil {
		return nil, err
	}

	realLength := int(claimedLength) - bias
	if realLength < section.HeaderSize {
		return nil, fmt.Errorf("%w: nested connector claimed length %d too small for bias %d", ErrLengthMismatch, claimedLength, bias)
	}

	raw, err := r.ReadBytes(realLength)
	if err != nil {
		return nil, err
	}

	rawCopy := append([]byte(nil), raw...)
	binary.BigEndian.PutUint16(rawCopy[0:2], uint16(realLength)) //nolint:gosec

	nested := &Connector{Index: NestedIndex, RawBytes: rawCopy, State: StateRawOnly}
	if err := nested.derive(ctx, ctx.Sink); err != nil {
		ctx.Sink.Add(diag.Finding{Kind: diag.Structural, RecordIndex: NestedIndex, Message: err.Error(), Fatal: true})
	}

	return nested, nil
}

// writeNestedConnector serializes nested and re-emits its header length
// field biased by bias bytes, matching the upstream format's undocumented
// quirk (spec.md §9 Open Question (c)).
func writeNestedConnector(w *cursor.Writer, nested *Connector, ctx Context, bias int) {
	raw := Serialize(nested, ctx)

	biased := append([]byte(nil), raw...)
	binary.BigEndian.PutUint16(biased[0:2], uint16(len(raw)+bias)) //nolint:gosec

	w.PutBytes(biased)
}
