package lvtext

import (
	"strconv"

	"github.com/ymj120572092/pylabview/catalog"
	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/format"
	"github.com/ymj120572092/pylabview/internal/collision"
	"github.com/ymj120572092/pylabview/internal/hash"
	"github.com/ymj120572092/pylabview/internal/labelindex"
)

// OpaqueCompressThreshold is the sidecar size (in bytes) above which
// DumpOptions.Compress, if set, is applied (SPEC_FULL.md §4.13).
const OpaqueCompressThreshold = 256

// DumpOptions configures FromCatalog's emission policy.
type DumpOptions struct {
	// Compress names the codec applied to opaque sidecar payloads larger
	// than OpaqueCompressThreshold bytes when UseCompression is set.
	Compress format.CompressionType
	// UseCompression enables the Compress codec; false keeps sidecars
	// uncompressed regardless of Compress's value (the zero value,
	// CompressionNone, would otherwise be ambiguous with "disabled").
	UseCompression bool
}

// Dump is the result of projecting a catalog.Catalog to text: the root
// element, a map of sidecar file base name to its (possibly compressed)
// bytes, and the label dictionary (nil if the catalog contained no
// inline labels to intern).
type Dump struct {
	Root     *Element
	Sidecars map[string][]byte
	Dict     *labelindex.Dictionary
	// Collisions tracks every sidecar name minted during this dump. A
	// hash collision (two distinct bodies minting the same content name)
	// is vanishingly unlikely but checked rather than assumed away; see
	// Collisions.HasCollision.
	Collisions *collision.Tracker
}

// FromCatalog projects cat into a Dump. Every record is emitted inline
// when its fields are known (anything but a raw-only or Opaque-payload
// record); otherwise it is emitted as an opaque Format="bin" element
// referencing a content-addressed sidecar file.
func FromCatalog(cat *catalog.Catalog, ctx connector.Context, opts DumpOptions) (*Dump, error) {
	dump := &Dump{
		Root:       NewElement("VCTP"),
		Sidecars:   make(map[string][]byte),
		Collisions: collision.NewTracker(),
	}

	dict := labelindex.NewDictionary()

	var encodeRecord func(rec *connector.Connector) *Element

	encodeRecord = func(rec *connector.Connector) *Element {
		el := NewElement("Connector")
		el.SetAttr("Index", strconv.Itoa(rec.Index))

		if isOpaque(rec) {
			encodeOpaque(el, rec, ctx, dump, opts)
			return el
		}

		el.SetAttr("Format", "inline")
		el.SetAttr("Tag", strconv.FormatUint(uint64(rec.TypeTag), 16))

		if len(rec.Label) > 0 {
			slot := dict.Intern(rec.Label)
			el.SetAttr("LabelSlot", strconv.Itoa(slot))
		}

		if td, ok := rec.Payload.(*connector.TypeDef); ok {
			for _, lbl := range td.Labels {
				dict.Intern(lbl)
			}
		}

		encodeInline(el, rec.Payload, encodeRecord)

		return el
	}

	for _, rec := range cat.Records() {
		dump.Root.AddChild(encodeRecord(rec))
	}

	if dict.Len() > 0 {
		labelsEl := NewElement("Labels")
		labelsEl.CharData = encodeBase64(dict.Marshal())
		dump.Root.Children = append([]*Element{labelsEl}, dump.Root.Children...)
		dump.Dict = dict
	}

	return dump, nil
}

func isOpaque(rec *connector.Connector) bool {
	if rec.State == connector.StateRawOnly {
		return true
	}

	_, opaque := rec.Payload.(*connector.Opaque)

	return opaque
}

func encodeOpaque(el *Element, rec *connector.Connector, ctx connector.Context, dump *Dump, opts DumpOptions) {
	raw := rec.RawBytes
	if len(raw) == 0 {
		raw = connector.Serialize(rec, ctx)
	}

	el.SetAttr("Format", "bin")
	el.SetAttr("Size", strconv.Itoa(len(raw)))

	body := raw
	compression := format.CompressionNone

	if opts.UseCompression && len(raw) > OpaqueCompressThreshold {
		if codec, err := compressCodec(opts.Compress); err == nil {
			if compressed, err := codec.Compress(raw); err == nil {
				body = compressed
				compression = opts.Compress
			}
		}
	}

	name := hash.ContentName(body)
	if dump.Collisions.Track(name, body) {
		el.SetAttr("Collision", "true")
	}

	dump.Sidecars[name] = body
	el.SetAttr("Src", name)

	if compression != format.CompressionNone {
		el.SetAttr("Compression", compression.String())
	}

	if len(rec.Label) > 0 {
		el.SetAttr("Label", string(rec.Label))
	}
}
