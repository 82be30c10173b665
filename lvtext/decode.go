package lvtext

import (
	"fmt"
	"strconv"

	"github.com/ymj120572092/pylabview/catalog"
	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
	"github.com/ymj120572092/pylabview/internal/labelindex"
	"github.com/ymj120572092/pylabview/section"
)

// ToCatalog reconstructs a catalog.Catalog from a Dump's root element.
// sidecars supplies the bytes for every Src-referencing opaque element
// (the caller is responsible for having read them from disk). Unknown
// inline Kind values and missing sidecars are recorded on sink as
// diag.TextMismatch findings rather than aborting the whole catalog,
// mirroring the binary parser's per-record fault isolation.
func ToCatalog(root *Element, sidecars map[string][]byte, ctx connector.Context, sink *diag.Sink) (*catalog.Catalog, error) {
	if root.Tag != "VCTP" {
		return nil, fmt.Errorf("%w: root element is %q, want VCTP", ErrMalformedElement, root.Tag)
	}

	var dict *labelindex.Dictionary

	children := root.Children

	if len(children) > 0 && children[0].Tag == "Labels" {
		raw, err := decodeBase64(children[0].CharData)
		if err != nil {
			return nil, fmt.Errorf("%w: Labels base64: %v", ErrMalformedElement, err)
		}

		d, err := labelindex.Unmarshal(raw)
		if err != nil {
			return nil, fmt.Errorf("lvtext: decoding label dictionary: %w", err)
		}

		dict = d
		children = children[1:]
	}

	var decodeRecord func(el *Element) (*connector.Connector, error)

	decodeRecord = func(el *Element) (*connector.Connector, error) {
		if el.Tag != "Connector" {
			return nil, fmt.Errorf("%w: expected Connector element, got %q", ErrMalformedElement, el.Tag)
		}

		idxStr, _ := el.Get("Index")

		index, err := strconv.Atoi(idxStr)
		if err != nil {
			index = connector.NestedIndex
		}

		formatAttr, _ := el.Get("Format")

		label := resolveLabel(el, dict)

		if formatAttr == "bin" {
			return decodeOpaqueElement(el, index, label, sidecars, ctx, sink)
		}

		tagStr, ok := el.Get("Tag")
		if !ok {
			return nil, fmt.Errorf("%w: inline Connector missing Tag attribute", ErrMalformedElement)
		}

		tagVal, err := strconv.ParseUint(tagStr, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: Tag attribute: %v", ErrMalformedElement, err)
		}

		tag := format2TypeTag(tagVal)

		payload, err := decodeInline(el, tag, decodeRecord)
		if err != nil {
			sink.Add(diag.Finding{Kind: diag.TextMismatch, RecordIndex: index, Message: err.Error()})

			return nil, err
		}

		flags := flagsFor(label)

		rec := connector.New(index, flags, label, payload)

		return rec, nil
	}

	records := make([]*connector.Connector, 0, len(children))

	for _, child := range children {
		rec, err := decodeRecord(child)
		if err != nil {
			continue
		}

		records = append(records, rec)
	}

	return catalog.New(records), nil
}

func format2TypeTag(v uint64) format.TypeTag { return format.TypeTag(v) } //nolint:gosec

func resolveLabel(el *Element, dict *labelindex.Dictionary) []byte {
	if slotStr, ok := el.Get("LabelSlot"); ok && dict != nil {
		if slot, err := strconv.Atoi(slotStr); err == nil {
			if lbl := dict.Label(slot); lbl != nil {
				return lbl
			}
		}
	}

	if lbl, ok := el.Get("Label"); ok {
		return []byte(lbl)
	}

	return nil
}

func flagsFor(label []byte) section.ConnectorFlags {
	var flags section.ConnectorFlags
	return flags.WithLabel(len(label) > 0)
}

func decodeOpaqueElement(el *Element, index int, label []byte, sidecars map[string][]byte, ctx connector.Context, sink *diag.Sink) (*connector.Connector, error) {
	src, ok := el.Get("Src")
	if !ok {
		return nil, fmt.Errorf("%w: opaque Connector missing Src attribute", ErrMalformedElement)
	}

	body, ok := sidecars[src]
	if !ok {
		sink.Add(diag.Finding{Kind: diag.TextMismatch, RecordIndex: index, Message: fmt.Sprintf("%v: %s", ErrMissingSidecar, src)})

		return nil, fmt.Errorf("%w: %s", ErrMissingSidecar, src)
	}

	if compName, ok := el.Get("Compression"); ok {
		codec, err := compressCodec(compressionFromName(compName))
		if err == nil {
			if decompressed, err := codec.Decompress(body); err == nil {
				body = decompressed
			}
		}
	}

	rec := connector.Parse(body, index, ctx, sink)
	if len(label) > 0 && len(rec.Label) == 0 {
		rec.Label = label
	}

	return rec, nil
}

func compressionFromName(name string) format.CompressionType {
	switch name {
	case "zstd":
		return format.CompressionZstd
	case "s2":
		return format.CompressionS2
	case "lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}
