package lvtext

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/ymj120572092/pylabview/connector"
	"github.com/ymj120572092/pylabview/format"
)

// kind names the Go shape of a Payload for the Kind attribute. It is
// independent of the raw type tag byte (stored separately as Tag) so
// decoding never has to reimplement connector's tag-range dispatch table.
const (
	kindVoid         = "Void"
	kindNumeric      = "Numeric"
	kindBoolean      = "Boolean"
	kindUnit         = "Unit"
	kindBlob         = "Blob"
	kindArray        = "Array"
	kindCluster      = "Cluster"
	kindLVVariant    = "LVVariant"
	kindMeasureData  = "MeasureData"
	kindFixedPoint   = "FixedPoint"
	kindBlockSingle  = "BlockSingle"
	kindBlockRepeat  = "BlockRepeated"
	kindReference    = "Reference"
	kindPointer      = "Pointer"
	kindFunction     = "Function"
	kindTypeDef      = "TypeDef"
	kindPolyVI       = "PolyVI"
	kindTag          = "Tag"
)

func u8Attr(v uint8) string  { return strconv.FormatUint(uint64(v), 10) }
func u16Attr(v uint16) string { return strconv.FormatUint(uint64(v), 10) }
func u32Attr(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
func i32Attr(v int32) string  { return strconv.FormatInt(int64(v), 10) }

func parseU8(s string) (uint8, error)   { v, err := strconv.ParseUint(s, 10, 8); return uint8(v), err }
func parseU16(s string) (uint16, error) { v, err := strconv.ParseUint(s, 10, 16); return uint16(v), err }
func parseU32(s string) (uint32, error) { v, err := strconv.ParseUint(s, 10, 32); return uint32(v), err }
func parseI32(s string) (int32, error)  { v, err := strconv.ParseInt(s, 10, 32); return int32(v), err }

// encodeInline fills e's Kind attribute and variant-specific
// attributes/children from p, per the field table of spec.md §4.3-§4.11.
// encodeNested renders a TypeDef's owned nested connector as a child
// element (mutual recursion with the top-level record encoder).
func encodeInline(e *Element, p connector.Payload, encodeNested func(*connector.Connector) *Element) {
	switch v := p.(type) {
	case *connector.Void:
		e.SetAttr("Kind", kindVoid)
	case *connector.Numeric:
		e.SetAttr("Kind", kindNumeric)
	case *connector.Boolean:
		e.SetAttr("Kind", kindBoolean)
	case *connector.LVVariant:
		e.SetAttr("Kind", kindLVVariant)
	case *connector.Pointer:
		e.SetAttr("Kind", kindPointer)
	case *connector.Unit:
		e.SetAttr("Kind", kindUnit)
		e.SetAttr("Prop1", u8Attr(v.Prop1))

		for _, lbl := range v.EnumLabels {
			e.AddChild(NewElement("Enum")).CharData = string(lbl)
		}

		for _, pu := range v.PhysUnits {
			phys := e.AddChild(NewElement("Phys"))
			phys.SetAttr("V1", u16Attr(pu.IntVal1))
			phys.SetAttr("V2", u16Attr(pu.IntVal2))
		}
	case *connector.Blob:
		e.SetAttr("Kind", kindBlob)
		e.SetAttr("Prop1", u32Attr(v.Prop1))
	case *connector.PolyVI:
		e.SetAttr("Kind", kindPolyVI)
		e.SetAttr("Prop1", u32Attr(v.Prop1))
	case *connector.MeasureData:
		e.SetAttr("Kind", kindMeasureData)
		e.SetAttr("ClusterFmt", u16Attr(v.ClusterFmt))
	case *connector.Array:
		e.SetAttr("Kind", kindArray)
		e.SetAttr("ClientIndex", u32Attr(v.ClientIndex))

		for _, d := range v.Dims {
			dim := e.AddChild(NewElement("Dim"))
			dim.SetAttr("Flags", u8Attr(d.Flags))
			dim.SetAttr("FixedSize", u32Attr(d.FixedSize))
		}
	case *connector.Cluster:
		e.SetAttr("Kind", kindCluster)

		for _, idx := range v.ClientIndices {
			e.AddChild(NewElement("Client")).SetAttr("Index", u16Attr(idx))
		}
	case *connector.FixedPoint:
		e.SetAttr("Kind", kindFixedPoint)
		e.SetAttr("Field1C", u16Attr(v.Field1C))
		e.SetAttr("Field1E", u16Attr(v.Field1E))
		e.SetAttr("Field20", u32Attr(v.Field20))

		for _, rg := range v.Ranges {
			rangeEl := e.AddChild(NewElement("Range"))
			rangeEl.SetAttr("Value", strconv.FormatFloat(rg.Value, 'g', -1, 64))
			rangeEl.SetAttr("HasExtra", strconv.FormatBool(rg.HasExtra))

			if rg.HasExtra {
				rangeEl.SetAttr("Prop1", u16Attr(rg.Prop1))
				rangeEl.SetAttr("Prop2", u16Attr(rg.Prop2))
				rangeEl.SetAttr("Prop3", i32Attr(rg.Prop3))
			}
		}
	case *connector.BlockSingleClient:
		e.SetAttr("Kind", kindBlockSingle)
		e.SetAttr("ClientIndex", u32Attr(v.ClientIndex))
	case *connector.BlockRepeated:
		e.SetAttr("Kind", kindBlockRepeat)
		e.SetAttr("Prop1", u32Attr(v.Prop1))
		e.SetAttr("Prop2", u16Attr(v.Prop2))
	case *connector.Tag:
		e.SetAttr("Kind", kindTag)
		e.SetAttr("Prop1", u32Attr(v.Prop1))
		e.SetAttr("TagType", u16Attr(v.TagType))

		if len(v.Variant) > 0 {
			e.AddChild(NewElement("Variant")).CharData = base64.StdEncoding.EncodeToString(v.Variant)
		}

		if len(v.Ident) > 0 {
			e.SetAttr("Ident", string(v.Ident))
		}
	case *connector.Reference:
		e.SetAttr("Kind", kindReference)
		e.SetAttr("RefType", u16Attr(v.RefType))

		if len(v.Body) > 0 {
			e.AddChild(NewElement("Body")).CharData = base64.StdEncoding.EncodeToString(v.Body)
		}

		for _, cl := range v.Clients {
			client := e.AddChild(NewElement("Client"))
			client.SetAttr("Index", u32Attr(cl.Index))
			client.SetAttr("Flags", u16Attr(cl.Flags))

			if len(cl.Extras) > 0 {
				client.CharData = base64.StdEncoding.EncodeToString(cl.Extras)
			}
		}
	case *connector.Function:
		e.SetAttr("Kind", kindFunction)
		e.SetAttr("FFlags", u16Attr(v.FFlags))
		e.SetAttr("Pattern", u16Attr(v.Pattern))
		e.SetAttr("HasThrall", u16Attr(v.HasThrall))
		e.SetAttr("HasExtraClient", strconv.FormatBool(v.HasExtraClient))

		if v.HasExtraClient {
			e.SetAttr("ExtraClient", u32Attr(v.ExtraClient))
		}

		if v.Field6 != 0 || v.Field7 != 0 {
			e.SetAttr("Field6", u32Attr(v.Field6))
			e.SetAttr("Field7", u32Attr(v.Field7))
		}

		for i, idx := range v.ClientIndices {
			client := e.AddChild(NewElement("Client"))
			client.SetAttr("Index", u32Attr(idx))

			if i < len(v.ClientFlags) {
				client.SetAttr("Flags", u32Attr(v.ClientFlags[i]))
			}

			if i < len(v.ThrallSources) {
				for _, src := range v.ThrallSources[i] {
					client.AddChild(NewElement("Thrall")).SetAttr("Source", u8Attr(src))
				}
			}
		}
	case *connector.TypeDef:
		e.SetAttr("Kind", kindTypeDef)
		e.SetAttr("Flag1", u32Attr(v.Flag1))

		for _, lbl := range v.Labels {
			e.AddChild(NewElement("TypeLabel")).CharData = string(lbl)
		}

		if v.Nested != nil {
			e.AddChild(encodeNested(v.Nested))
		}
	default:
		panic(fmt.Sprintf("lvtext: encodeInline: unhandled payload type %T", p))
	}
}

// decodeInline builds the Payload named by e's Kind attribute, reading its
// variant-specific attributes/children. tag is the record's raw type tag
// (already parsed from the Tag attribute by the caller) and is threaded
// through to the Payload constructors that need it (TypeTag() returns it
// verbatim). decodeNested reconstructs a TypeDef's owned nested connector
// from its child <Connector> element.
func decodeInline(e *Element, tag format.TypeTag, decodeNested func(*Element) (*connector.Connector, error)) (connector.Payload, error) {
	kind, _ := e.Get("Kind")

	switch kind {
	case kindVoid:
		return &connector.Void{}, nil
	case kindNumeric:
		return &connector.Numeric{Tag: tag}, nil
	case kindBoolean:
		return &connector.Boolean{Tag: tag}, nil
	case kindLVVariant:
		return &connector.LVVariant{}, nil
	case kindPointer:
		return &connector.Pointer{}, nil
	case kindUnit:
		return decodeUnit(e, tag)
	case kindBlob:
		prop1, err := attrU32(e, "Prop1")
		if err != nil {
			return nil, err
		}

		return &connector.Blob{Tag: tag, Prop1: prop1}, nil
	case kindPolyVI:
		prop1, err := attrU32(e, "Prop1")
		if err != nil {
			return nil, err
		}

		return &connector.PolyVI{Prop1: prop1}, nil
	case kindMeasureData:
		fmt16, err := attrU16(e, "ClusterFmt")
		if err != nil {
			return nil, err
		}

		return &connector.MeasureData{ClusterFmt: fmt16}, nil
	case kindArray:
		return decodeArray(e, tag)
	case kindCluster:
		return decodeCluster(e)
	case kindFixedPoint:
		return decodeFixedPoint(e, tag)
	case kindBlockSingle:
		idx, err := attrU32(e, "ClientIndex")
		if err != nil {
			return nil, err
		}

		return &connector.BlockSingleClient{Tag: tag, ClientIndex: idx}, nil
	case kindBlockRepeat:
		p1, err := attrU32(e, "Prop1")
		if err != nil {
			return nil, err
		}

		p2, err := attrU16(e, "Prop2")
		if err != nil {
			return nil, err
		}

		return &connector.BlockRepeated{Tag: tag, Prop1: p1, Prop2: p2}, nil
	case kindTag:
		return decodeTag(e)
	case kindReference:
		return decodeReference(e)
	case kindFunction:
		return decodeFunction(e)
	case kindTypeDef:
		return decodeTypeDef(e, decodeNested)
	default:
		return nil, fmt.Errorf("%w: Kind=%q", ErrUnknownTag, kind)
	}
}

func attrU8(e *Element, name string) (uint8, error) {
	s, ok := e.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedElement, name)
	}

	return parseU8(s)
}

func attrU16(e *Element, name string) (uint16, error) {
	s, ok := e.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedElement, name)
	}

	return parseU16(s)
}

func attrU32(e *Element, name string) (uint32, error) {
	s, ok := e.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedElement, name)
	}

	return parseU32(s)
}

func decodeUnit(e *Element, tag format.TypeTag) (connector.Payload, error) {
	prop1, err := attrU8(e, "Prop1")
	if err != nil {
		return nil, err
	}

	u := &connector.Unit{Tag: tag, Prop1: prop1}

	for _, child := range e.Children {
		switch child.Tag {
		case "Enum":
			u.EnumLabels = append(u.EnumLabels, []byte(child.CharData))
		case "Phys":
			v1, err := attrU16(child, "V1")
			if err != nil {
				return nil, err
			}

			v2, err := attrU16(child, "V2")
			if err != nil {
				return nil, err
			}

			u.PhysUnits = append(u.PhysUnits, connector.PhysUnit{IntVal1: v1, IntVal2: v2})
		}
	}

	return u, nil
}

func decodeArray(e *Element, tag format.TypeTag) (connector.Payload, error) {
	idx, err := attrU32(e, "ClientIndex")
	if err != nil {
		return nil, err
	}

	a := &connector.Array{Tag: tag, ClientIndex: idx}

	for _, child := range e.Children {
		if child.Tag != "Dim" {
			continue
		}

		flags, err := attrU8(child, "Flags")
		if err != nil {
			return nil, err
		}

		size, err := attrU32(child, "FixedSize")
		if err != nil {
			return nil, err
		}

		a.Dims = append(a.Dims, connector.ArrayDim{Flags: flags, FixedSize: size})
	}

	return a, nil
}

func decodeCluster(e *Element) (connector.Payload, error) {
	c := &connector.Cluster{}

	for _, child := range e.Children {
		if child.Tag != "Client" {
			continue
		}

		idx, err := attrU16(child, "Index")
		if err != nil {
			return nil, err
		}

		c.ClientIndices = append(c.ClientIndices, idx)
	}

	return c, nil
}

func decodeFixedPoint(e *Element, tag format.TypeTag) (connector.Payload, error) {
	field1C, err := attrU16(e, "Field1C")
	if err != nil {
		return nil, err
	}

	field1E, err := attrU16(e, "Field1E")
	if err != nil {
		return nil, err
	}

	field20, err := attrU32(e, "Field20")
	if err != nil {
		return nil, err
	}

	fp := &connector.FixedPoint{Tag: tag, Field1C: field1C, Field1E: field1E, Field20: field20}

	ranges := make([]*Element, 0, 3)
	for _, child := range e.Children {
		if child.Tag == "Range" {
			ranges = append(ranges, child)
		}
	}

	for i := 0; i < len(ranges) && i < 3; i++ {
		rg := ranges[i]

		value, err := strconv.ParseFloat(mustAttr(rg, "Value"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: range %d Value: %v", ErrMalformedElement, i, err)
		}

		hasExtra := mustAttr(rg, "HasExtra") == "true"

		r := connector.FixedPointRange{Value: value, HasExtra: hasExtra}

		if hasExtra {
			if r.Prop1, err = attrU16(rg, "Prop1"); err != nil {
				return nil, err
			}

			if r.Prop2, err = attrU16(rg, "Prop2"); err != nil {
				return nil, err
			}

			p3, err := attrI32(rg, "Prop3")
			if err != nil {
				return nil, err
			}

			r.Prop3 = p3
		}

		fp.Ranges[i] = r
	}

	return fp, nil
}

func attrI32(e *Element, name string) (int32, error) {
	s, ok := e.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedElement, name)
	}

	return parseI32(s)
}

func mustAttr(e *Element, name string) string {
	s, _ := e.Get(name)
	return s
}

func decodeTag(e *Element) (connector.Payload, error) {
	prop1, err := attrU32(e, "Prop1")
	if err != nil {
		return nil, err
	}

	tagType, err := attrU16(e, "TagType")
	if err != nil {
		return nil, err
	}

	t := &connector.Tag{Prop1: prop1, TagType: tagType}

	if ident, ok := e.Get("Ident"); ok {
		t.Ident = []byte(ident)
	}

	for _, child := range e.Children {
		if child.Tag == "Variant" {
			decoded, err := base64.StdEncoding.DecodeString(child.CharData)
			if err != nil {
				return nil, fmt.Errorf("%w: Variant base64: %v", ErrMalformedElement, err)
			}

			t.Variant = decoded
		}
	}

	return t, nil
}

func decodeReference(e *Element) (connector.Payload, error) {
	reftype, err := attrU16(e, "RefType")
	if err != nil {
		return nil, err
	}

	ref := &connector.Reference{RefType: reftype}

	for _, child := range e.Children {
		switch child.Tag {
		case "Body":
			decoded, err := base64.StdEncoding.DecodeString(child.CharData)
			if err != nil {
				return nil, fmt.Errorf("%w: Body base64: %v", ErrMalformedElement, err)
			}

			ref.Body = decoded
		case "Client":
			idx, err := attrU32(child, "Index")
			if err != nil {
				return nil, err
			}

			flags, err := attrU16(child, "Flags")
			if err != nil {
				return nil, err
			}

			rc := connector.RefClient{Index: idx, Flags: flags}

			if child.CharData != "" {
				extras, err := base64.StdEncoding.DecodeString(child.CharData)
				if err != nil {
					return nil, fmt.Errorf("%w: Client extras base64: %v", ErrMalformedElement, err)
				}

				rc.Extras = extras
			}

			ref.Clients = append(ref.Clients, rc)
		}
	}

	return ref, nil
}

func decodeFunction(e *Element) (connector.Payload, error) {
	fflags, err := attrU16(e, "FFlags")
	if err != nil {
		return nil, err
	}

	pattern, err := attrU16(e, "Pattern")
	if err != nil {
		return nil, err
	}

	hasThrall, err := attrU16(e, "HasThrall")
	if err != nil {
		return nil, err
	}

	f := &connector.Function{FFlags: fflags, Pattern: pattern, HasThrall: hasThrall}

	if mustAttr(e, "HasExtraClient") == "true" {
		f.HasExtraClient = true

		extra, err := attrU32(e, "ExtraClient")
		if err != nil {
			return nil, err
		}

		f.ExtraClient = extra
	}

	if f6, ok := e.Get("Field6"); ok {
		v, err := parseU32(f6)
		if err != nil {
			return nil, err
		}

		f.Field6 = v
	}

	if f7, ok := e.Get("Field7"); ok {
		v, err := parseU32(f7)
		if err != nil {
			return nil, err
		}

		f.Field7 = v
	}

	for _, child := range e.Children {
		if child.Tag != "Client" {
			continue
		}

		idx, err := attrU32(child, "Index")
		if err != nil {
			return nil, err
		}

		f.ClientIndices = append(f.ClientIndices, idx)

		flags, err := attrU32(child, "Flags")
		if err != nil {
			return nil, err
		}

		f.ClientFlags = append(f.ClientFlags, flags)

		var sources []uint8
		for _, thrall := range child.Children {
			if thrall.Tag != "Thrall" {
				continue
			}

			src, err := attrU8(thrall, "Source")
			if err != nil {
				return nil, err
			}

			sources = append(sources, src)
		}

		f.ThrallSources = append(f.ThrallSources, sources)
	}

	return f, nil
}

func decodeTypeDef(e *Element, decodeNested func(*Element) (*connector.Connector, error)) (connector.Payload, error) {
	flag1, err := attrU32(e, "Flag1")
	if err != nil {
		return nil, err
	}

	td := &connector.TypeDef{Flag1: flag1}

	for _, child := range e.Children {
		switch child.Tag {
		case "TypeLabel":
			td.Labels = append(td.Labels, []byte(child.CharData))
		case "Connector":
			nested, err := decodeNested(child)
			if err != nil {
				return nil, err
			}

			td.Nested = nested
		}
	}

	return td, nil
}
