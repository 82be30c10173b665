// Package lvtext converts a catalog.Catalog to and from an element-tree
// text projection (SPEC_FULL.md §4.13): a minimal in-memory XML-like tree
// serialized with the standard library's encoding/xml, since no example
// repo in the pack offers a richer XML library (DESIGN.md).
package lvtext

import "encoding/xml"

// Attr is one element attribute, kept in encounter order rather than a map
// so a round-tripped dump is byte-stable.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the text projection tree: a tag name, ordered
// attributes, and ordered children. Leaf text content (enum and TypeDef
// labels, base64-encoded bodies and extras, and the <Labels> dictionary)
// is held in CharData.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	CharData string
}

// NewElement creates an Element with the given tag and no attributes or
// children.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// SetAttr appends an attribute. Callers are responsible for not adding the
// same name twice; Get returns the first match.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Get returns the value of the first attribute named name, and whether it
// was present.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// AddChild appends child to e's children and returns child, for chaining.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// MarshalXML implements xml.Marshaler.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if e.CharData != "" {
		if err := enc.EncodeToken(xml.CharData(e.CharData)); err != nil {
			return err
		}
	}

	for _, child := range e.Children {
		if err := enc.Encode(child); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (e *Element) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	e.Tag = start.Name.Local

	for _, a := range start.Attr {
		e.Attrs = append(e.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(dec, t); err != nil {
				return err
			}

			e.Children = append(e.Children, child)
		case xml.CharData:
			e.CharData += string(t)
		case xml.EndElement:
			return nil
		}
	}
}
