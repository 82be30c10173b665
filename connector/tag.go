package connector

import (
	"github.com/ymj120572092/pylabview/cursor"
	"github.com/ymj120572092/pylabview/diag"
	"github.com/ymj120572092/pylabview/format"
)

// TagTypeUserDefined is the tagType value that carries a trailing
// identifier string (grounded in the original source's TAG_TYPE.UserDefined
// enum member).
const TagTypeUserDefined uint16 = 5

// tagPropConst is the constant prop1 must always hold (spec.md §4.9
// invariant).
const tagPropConst uint32 = 0xFFFFFFFF

// Tag is the tag 0x37 variant (spec.md §4.9).
//
// The embedded LVVariant sub-object's true internal layout belongs to a
// collaborator outside VCTP's scope (spec.md §1); it is stored as a
// self-delimiting opaque blob (length-prefixed) rather than decoded, since
// no concrete grammar for it is specified here.
type Tag struct {
	Prop1   uint32
	TagType uint16
	Variant []byte // present iff lvver.Version.TagCarriesVariant()
	Ident   []byte // present iff TagType == TagTypeUserDefined && lvver.Version.TagCarriesIdent()
}

func (*Tag) TypeTag() format.TypeTag { return format.TagTag }

func (t *Tag) ParsePayload(r *cursor.Reader, ctx Context) error {
	prop1, err := r.U32()
	if err != nil {
		return err
	}

	t.Prop1 = prop1

	tagType, err := r.U16()
	if err != nil {
		return err
	}

	t.TagType = tagType

	if ctx.Version.TagCarriesVariant() {
		variantLen, err := r.U32()
		if err != nil {
			return err
		}

		variant, err := r.ReadBytes(int(variantLen))
		if err != nil {
			return err
		}

		t.Variant = append([]byte(nil), variant...)
	}

	if t.TagType == TagTypeUserDefined && ctx.Version.TagCarriesIdent() {
		strLen, err := r.U8()
		if err != nil {
			return err
		}

		ident, err := r.ReadBytes(int(strLen))
		if err != nil {
			return err
		}

		t.Ident = append([]byte(nil), ident...)

		if (int(strLen)+1)%2 != 0 {
			if _, err := r.U8(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *Tag) WritePayload(w *cursor.Writer, ctx Context) {
	w.PutU32(t.Prop1)
	w.PutU16(t.TagType)

	if ctx.Version.TagCarriesVariant() {
		w.PutU32(uint32(len(t.Variant))) //nolint:gosec
		w.PutBytes(t.Variant)
	}

	if t.TagType == TagTypeUserDefined && ctx.Version.TagCarriesIdent() {
		w.PutU8(uint8(len(t.Ident))) //nolint:gosec
		w.PutBytes(t.Ident)

		if (len(t.Ident)+1)%2 != 0 {
			w.PutU8(0)
		}
	}
}

func (t *Tag) Sanity(selfIndex, _ int, sink *diag.Sink) {
	if t.Prop1 != tagPropConst {
		sink.Addf(diag.InvariantViolation, selfIndex, "tag prop1 expected 0x%08X, got 0x%08X", tagPropConst, t.Prop1)
	}
}
