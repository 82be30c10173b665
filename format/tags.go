// Package format names the connector type tag space and the coarser
// "main type" classification derived from it (spec.md §3, §4.3).
package format

// TypeTag is the 8-bit value identifying a connector record's variant.
type TypeTag uint8

// The closed family of known type tags, per spec.md §4.3. Tags outside this
// set are not errors — they fall back to an opaque record classified by
// MainType alone (spec.md §7 kind 3).
const (
	TagVoid TypeTag = 0x00

	TagNumInt8       TypeTag = 0x01
	TagNumInt16      TypeTag = 0x02
	TagNumInt32      TypeTag = 0x03
	TagNumInt64      TypeTag = 0x04
	TagNumUInt8      TypeTag = 0x05
	TagNumUInt16     TypeTag = 0x06
	TagNumUInt32     TypeTag = 0x07
	TagNumUInt64     TypeTag = 0x08
	TagNumFloat32    TypeTag = 0x09
	TagNumFloat64    TypeTag = 0x0A
	TagNumFloatExt   TypeTag = 0x0B
	TagNumComplex64  TypeTag = 0x0C
	TagNumComplex128 TypeTag = 0x0D
	TagNumComplexExt TypeTag = 0x0E

	TagUnitUInt8      TypeTag = 0x15
	TagUnitUInt16     TypeTag = 0x16
	TagUnitUInt32     TypeTag = 0x17
	TagUnitFloat32    TypeTag = 0x19
	TagUnitFloat64    TypeTag = 0x1A
	TagUnitFloatExt   TypeTag = 0x1B
	TagUnitComplex64  TypeTag = 0x1C
	TagUnitComplex128 TypeTag = 0x1D
	TagUnitComplexExt TypeTag = 0x1E

	TagBooleanU16 TypeTag = 0x20
	TagBoolean    TypeTag = 0x21

	TagString    TypeTag = 0x30
	TagPath      TypeTag = 0x32
	TagPicture   TypeTag = 0x33
	TagCString   TypeTag = 0x34
	TagPasString TypeTag = 0x35
	TagTag       TypeTag = 0x37
	TagSubString TypeTag = 0x3F

	TagArray       TypeTag = 0x40
	TagArrayDataPtr TypeTag = 0x41
	TagSubArray    TypeTag = 0x4F

	TagCluster       TypeTag = 0x50
	TagLVVariant     TypeTag = 0x53
	TagMeasureData   TypeTag = 0x54
	TagComplexFixedPt TypeTag = 0x5E
	TagFixedPoint    TypeTag = 0x5F

	TagBlock         TypeTag = 0x60
	TagTypeBlock     TypeTag = 0x61
	TagVoidBlock     TypeTag = 0x62
	TagAlignedBlock  TypeTag = 0x63
	TagRepeatedBlock TypeTag = 0x64
	TagAlignmntMarker TypeTag = 0x65

	TagRefnum TypeTag = 0x70

	TagPtr   TypeTag = 0x80
	TagPtrTo TypeTag = 0x83

	TagFunction TypeTag = 0xF0
	TagTypeDef  TypeTag = 0xF1
	TagPolyVI   TypeTag = 0xF2
)

// MainType is the coarse classification derived from a TypeTag's high
// nibble (spec.md §3 "Main-type projection").
type MainType uint8

const (
	MainNumber MainType = iota
	MainUnit
	MainBool
	MainBlob
	MainArray
	MainCluster
	MainBlock
	MainRef
	MainNumberPointer
	MainTerminal
	MainVoid
	MainUnknown
)

func (m MainType) String() string {
	switch m {
	case MainNumber:
		return "Number"
	case MainUnit:
		return "Unit"
	case MainBool:
		return "Bool"
	case MainBlob:
		return "Blob"
	case MainArray:
		return "Array"
	case MainCluster:
		return "Cluster"
	case MainBlock:
		return "Block"
	case MainRef:
		return "Ref"
	case MainNumberPointer:
		return "NumberPointer"
	case MainTerminal:
		return "Terminal"
	case MainVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// Classify derives the main-type projection of a type tag: the high
// nibble, unless the tag is 0 (Void), per spec.md §3.
func Classify(tag TypeTag) MainType {
	if tag == TagVoid {
		return MainVoid
	}

	switch tag >> 4 {
	case 0x0:
		return MainNumber
	case 0x1:
		return MainUnit
	case 0x2:
		return MainBool
	case 0x3:
		return MainBlob
	case 0x4:
		return MainArray
	case 0x5:
		return MainCluster
	case 0x6:
		return MainBlock
	case 0x7:
		return MainRef
	case 0x8:
		return MainNumberPointer
	case 0xF:
		return MainTerminal
	default:
		return MainUnknown
	}
}

func (t TypeTag) String() string {
	switch t {
	case TagVoid:
		return "Void"
	case TagNumInt8:
		return "NumInt8"
	case TagNumInt16:
		return "NumInt16"
	case TagNumInt32:
		return "NumInt32"
	case TagNumInt64:
		return "NumInt64"
	case TagNumUInt8:
		return "NumUInt8"
	case TagNumUInt16:
		return "NumUInt16"
	case TagNumUInt32:
		return "NumUInt32"
	case TagNumUInt64:
		return "NumUInt64"
	case TagNumFloat32:
		return "NumFloat32"
	case TagNumFloat64:
		return "NumFloat64"
	case TagNumFloatExt:
		return "NumFloatExt"
	case TagNumComplex64:
		return "NumComplex64"
	case TagNumComplex128:
		return "NumComplex128"
	case TagNumComplexExt:
		return "NumComplexExt"
	case TagUnitUInt8:
		return "UnitUInt8"
	case TagUnitUInt16:
		return "UnitUInt16"
	case TagUnitUInt32:
		return "UnitUInt32"
	case TagUnitFloat32:
		return "UnitFloat32"
	case TagUnitFloat64:
		return "UnitFloat64"
	case TagUnitFloatExt:
		return "UnitFloatExt"
	case TagUnitComplex64:
		return "UnitComplex64"
	case TagUnitComplex128:
		return "UnitComplex128"
	case TagUnitComplexExt:
		return "UnitComplexExt"
	case TagBooleanU16:
		return "BooleanU16"
	case TagBoolean:
		return "Boolean"
	case TagString:
		return "String"
	case TagPath:
		return "Path"
	case TagPicture:
		return "Picture"
	case TagCString:
		return "CString"
	case TagPasString:
		return "PasString"
	case TagTag:
		return "Tag"
	case TagSubString:
		return "SubString"
	case TagArray:
		return "Array"
	case TagArrayDataPtr:
		return "ArrayDataPtr"
	case TagSubArray:
		return "SubArray"
	case TagCluster:
		return "Cluster"
	case TagLVVariant:
		return "LVVariant"
	case TagMeasureData:
		return "MeasureData"
	case TagComplexFixedPt:
		return "ComplexFixedPt"
	case TagFixedPoint:
		return "FixedPoint"
	case TagBlock:
		return "Block"
	case TagTypeBlock:
		return "TypeBlock"
	case TagVoidBlock:
		return "VoidBlock"
	case TagAlignedBlock:
		return "AlignedBlock"
	case TagRepeatedBlock:
		return "RepeatedBlock"
	case TagAlignmntMarker:
		return "AlignmntMarker"
	case TagRefnum:
		return "Refnum"
	case TagPtr:
		return "Ptr"
	case TagPtrTo:
		return "PtrTo"
	case TagFunction:
		return "Function"
	case TagTypeDef:
		return "TypeDef"
	case TagPolyVI:
		return "PolyVI"
	default:
		return "Unknown"
	}
}
