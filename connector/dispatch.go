package connector

import "github.com/ymj120572092/pylabview/format"

// newPayload selects the Payload implementation for a type tag, per the
// dispatch table of spec.md §4.3. The second return value is true when tag
// fell outside the closed family and was classified as Opaque (spec.md §7
// kind 3: not an error, the record is retained verbatim).
func newPayload(tag format.TypeTag) (Payload, bool) {
	switch {
	case tag == format.TagVoid:
		return &Void{}, false
	case tag == format.TagTag:
		return &Tag{}, false
	case tag >= format.TagNumInt8 && tag <= format.TagNumComplexExt:
		return &Numeric{Tag: tag}, false
	case tag >= format.TagUnitUInt8 && tag <= format.TagUnitComplexExt:
		return &Unit{Tag: tag}, false
	case tag == format.TagBooleanU16 || tag == format.TagBoolean:
		return &Boolean{Tag: tag}, false
	case tag >= format.TagString && tag <= format.TagSubString:
		return &Blob{Tag: tag}, false
	case tag >= format.TagArray && tag <= format.TagSubArray:
		return &Array{Tag: tag}, false
	case tag == format.TagCluster:
		return &Cluster{}, false
	case tag == format.TagLVVariant:
		return &LVVariant{}, false
	case tag == format.TagMeasureData:
		return &MeasureData{}, false
	case tag == format.TagComplexFixedPt || tag == format.TagFixedPoint:
		return &FixedPoint{Tag: tag}, false
	case tag == format.TagTypeBlock || tag == format.TagVoidBlock || tag == format.TagAlignmntMarker || tag == format.TagPtrTo:
		return &BlockSingleClient{Tag: tag}, false
	case tag == format.TagAlignedBlock || tag == format.TagRepeatedBlock:
		return &BlockRepeated{Tag: tag}, false
	case tag == format.TagRefnum:
		return &Reference{}, false
	case tag == format.TagPtr:
		return &Pointer{}, false
	case tag == format.TagFunction:
		return &Function{}, false
	case tag == format.TagTypeDef:
		return &TypeDef{}, false
	case tag == format.TagPolyVI:
		return &PolyVI{}, false
	default:
		return &Opaque{Tag: tag}, true
	}
}
