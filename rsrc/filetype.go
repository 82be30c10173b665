package rsrc

// FileType identifies the kind of top-level document a resource file holds,
// carried as the 4-byte tag in every chained RSRC header (spec.md §6).
type FileType uint8

const (
	FileTypeNone FileType = iota
	FileTypeControl
	FileTypeDLog
	FileTypeClassLib
	FileTypeProject
	FileTypeLibrary
	FileTypeLLB
	FileTypeMenuPalette
	FileTypeTemplateControl
	FileTypeTemplateVI
	FileTypeXControl
	FileTypeVI
)

var fileTypeTags = map[FileType][4]byte{
	FileTypeControl:         {'L', 'V', 'C', 'C'},
	FileTypeDLog:            {'L', 'V', 'D', 'L'},
	FileTypeClassLib:        {'C', 'L', 'I', 'B'},
	FileTypeProject:         {'L', 'V', 'P', 'J'},
	FileTypeLibrary:         {'L', 'I', 'B', 'R'},
	FileTypeLLB:             {'L', 'V', 'A', 'R'},
	FileTypeMenuPalette:     {'L', 'M', 'N', 'U'},
	FileTypeTemplateControl: {'s', 'V', 'C', 'C'},
	FileTypeTemplateVI:      {'s', 'V', 'I', 'N'},
	FileTypeXControl:        {'L', 'V', 'X', 'C'},
	FileTypeVI:              {'L', 'V', 'I', 'N'},
}

var fileTypeExtensions = map[FileType]string{
	FileTypeControl:         "ctl",
	FileTypeDLog:            "dlog",
	FileTypeClassLib:        "lvclass",
	FileTypeProject:         "lvproj",
	FileTypeLibrary:         "lvlib",
	FileTypeLLB:             "llb",
	FileTypeMenuPalette:     "mnu",
	FileTypeTemplateControl: "ctt",
	FileTypeTemplateVI:      "vit",
	FileTypeXControl:        "xctl",
	FileTypeVI:              "vi",
}

// Tag returns the 4-byte file-type identifier written into a RSRC header.
func (t FileType) Tag() [4]byte { return fileTypeTags[t] }

// Ext returns the conventional file extension for t, or "rsrc" if t is
// unrecognized (mirrors the original reader's fallback).
func (t FileType) Ext() string {
	if ext, ok := fileTypeExtensions[t]; ok {
		return ext
	}

	return "rsrc"
}

var fileTypeNames = map[FileType]string{
	FileTypeControl:         "Control",
	FileTypeDLog:            "DLog",
	FileTypeClassLib:        "ClassLib",
	FileTypeProject:         "Project",
	FileTypeLibrary:         "Library",
	FileTypeLLB:             "LLB",
	FileTypeMenuPalette:     "MenuPalette",
	FileTypeTemplateControl: "TemplateControl",
	FileTypeTemplateVI:      "TemplateVI",
	FileTypeXControl:        "XControl",
	FileTypeVI:              "VI",
}

func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}

	return "None"
}

// RecognizeFileType maps a 4-byte tag read from a header back to its
// FileType, or FileTypeNone if the tag matches none of the 11 known kinds.
func RecognizeFileType(tag [4]byte) FileType {
	for ft, want := range fileTypeTags {
		if want == tag {
			return ft
		}
	}

	return FileTypeNone
}
