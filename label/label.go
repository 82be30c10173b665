// Package label implements the trailing length-prefixed label protocol
// attached to connector records (spec.md §4.2): a Pascal-style byte string
// discovered by scanning a bounded window that ends at the record's end,
// lowest position first, rather than read at a fixed offset, since some
// records carry opaque padding between their payload and their label.
package label

// DefaultSearchWindow bounds how far back from the end of a record the
// label scan looks. Per spec.md §9 Open Question (b) this is an empirical
// constant, not a format invariant, so it is exposed as a configuration
// knob rather than hard-coded at call sites.
const DefaultSearchWindow = 256

// MaxLength is the largest label a single length-prefixed byte can encode.
const MaxLength = 255

// isLabelByte reports whether b may appear inside a label: carriage
// return, line feed, tab, or any printable ASCII byte (>= 0x20).
func isLabelByte(b byte) bool {
	switch b {
	case '\r', '\n', '\t':
		return true
	default:
		return b >= 32
	}
}

// Find scans payload (the full record's raw bytes) for a trailing Pascal
// label within [max(recordEnd-window, 0), recordEnd), per spec.md §4.2.
//
// At most one trailing zero byte is stripped from recordEnd before the
// scan: records with an odd body length carry a single even-padding zero
// byte after the label, and a label position is never measured through it.
//
// It returns the label bytes (a sub-slice of payload, not cloned) and the
// offset of the length byte that introduced it. ok is false if no
// candidate position satisfies the length/printability constraints, in
// which case callers should record an empty label and a diagnostic.
//
// Find is idempotent: calling it twice on the same payload/recordEnd
// yields the same result, satisfying spec.md §8 property 4.
func Find(payload []byte, recordEnd int, window int) (lbl []byte, lenOffset int, ok bool) {
	if window <= 0 {
		window = DefaultSearchWindow
	}

	if recordEnd > 0 && payload[recordEnd-1] == 0 {
		recordEnd--
	}

	start := recordEnd - window
	if start < 0 {
		start = 0
	}

	for i := start; i < recordEnd; i++ {
		claimed := int(payload[i])
		if recordEnd-i-1 != claimed {
			continue
		}

		candidate := payload[i+1 : recordEnd]
		if allLabelBytes(candidate) {
			return candidate, i, true
		}
	}

	return nil, 0, false
}

func allLabelBytes(b []byte) bool {
	for _, c := range b {
		if !isLabelByte(c) {
			return false
		}
	}

	return true
}

// Encode appends a length-prefixed label (1-byte length, then up to 255
// bytes) to dst and returns the result. Labels longer than MaxLength are
// truncated, matching the writer's on-disk representation.
func Encode(dst []byte, lbl []byte) []byte {
	if len(lbl) > MaxLength {
		lbl = lbl[:MaxLength]
	}

	dst = append(dst, byte(len(lbl)))
	dst = append(dst, lbl...)

	return dst
}
