package rsrc

// Block is an opaque named block: a 4-byte tag and its raw payload bytes.
// Dispatch beyond locating the VCTP block — icons, password hashes,
// version stamps — is explicitly out of scope (spec.md §1); every block
// other than VCTP is surfaced only in this opaque shape.
type Block struct {
	Tag  [4]byte
	Data []byte
}

// TagString returns Tag as a 4-character string.
func (b Block) TagString() string { return string(b.Tag[:]) }
