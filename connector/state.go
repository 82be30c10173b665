package connector

// State is the tri-state reconciliation tag between a Connector's raw bytes
// and its derived fields (spec.md §9 Design Note "Dual state").
//
// Mutating fields invalidates raw bytes (StateParsedOnly); a successful
// synthesize() moves the Connector to StateBoth. Only one direction is ever
// pending at a time — there is no flag pair to get out of sync.
type State uint8

const (
	// StateRawOnly means raw_bytes was just read or set; fields are not
	// derived yet.
	StateRawOnly State = iota
	// StateParsedOnly means fields were just set or mutated; raw_bytes is
	// stale and must be re-synthesized before use.
	StateParsedOnly
	// StateBoth means raw_bytes and fields agree.
	StateBoth
)

func (s State) String() string {
	switch s {
	case StateRawOnly:
		return "raw-only"
	case StateParsedOnly:
		return "parsed-only"
	case StateBoth:
		return "both"
	default:
		return "unknown"
	}
}
