// Package diag implements the non-throwing diagnostic accumulator described
// in spec.md §5/§7: sanity and structural findings are appended to a Sink
// instead of being returned as Go errors, so a malformed record downgrades
// to a diagnostic while the rest of the catalog still parses.
package diag

import "fmt"

// Kind classifies a Finding into one of the four error kinds from spec.md §7.
type Kind uint8

const (
	// Structural marks header/length/recursion impossibilities.
	Structural Kind = iota
	// InvariantViolation marks a failed sanity check (oversized counts,
	// illegal references, wrong constant fields).
	InvariantViolation
	// UnknownVariant marks a type tag outside the dispatch table. Not an
	// error — the record is retained as opaque bytes.
	UnknownVariant
	// TextMismatch marks an unknown XML tag encountered while loading text.
	TextMismatch
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case InvariantViolation:
		return "invariant-violation"
	case UnknownVariant:
		return "unknown-variant"
	case TextMismatch:
		return "text-mismatch"
	default:
		return "unknown"
	}
}

// Finding is one accumulated diagnostic.
type Finding struct {
	Kind        Kind
	RecordIndex int // catalog index, or -1 if not tied to a specific record
	Message     string
	// Fatal marks a Structural finding severe enough that the offending
	// record could not be parsed at all (its slot is kept raw-only).
	Fatal bool
}

func (f Finding) String() string {
	if f.RecordIndex < 0 {
		return fmt.Sprintf("[%s] %s", f.Kind, f.Message)
	}

	return fmt.Sprintf("[%s] record %d: %s", f.Kind, f.RecordIndex, f.Message)
}

// Sink accumulates Findings produced while parsing or sanity-checking a
// catalog. A Sink is not safe for concurrent use; the catalog's processing
// model is single-threaded (spec.md §5).
type Sink struct {
	findings []Finding
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends a Finding to the sink.
func (s *Sink) Add(f Finding) {
	s.findings = append(s.findings, f)
}

// Addf is a convenience wrapper that formats Message.
func (s *Sink) Addf(kind Kind, recordIndex int, format string, args ...any) {
	s.Add(Finding{Kind: kind, RecordIndex: recordIndex, Message: fmt.Sprintf(format, args...)})
}

// Findings returns all accumulated findings in order.
func (s *Sink) Findings() []Finding {
	return s.findings
}

// Len returns the number of accumulated findings.
func (s *Sink) Len() int {
	return len(s.findings)
}

// HasFatal reports whether any Structural finding was marked Fatal.
func (s *Sink) HasFatal() bool {
	for _, f := range s.findings {
		if f.Kind == Structural && f.Fatal {
			return true
		}
	}

	return false
}

// Err joins every Fatal Structural finding into a single error, or returns
// nil if there is none. Non-fatal findings never surface as an error —
// callers that want them inspect Findings() directly.
func (s *Sink) Err() error {
	var errs []error
	for _, f := range s.findings {
		if f.Kind == Structural && f.Fatal {
			errs = append(errs, fmt.Errorf("%s", f.String()))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return joinErrors(errs)
}

// Reset clears all accumulated findings, retaining the backing slice.
func (s *Sink) Reset() {
	s.findings = s.findings[:0]
}
