// Package diag defines the non-fatal diagnostic record the top-level reader
// accumulates while walking a capture. Every recoverable decode failure
// becomes one Diagnostic instead of aborting the read; only a malformed
// file preamble is fatal, and that path never touches this package.
package diag

import "fmt"

// Kind classifies why a single object or container was skipped.
type Kind uint8

const (
	KindBadSignature Kind = iota
	KindUnknownHeaderVersion
	KindInconsistentHeader
	KindTruncated
	KindUnsupportedCompression
	KindBadContainer
)

func (k Kind) String() string {
	switch k {
	case KindBadSignature:
		return "BadSignature"
	case KindUnknownHeaderVersion:
		return "UnknownHeaderVersion"
	case KindInconsistentHeader:
		return "InconsistentHeader"
	case KindTruncated:
		return "Truncated"
	case KindUnsupportedCompression:
		return "UnsupportedCompression"
	case KindBadContainer:
		return "BadContainer"
	default:
		return "Unknown"
	}
}

// Diagnostic records one recoverable failure: where it happened, what kind
// of failure it was, and a short human-readable context (e.g. the
// underlying error text). For a top-level object, Offset is its byte offset
// from the start of the input buffer; for an object inside a LogContainer,
// it is the container's offset plus the object's position within the
// inflated payload.
//
// Count tracks how many times this same (Kind, Context) pair recurred after
// the reader's dedup logic collapsed repeats into a single entry; Offset is
// always the first occurrence's offset. A freshly built Diagnostic has
// Count 1.
type Diagnostic struct {
	Offset  int64
	Kind    Kind
	Context string
	Count   uint32
}

func (d Diagnostic) String() string {
	if d.Count > 1 {
		return fmt.Sprintf("%s@%d: %s (x%d)", d.Kind, d.Offset, d.Context, d.Count)
	}
	return fmt.Sprintf("%s@%d: %s", d.Kind, d.Offset, d.Context)
}

// New builds a Diagnostic with Count 1.
func New(offset int64, kind Kind, context string) Diagnostic {
	return Diagnostic{Offset: offset, Kind: kind, Context: context, Count: 1}
}
