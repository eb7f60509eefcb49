// Package objects holds the ~45 concrete decoded bus-event types this
// reader produces, one file per protocol family, plus the Unhandled
// fallback for object types the registry does not recognize.
//
// Every decoder has the same shape: it receives a cursor already bounded to
// exactly its object's payload (so it can never read into the next object)
// and the normalized header, and returns a concrete LogObject or a
// recoverable decode error. Callers never construct these directly; the
// registry package's decoder table does.
package objects

import "github.com/tracebus/blf/objtype"

// LogObject is the discriminated-union member every decoder produces. The
// concrete Go type of the value *is* the discriminant — callers type-switch
// on it rather than reading a separate tag, since the object_type the
// registry dispatched on always matches the concrete type decoded.
type LogObject interface {
	// Type returns the object_type tag this value was decoded from.
	Type() objtype.Type
	// TimestampNs returns the normalized (nanosecond) event timestamp.
	TimestampNs() uint64
	// Channel returns the bus channel this event occurred on, when the
	// concrete type carries one. Only CanMessage, CanMessage2, CanFdMessage,
	// CanFdMessage64, and LinMessage do — every other type returns false
	// here.
	Channel() (uint16, bool)
}

// Unhandled is produced for any object_type the registry has no decoder
// for. Its RawBytes are exactly the payload bytes between the header's end
// and object_size, preserved verbatim.
type Unhandled struct {
	TagValue  objtype.Type
	Timestamp uint64
	RawBytes  []byte
}

func (u Unhandled) Type() objtype.Type        { return u.TagValue }
func (u Unhandled) TimestampNs() uint64       { return u.Timestamp }
func (u Unhandled) Channel() (uint16, bool)   { return 0, false }

var _ LogObject = Unhandled{}
