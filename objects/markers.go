package objects

import (
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// readVarString reads a uint32 length-prefixed UTF-8 string, the decode
// side of the length-prefixed text encoding the wider codebase uses for
// marker and trigger text (mirrored here from its encode-direction
// counterpart). The length is clamped to the cursor's remaining bytes
// rather than rejected outright, so a truncated trailing string is still
// returned instead of failing the whole object; the truncation itself is
// not reported.
func readVarString(c *cursor.Cursor) (string, error) {
	length, err := c.ReadUint32()
	if err != nil {
		return "", err
	}
	n := int(length)
	if n > c.Remaining() {
		n = c.Remaining()
	}
	data, err := c.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AppTrigger marks a point in time an analysis application injected, e.g. a
// measurement-start/stop boundary.
type AppTrigger struct {
	Timestamp   uint64
	PreTrigger  uint64
	PostTrigger uint64
	Reason      uint32
}

func (m AppTrigger) Type() objtype.Type      { return objtype.AppTrigger }
func (m AppTrigger) TimestampNs() uint64     { return m.Timestamp }
func (m AppTrigger) Channel() (uint16, bool) { return 0, false }

// DecodeAppTrigger reads an AppTrigger body from c.
func DecodeAppTrigger(c *cursor.Cursor, h *header.ObjectHeader) (AppTrigger, error) {
	preTrigger, err := c.ReadUint64()
	if err != nil {
		return AppTrigger{}, err
	}
	postTrigger, err := c.ReadUint64()
	if err != nil {
		return AppTrigger{}, err
	}
	reason, err := c.ReadUint32()
	if err != nil {
		return AppTrigger{}, err
	}
	return AppTrigger{
		Timestamp: h.TimestampNs, PreTrigger: preTrigger, PostTrigger: postTrigger, Reason: reason,
	}, nil
}

// EventComment is free-form operator text attached to a point in the
// capture timeline.
type EventComment struct {
	Timestamp uint64
	Text      string
}

func (m EventComment) Type() objtype.Type      { return objtype.EventComment }
func (m EventComment) TimestampNs() uint64     { return m.Timestamp }
func (m EventComment) Channel() (uint16, bool) { return 0, false }

// DecodeEventComment reads an EventComment body from c.
func DecodeEventComment(c *cursor.Cursor, h *header.ObjectHeader) (EventComment, error) {
	text, err := readVarString(c)
	if err != nil {
		return EventComment{}, err
	}
	return EventComment{Timestamp: h.TimestampNs, Text: text}, nil
}

// GlobalMarker is a named, colored bookmark an analyst placed in the
// capture, shared across all channels.
type GlobalMarker struct {
	Timestamp   uint64
	Color       uint32
	GroupName   string
	MarkerName  string
	Description string
}

func (m GlobalMarker) Type() objtype.Type      { return objtype.GlobalMarker }
func (m GlobalMarker) TimestampNs() uint64     { return m.Timestamp }
func (m GlobalMarker) Channel() (uint16, bool) { return 0, false }

// DecodeGlobalMarker reads a GlobalMarker body from c.
func DecodeGlobalMarker(c *cursor.Cursor, h *header.ObjectHeader) (GlobalMarker, error) {
	color, err := c.ReadUint32()
	if err != nil {
		return GlobalMarker{}, err
	}
	groupName, err := readVarString(c)
	if err != nil {
		return GlobalMarker{}, err
	}
	markerName, err := readVarString(c)
	if err != nil {
		return GlobalMarker{}, err
	}
	description, err := readVarString(c)
	if err != nil {
		return GlobalMarker{}, err
	}
	return GlobalMarker{
		Timestamp: h.TimestampNs, Color: color,
		GroupName: groupName, MarkerName: markerName, Description: description,
	}, nil
}
