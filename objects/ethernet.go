package objects

import (
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// EthernetFrame is a captured Ethernet frame: a small fixed header
// (channel, direction, flags, byte count) followed by the raw frame bytes,
// bounded by whatever the cursor has remaining.
type EthernetFrame struct {
	Timestamp uint64
	Channel_  uint16
	Dir       uint8
	Flags     uint16
	ByteCount uint16
	Data      []byte
}

func (m EthernetFrame) Type() objtype.Type      { return objtype.EthernetFrame }
func (m EthernetFrame) TimestampNs() uint64     { return m.Timestamp }
func (m EthernetFrame) Channel() (uint16, bool) { return 0, false }

// DecodeEthernetFrame reads an EthernetFrame body from c.
func DecodeEthernetFrame(c *cursor.Cursor, h *header.ObjectHeader) (EthernetFrame, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return EthernetFrame{}, err
	}
	dir, err := c.ReadUint8()
	if err != nil {
		return EthernetFrame{}, err
	}
	if _, err := c.ReadUint8(); err != nil { // reserved/pad
		return EthernetFrame{}, err
	}
	flags, err := c.ReadUint16()
	if err != nil {
		return EthernetFrame{}, err
	}
	byteCount, err := c.ReadUint16()
	if err != nil {
		return EthernetFrame{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return EthernetFrame{}, err
	}

	return EthernetFrame{
		Timestamp: h.TimestampNs, Channel_: channel, Dir: dir, Flags: flags,
		ByteCount: byteCount, Data: append([]byte(nil), data...),
	}, nil
}
