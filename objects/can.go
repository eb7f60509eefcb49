package objects

import (
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// CanMessage is a CAN classic frame: a 16-byte body of channel, flags, dlc,
// id, and 8 bytes of data.
type CanMessage struct {
	Timestamp uint64
	Channel_  uint16
	Flags     uint8
	DLC       uint8
	ID        uint32
	Data      [8]byte
}

func (m CanMessage) Type() objtype.Type      { return objtype.CanMessage }
func (m CanMessage) TimestampNs() uint64     { return m.Timestamp }
func (m CanMessage) Channel() (uint16, bool) { return m.Channel_, true }

// DataLength returns DLC clamped to 8, the number of Data bytes the
// producer actually declared valid. Data itself always holds the full 8
// bytes regardless of DLC.
func (m CanMessage) DataLength() int {
	if m.DLC > 8 {
		return 8
	}
	return int(m.DLC)
}

// DecodeCanMessage reads a CanMessage body from c.
//
// dlc may legitimately exceed 8 in malformed producer output; the decoder
// preserves the raw 8 data bytes regardless and lets the caller decide how
// to interpret an out-of-range dlc.
func DecodeCanMessage(c *cursor.Cursor, h *header.ObjectHeader) (CanMessage, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return CanMessage{}, err
	}
	flags, err := c.ReadUint8()
	if err != nil {
		return CanMessage{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return CanMessage{}, err
	}
	id, err := c.ReadUint32()
	if err != nil {
		return CanMessage{}, err
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return CanMessage{}, err
	}

	m := CanMessage{Timestamp: h.TimestampNs, Channel_: channel, Flags: flags, DLC: dlc, ID: id}
	copy(m.Data[:], data)
	return m, nil
}

// EncodeCanMessage serializes m's body (not including the object header),
// the inverse of DecodeCanMessage, for round-trip test fixtures.
func EncodeCanMessage(m CanMessage) []byte {
	b := make([]byte, 16)
	le.PutUint16(b[0:2], m.Channel_)
	b[2] = m.Flags
	b[3] = m.DLC
	le.PutUint32(b[4:8], m.ID)
	copy(b[8:16], m.Data[:])
	return b
}

// CanMessage2 extends CanMessage with the frame-length and bit-count
// telemetry later driver revisions added; its first 16 bytes are identical
// to CanMessage's body.
type CanMessage2 struct {
	Timestamp     uint64
	Channel_      uint16
	Flags         uint8
	DLC           uint8
	ID            uint32
	Data          [8]byte
	FrameLengthNs uint32
	BitCount      uint16
	Reserved      uint16
}

func (m CanMessage2) Type() objtype.Type      { return objtype.CanMessage2 }
func (m CanMessage2) TimestampNs() uint64     { return m.Timestamp }
func (m CanMessage2) Channel() (uint16, bool) { return m.Channel_, true }

// DecodeCanMessage2 reads a CanMessage2 body from c.
func DecodeCanMessage2(c *cursor.Cursor, h *header.ObjectHeader) (CanMessage2, error) {
	base, err := DecodeCanMessage(c, h)
	if err != nil {
		return CanMessage2{}, err
	}
	frameLength, err := c.ReadUint32()
	if err != nil {
		return CanMessage2{}, err
	}
	bitCount, err := c.ReadUint16()
	if err != nil {
		return CanMessage2{}, err
	}
	reserved, err := c.ReadUint16()
	if err != nil {
		return CanMessage2{}, err
	}

	return CanMessage2{
		Timestamp: base.Timestamp, Channel_: base.Channel_, Flags: base.Flags,
		DLC: base.DLC, ID: base.ID, Data: base.Data,
		FrameLengthNs: frameLength, BitCount: bitCount, Reserved: reserved,
	}, nil
}

// CanErrorFrame reports a bus error detected on a channel; length is a
// controller-specific error code/length field rather than a payload size.
type CanErrorFrame struct {
	Timestamp uint64
	Channel_  uint16
	Length    uint16
}

func (m CanErrorFrame) Type() objtype.Type      { return objtype.CanErrorFrame }
func (m CanErrorFrame) TimestampNs() uint64     { return m.Timestamp }
func (m CanErrorFrame) Channel() (uint16, bool) { return 0, false }

// DecodeCanErrorFrame reads a CanErrorFrame body from c.
func DecodeCanErrorFrame(c *cursor.Cursor, h *header.ObjectHeader) (CanErrorFrame, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return CanErrorFrame{}, err
	}
	length, err := c.ReadUint16()
	if err != nil {
		return CanErrorFrame{}, err
	}
	return CanErrorFrame{Timestamp: h.TimestampNs, Channel_: channel, Length: length}, nil
}

// CanOverloadFrame reports a CAN bus overload condition on a channel.
type CanOverloadFrame struct {
	Timestamp uint64
	Channel_  uint16
	Reserved  uint16
}

func (m CanOverloadFrame) Type() objtype.Type      { return objtype.CanOverloadFrame }
func (m CanOverloadFrame) TimestampNs() uint64     { return m.Timestamp }
func (m CanOverloadFrame) Channel() (uint16, bool) { return 0, false }

// DecodeCanOverloadFrame reads a CanOverloadFrame body from c.
func DecodeCanOverloadFrame(c *cursor.Cursor, h *header.ObjectHeader) (CanOverloadFrame, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return CanOverloadFrame{}, err
	}
	reserved, err := c.ReadUint16()
	if err != nil {
		return CanOverloadFrame{}, err
	}
	return CanOverloadFrame{Timestamp: h.TimestampNs, Channel_: channel, Reserved: reserved}, nil
}

// CanDriverStatistic is a periodic bus-load/frame-count sample the CAN
// driver emits per channel.
type CanDriverStatistic struct {
	Timestamp            uint64
	Channel_             uint16
	BusLoad              uint32
	StandardDataFrames   uint32
	ExtendedDataFrames   uint32
	StandardRemoteFrames uint32
	ExtendedRemoteFrames uint32
	ErrorFrames          uint32
	OverloadFrames       uint32
}

func (m CanDriverStatistic) Type() objtype.Type      { return objtype.CanDriverStatistic }
func (m CanDriverStatistic) TimestampNs() uint64     { return m.Timestamp }
func (m CanDriverStatistic) Channel() (uint16, bool) { return 0, false }

// DecodeCanDriverStatistic reads a CanDriverStatistic body from c.
func DecodeCanDriverStatistic(c *cursor.Cursor, h *header.ObjectHeader) (CanDriverStatistic, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return CanDriverStatistic{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return CanDriverStatistic{}, err
	}

	var vals [7]uint32
	for i := range vals {
		v, err := c.ReadUint32()
		if err != nil {
			return CanDriverStatistic{}, err
		}
		vals[i] = v
	}

	return CanDriverStatistic{
		Timestamp: h.TimestampNs, Channel_: channel,
		BusLoad: vals[0], StandardDataFrames: vals[1], ExtendedDataFrames: vals[2],
		StandardRemoteFrames: vals[3], ExtendedRemoteFrames: vals[4], ErrorFrames: vals[5],
		OverloadFrames: vals[6],
	}, nil
}

// CanDriverError reports a transceiver-level TX/RX error counter sample.
type CanDriverError struct {
	Timestamp      uint64
	Channel_       uint16
	TxErrorCounter uint8
	RxErrorCounter uint8
}

func (m CanDriverError) Type() objtype.Type      { return objtype.CanDriverError }
func (m CanDriverError) TimestampNs() uint64     { return m.Timestamp }
func (m CanDriverError) Channel() (uint16, bool) { return 0, false }

// DecodeCanDriverError reads a CanDriverError body from c.
func DecodeCanDriverError(c *cursor.Cursor, h *header.ObjectHeader) (CanDriverError, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return CanDriverError{}, err
	}
	txErr, err := c.ReadUint8()
	if err != nil {
		return CanDriverError{}, err
	}
	rxErr, err := c.ReadUint8()
	if err != nil {
		return CanDriverError{}, err
	}
	return CanDriverError{Timestamp: h.TimestampNs, Channel_: channel, TxErrorCounter: txErr, RxErrorCounter: rxErr}, nil
}
