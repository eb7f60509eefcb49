package objects

import (
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// FlexRayData is a received FlexRay static- or dynamic-segment frame. Its
// data trails the fixed fields and is bounded by whatever the cursor has
// remaining: declared object_size is authoritative over field-sum
// arithmetic, so no fixed data length is assumed here.
type FlexRayData struct {
	Timestamp uint64
	Channel_  uint16
	SlotID    uint16
	Cycle     uint8
	DLC       uint8
	Data      []byte
}

func (m FlexRayData) Type() objtype.Type      { return objtype.FlexRayData }
func (m FlexRayData) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayData) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayData reads a FlexRayData body from c.
func DecodeFlexRayData(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayData, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayData{}, err
	}
	slotID, err := c.ReadUint16()
	if err != nil {
		return FlexRayData{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRayData{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return FlexRayData{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return FlexRayData{}, err
	}
	return FlexRayData{
		Timestamp: h.TimestampNs, Channel_: channel, SlotID: slotID, Cycle: cycle, DLC: dlc,
		Data: append([]byte(nil), data...),
	}, nil
}

// FlexRaySync reports a FlexRay cycle-start synchronization pulse.
type FlexRaySync struct {
	Timestamp uint64
	Channel_  uint16
	Cycle     uint8
}

func (m FlexRaySync) Type() objtype.Type      { return objtype.FlexRaySync }
func (m FlexRaySync) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRaySync) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRaySync reads a FlexRaySync body from c.
func DecodeFlexRaySync(c *cursor.Cursor, h *header.ObjectHeader) (FlexRaySync, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRaySync{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRaySync{}, err
	}
	if _, err := c.ReadUint8(); err != nil { // reserved
		return FlexRaySync{}, err
	}
	return FlexRaySync{Timestamp: h.TimestampNs, Channel_: channel, Cycle: cycle}, nil
}

// FlexRayV6Message is the legacy (V6 driver generation) FlexRay frame
// record.
type FlexRayV6Message struct {
	Timestamp   uint64
	Channel_    uint16
	Version     uint8
	ChannelMask uint8
	Dir         uint8
	Cycle       uint8
	FrameID     uint16
	HeaderCRC   uint16
	FrameState  uint16
	Data        []byte
}

func (m FlexRayV6Message) Type() objtype.Type      { return objtype.FlexRayV6Message }
func (m FlexRayV6Message) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayV6Message) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayV6Message reads a FlexRayV6Message body from c.
func DecodeFlexRayV6Message(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayV6Message, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	version, err := c.ReadUint8()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	channelMask, err := c.ReadUint8()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	dir, err := c.ReadUint8()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	frameID, err := c.ReadUint16()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	headerCRC, err := c.ReadUint16()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	frameState, err := c.ReadUint16()
	if err != nil {
		return FlexRayV6Message{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return FlexRayV6Message{}, err
	}
	return FlexRayV6Message{
		Timestamp: h.TimestampNs, Channel_: channel, Version: version, ChannelMask: channelMask,
		Dir: dir, Cycle: cycle, FrameID: frameID, HeaderCRC: headerCRC, FrameState: frameState,
		Data: append([]byte(nil), data...),
	}, nil
}

// FlexRayV6StartCycleEvent marks a cycle boundary under the V6 driver
// generation.
type FlexRayV6StartCycleEvent struct {
	Timestamp uint64
	Channel_  uint16
	Cycle     uint8
}

func (m FlexRayV6StartCycleEvent) Type() objtype.Type      { return objtype.FlexRayV6StartCycleEvent }
func (m FlexRayV6StartCycleEvent) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayV6StartCycleEvent) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayV6StartCycleEvent reads a FlexRayV6StartCycleEvent body from
// c.
func DecodeFlexRayV6StartCycleEvent(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayV6StartCycleEvent, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayV6StartCycleEvent{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRayV6StartCycleEvent{}, err
	}
	return FlexRayV6StartCycleEvent{Timestamp: h.TimestampNs, Channel_: channel, Cycle: cycle}, nil
}

// FlexRayStatusEvent reports a controller status/error-mode transition.
type FlexRayStatusEvent struct {
	Timestamp  uint64
	Channel_   uint16
	StatusType uint16
	InfoMask   uint32
}

func (m FlexRayStatusEvent) Type() objtype.Type      { return objtype.FlexRayStatusEvent }
func (m FlexRayStatusEvent) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayStatusEvent) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayStatusEvent reads a FlexRayStatusEvent body from c.
func DecodeFlexRayStatusEvent(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayStatusEvent, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayStatusEvent{}, err
	}
	statusType, err := c.ReadUint16()
	if err != nil {
		return FlexRayStatusEvent{}, err
	}
	infoMask, err := c.ReadUint32()
	if err != nil {
		return FlexRayStatusEvent{}, err
	}
	return FlexRayStatusEvent{Timestamp: h.TimestampNs, Channel_: channel, StatusType: statusType, InfoMask: infoMask}, nil
}

// FlexRayVFrError reports a Vector-driver-generation ("VFr") FlexRay
// controller error.
type FlexRayVFrError struct {
	Timestamp   uint64
	Channel_    uint16
	Version     uint16
	ChannelMask uint16
	Cycle       uint8
	Tag         uint8
	Data        uint32
}

func (m FlexRayVFrError) Type() objtype.Type      { return objtype.FlexRayVFrError }
func (m FlexRayVFrError) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayVFrError) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayVFrError reads a FlexRayVFrError body from c.
func DecodeFlexRayVFrError(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayVFrError, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrError{}, err
	}
	version, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrError{}, err
	}
	channelMask, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrError{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRayVFrError{}, err
	}
	tag, err := c.ReadUint8()
	if err != nil {
		return FlexRayVFrError{}, err
	}
	data, err := c.ReadUint32()
	if err != nil {
		return FlexRayVFrError{}, err
	}
	return FlexRayVFrError{
		Timestamp: h.TimestampNs, Channel_: channel, Version: version, ChannelMask: channelMask,
		Cycle: cycle, Tag: tag, Data: data,
	}, nil
}

// FlexRayVFrStatus reports VFr-generation controller status flags.
type FlexRayVFrStatus struct {
	Timestamp    uint64
	Channel_     uint16
	Version      uint16
	ChannelMask  uint16
	StatusFlags  uint16
}

func (m FlexRayVFrStatus) Type() objtype.Type      { return objtype.FlexRayVFrStatus }
func (m FlexRayVFrStatus) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayVFrStatus) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayVFrStatus reads a FlexRayVFrStatus body from c.
func DecodeFlexRayVFrStatus(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayVFrStatus, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrStatus{}, err
	}
	version, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrStatus{}, err
	}
	channelMask, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrStatus{}, err
	}
	statusFlags, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrStatus{}, err
	}
	return FlexRayVFrStatus{
		Timestamp: h.TimestampNs, Channel_: channel, Version: version,
		ChannelMask: channelMask, StatusFlags: statusFlags,
	}, nil
}

// FlexRayVFrStartCycle marks a cycle boundary under the VFr driver
// generation.
type FlexRayVFrStartCycle struct {
	Timestamp   uint64
	Channel_    uint16
	Version     uint16
	ChannelMask uint16
	Cycle       uint8
}

func (m FlexRayVFrStartCycle) Type() objtype.Type      { return objtype.FlexRayVFrStartCycle }
func (m FlexRayVFrStartCycle) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayVFrStartCycle) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayVFrStartCycle reads a FlexRayVFrStartCycle body from c.
func DecodeFlexRayVFrStartCycle(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayVFrStartCycle, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrStartCycle{}, err
	}
	version, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrStartCycle{}, err
	}
	channelMask, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrStartCycle{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRayVFrStartCycle{}, err
	}
	return FlexRayVFrStartCycle{
		Timestamp: h.TimestampNs, Channel_: channel, Version: version, ChannelMask: channelMask, Cycle: cycle,
	}, nil
}

// FlexRayVFrReceiveMsg is the VFr-generation received-message record, the
// most common FlexRay leaf object in a capture.
type FlexRayVFrReceiveMsg struct {
	Timestamp    uint64
	Channel_     uint16
	Version      uint16
	ChannelMask  uint16
	Dir          uint8
	Cycle        uint8
	FrameID      uint16
	HeaderCRC1   uint16
	HeaderCRC2   uint16
	ByteCount    uint16
	Data         []byte
}

func (m FlexRayVFrReceiveMsg) Type() objtype.Type      { return objtype.FlexRayVFrReceiveMsg }
func (m FlexRayVFrReceiveMsg) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayVFrReceiveMsg) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayVFrReceiveMsg reads a FlexRayVFrReceiveMsg body from c.
func DecodeFlexRayVFrReceiveMsg(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayVFrReceiveMsg, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	version, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	channelMask, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	dir, err := c.ReadUint8()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	frameID, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	headerCRC1, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	headerCRC2, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	byteCount, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return FlexRayVFrReceiveMsg{}, err
	}

	return FlexRayVFrReceiveMsg{
		Timestamp: h.TimestampNs, Channel_: channel, Version: version, ChannelMask: channelMask,
		Dir: dir, Cycle: cycle, FrameID: frameID, HeaderCRC1: headerCRC1, HeaderCRC2: headerCRC2,
		ByteCount: byteCount, Data: append([]byte(nil), data...),
	}, nil
}

// FlexRayVFrReceiveMsgEx extends FlexRayVFrReceiveMsg with additional
// receive-filter telemetry newer driver builds capture.
type FlexRayVFrReceiveMsgEx struct {
	Timestamp   uint64
	Channel_    uint16
	Version     uint16
	ChannelMask uint16
	Dir         uint8
	Cycle       uint8
	FrameID     uint16
	HeaderCRC1  uint16
	HeaderCRC2  uint16
	ByteCount   uint16
	FrameRF     uint16
	Data        []byte
}

func (m FlexRayVFrReceiveMsgEx) Type() objtype.Type      { return objtype.FlexRayVFrReceiveMsgEx }
func (m FlexRayVFrReceiveMsgEx) TimestampNs() uint64     { return m.Timestamp }
func (m FlexRayVFrReceiveMsgEx) Channel() (uint16, bool) { return 0, false }

// DecodeFlexRayVFrReceiveMsgEx reads a FlexRayVFrReceiveMsgEx body from c.
func DecodeFlexRayVFrReceiveMsgEx(c *cursor.Cursor, h *header.ObjectHeader) (FlexRayVFrReceiveMsgEx, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	version, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	channelMask, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	dir, err := c.ReadUint8()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	cycle, err := c.ReadUint8()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	frameID, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	headerCRC1, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	headerCRC2, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	byteCount, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	frameRF, err := c.ReadUint16()
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return FlexRayVFrReceiveMsgEx{}, err
	}

	return FlexRayVFrReceiveMsgEx{
		Timestamp: h.TimestampNs, Channel_: channel, Version: version, ChannelMask: channelMask,
		Dir: dir, Cycle: cycle, FrameID: frameID, HeaderCRC1: headerCRC1, HeaderCRC2: headerCRC2,
		ByteCount: byteCount, FrameRF: frameRF, Data: append([]byte(nil), data...),
	}, nil
}
