package objects

import (
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// The LIN decoders below follow the CanMessage pattern: a fixed field list
// read in declaration order. Field widths for LIN sub-kinds are known to
// differ across source-version documents, so decoders never assert on
// payload length — the registry hands each decoder a cursor already bounded
// to object_size, and any unread trailing bytes are simply discarded when
// that cursor goes out of scope.

// LinMessage is a successfully received LIN frame.
type LinMessage struct {
	Timestamp uint64
	Channel_  uint16
	ID        uint8
	DLC       uint8
	Data      [8]byte
	CRC       uint16
	Dir       uint8
}

func (m LinMessage) Type() objtype.Type      { return objtype.LinMessage }
func (m LinMessage) TimestampNs() uint64     { return m.Timestamp }
func (m LinMessage) Channel() (uint16, bool) { return m.Channel_, true }

// DecodeLinMessage reads a LinMessage body from c.
func DecodeLinMessage(c *cursor.Cursor, h *header.ObjectHeader) (LinMessage, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinMessage{}, err
	}
	id, err := c.ReadUint8()
	if err != nil {
		return LinMessage{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return LinMessage{}, err
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return LinMessage{}, err
	}
	crc, err := c.ReadUint16()
	if err != nil {
		return LinMessage{}, err
	}
	dir, err := c.ReadUint8()
	if err != nil {
		return LinMessage{}, err
	}

	m := LinMessage{Timestamp: h.TimestampNs, Channel_: channel, ID: id, DLC: dlc, CRC: crc, Dir: dir}
	copy(m.Data[:], data)
	return m, nil
}

// EncodeLinMessage serializes m's body, the inverse of DecodeLinMessage, for
// round-trip test fixtures.
func EncodeLinMessage(m LinMessage) []byte {
	b := make([]byte, 0, 14)
	b = le.AppendUint16(b, m.Channel_)
	b = append(b, m.ID, m.DLC)
	b = append(b, m.Data[:]...)
	b = le.AppendUint16(b, m.CRC)
	b = append(b, m.Dir)
	return b
}

// LinMessage2 extends LinMessage with simulation/CRC-state metadata. It has
// no channel field, so Channel reports false.
type LinMessage2 struct {
	Timestamp uint64
	ID        uint8
	DLC       uint8
	Data      [8]byte
	CRC       uint16
	Dir       uint8
	Simulated uint8
	CRCState  uint8
}

func (m LinMessage2) Type() objtype.Type      { return objtype.LinMessage2 }
func (m LinMessage2) TimestampNs() uint64     { return m.Timestamp }
func (m LinMessage2) Channel() (uint16, bool) { return 0, false }

// DecodeLinMessage2 reads a LinMessage2 body from c.
func DecodeLinMessage2(c *cursor.Cursor, h *header.ObjectHeader) (LinMessage2, error) {
	id, err := c.ReadUint8()
	if err != nil {
		return LinMessage2{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return LinMessage2{}, err
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return LinMessage2{}, err
	}
	crc, err := c.ReadUint16()
	if err != nil {
		return LinMessage2{}, err
	}
	dir, err := c.ReadUint8()
	if err != nil {
		return LinMessage2{}, err
	}
	simulated, err := c.ReadUint8()
	if err != nil {
		return LinMessage2{}, err
	}
	crcState, err := c.ReadUint8()
	if err != nil {
		return LinMessage2{}, err
	}

	m := LinMessage2{Timestamp: h.TimestampNs, ID: id, DLC: dlc, CRC: crc, Dir: dir, Simulated: simulated, CRCState: crcState}
	copy(m.Data[:], data)
	return m, nil
}

// LinCrcError is a LIN frame whose checksum failed validation; it carries
// LinMessage's channel, ID, DLC and data fields, without CRC or direction.
type LinCrcError struct {
	Timestamp uint64
	Channel_  uint16
	ID        uint8
	DLC       uint8
	Data      [8]byte
}

func (m LinCrcError) Type() objtype.Type      { return objtype.LinCrcError }
func (m LinCrcError) TimestampNs() uint64     { return m.Timestamp }
func (m LinCrcError) Channel() (uint16, bool) { return 0, false }

// DecodeLinCrcError reads a LinCrcError body from c.
func DecodeLinCrcError(c *cursor.Cursor, h *header.ObjectHeader) (LinCrcError, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinCrcError{}, err
	}
	id, err := c.ReadUint8()
	if err != nil {
		return LinCrcError{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return LinCrcError{}, err
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return LinCrcError{}, err
	}
	m := LinCrcError{Timestamp: h.TimestampNs, Channel_: channel, ID: id, DLC: dlc}
	copy(m.Data[:], data)
	return m, nil
}

// LinDlcInfo records a learned/expected DLC for a LIN frame ID.
type LinDlcInfo struct {
	Timestamp uint64
	Channel_  uint16
	ID        uint8
	DLC       uint8
}

func (m LinDlcInfo) Type() objtype.Type      { return objtype.LinDlcInfo }
func (m LinDlcInfo) TimestampNs() uint64     { return m.Timestamp }
func (m LinDlcInfo) Channel() (uint16, bool) { return 0, false }

// DecodeLinDlcInfo reads a LinDlcInfo body from c.
func DecodeLinDlcInfo(c *cursor.Cursor, h *header.ObjectHeader) (LinDlcInfo, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinDlcInfo{}, err
	}
	id, err := c.ReadUint8()
	if err != nil {
		return LinDlcInfo{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return LinDlcInfo{}, err
	}
	return LinDlcInfo{Timestamp: h.TimestampNs, Channel_: channel, ID: id, DLC: dlc}, nil
}

// LinReceiveError reports a LIN frame the hardware could not receive
// cleanly (framing/timeout/short error).
type LinReceiveError struct {
	Timestamp     uint64
	Channel_      uint16
	ID            uint8
	DLC           uint8
	Data          [8]byte
	StateReason   uint8
	OffendingByte uint8
	ShortError    uint8
}

func (m LinReceiveError) Type() objtype.Type      { return objtype.LinReceiveError }
func (m LinReceiveError) TimestampNs() uint64     { return m.Timestamp }
func (m LinReceiveError) Channel() (uint16, bool) { return 0, false }

// DecodeLinReceiveError reads a LinReceiveError body from c.
func DecodeLinReceiveError(c *cursor.Cursor, h *header.ObjectHeader) (LinReceiveError, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinReceiveError{}, err
	}
	id, err := c.ReadUint8()
	if err != nil {
		return LinReceiveError{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return LinReceiveError{}, err
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return LinReceiveError{}, err
	}
	stateReason, err := c.ReadUint8()
	if err != nil {
		return LinReceiveError{}, err
	}
	offendingByte, err := c.ReadUint8()
	if err != nil {
		return LinReceiveError{}, err
	}
	shortError, err := c.ReadUint8()
	if err != nil {
		return LinReceiveError{}, err
	}

	m := LinReceiveError{
		Timestamp: h.TimestampNs, Channel_: channel, ID: id, DLC: dlc,
		StateReason: stateReason, OffendingByte: offendingByte, ShortError: shortError,
	}
	copy(m.Data[:], data)
	return m, nil
}

// LinSendError reports a LIN frame the node failed to transmit in time.
type LinSendError struct {
	Timestamp     uint64
	Channel_      uint16
	ID            uint8
	EventBaudrate uint32
}

func (m LinSendError) Type() objtype.Type      { return objtype.LinSendError }
func (m LinSendError) TimestampNs() uint64     { return m.Timestamp }
func (m LinSendError) Channel() (uint16, bool) { return 0, false }

// DecodeLinSendError reads a LinSendError body from c.
func DecodeLinSendError(c *cursor.Cursor, h *header.ObjectHeader) (LinSendError, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinSendError{}, err
	}
	id, err := c.ReadUint8()
	if err != nil {
		return LinSendError{}, err
	}
	baudrate, err := c.ReadUint32()
	if err != nil {
		return LinSendError{}, err
	}
	return LinSendError{Timestamp: h.TimestampNs, Channel_: channel, ID: id, EventBaudrate: baudrate}, nil
}

// LinSlaveTimeout reports a LIN slave node missing its scheduled response
// window.
type LinSlaveTimeout struct {
	Timestamp      uint64
	Channel_       uint16
	SlaveID        uint8
	StateID        uint8
	FollowStateID  uint8
}

func (m LinSlaveTimeout) Type() objtype.Type      { return objtype.LinSlaveTimeout }
func (m LinSlaveTimeout) TimestampNs() uint64     { return m.Timestamp }
func (m LinSlaveTimeout) Channel() (uint16, bool) { return 0, false }

// DecodeLinSlaveTimeout reads a LinSlaveTimeout body from c.
func DecodeLinSlaveTimeout(c *cursor.Cursor, h *header.ObjectHeader) (LinSlaveTimeout, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinSlaveTimeout{}, err
	}
	slaveID, err := c.ReadUint8()
	if err != nil {
		return LinSlaveTimeout{}, err
	}
	stateID, err := c.ReadUint8()
	if err != nil {
		return LinSlaveTimeout{}, err
	}
	followStateID, err := c.ReadUint8()
	if err != nil {
		return LinSlaveTimeout{}, err
	}
	return LinSlaveTimeout{
		Timestamp: h.TimestampNs, Channel_: channel, SlaveID: slaveID,
		StateID: stateID, FollowStateID: followStateID,
	}, nil
}

// LinSchedulerModeChange reports a LIN master switching schedule tables.
type LinSchedulerModeChange struct {
	Timestamp uint64
	Channel_  uint16
	OldMode   uint8
	NewMode   uint8
}

func (m LinSchedulerModeChange) Type() objtype.Type      { return objtype.LinSchedulerModeChange }
func (m LinSchedulerModeChange) TimestampNs() uint64     { return m.Timestamp }
func (m LinSchedulerModeChange) Channel() (uint16, bool) { return 0, false }

// DecodeLinSchedulerModeChange reads a LinSchedulerModeChange body from c.
func DecodeLinSchedulerModeChange(c *cursor.Cursor, h *header.ObjectHeader) (LinSchedulerModeChange, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinSchedulerModeChange{}, err
	}
	oldMode, err := c.ReadUint8()
	if err != nil {
		return LinSchedulerModeChange{}, err
	}
	newMode, err := c.ReadUint8()
	if err != nil {
		return LinSchedulerModeChange{}, err
	}
	return LinSchedulerModeChange{Timestamp: h.TimestampNs, Channel_: channel, OldMode: oldMode, NewMode: newMode}, nil
}

// LinSyncError reports out-of-tolerance sync-field bit timing.
type LinSyncError struct {
	Timestamp uint64
	Channel_  uint16
	TimeDiff  [4]uint16
}

func (m LinSyncError) Type() objtype.Type      { return objtype.LinSyncError }
func (m LinSyncError) TimestampNs() uint64     { return m.Timestamp }
func (m LinSyncError) Channel() (uint16, bool) { return 0, false }

// DecodeLinSyncError reads a LinSyncError body from c.
func DecodeLinSyncError(c *cursor.Cursor, h *header.ObjectHeader) (LinSyncError, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinSyncError{}, err
	}
	var diffs [4]uint16
	for i := range diffs {
		v, err := c.ReadUint16()
		if err != nil {
			return LinSyncError{}, err
		}
		diffs[i] = v
	}
	return LinSyncError{Timestamp: h.TimestampNs, Channel_: channel, TimeDiff: diffs}, nil
}

// LinBaudrateEvent reports a measured/changed LIN bus baudrate.
type LinBaudrateEvent struct {
	Timestamp uint64
	Channel_  uint16
	Baudrate  uint32
}

func (m LinBaudrateEvent) Type() objtype.Type      { return objtype.LinBaudrateEvent }
func (m LinBaudrateEvent) TimestampNs() uint64     { return m.Timestamp }
func (m LinBaudrateEvent) Channel() (uint16, bool) { return 0, false }

// DecodeLinBaudrateEvent reads a LinBaudrateEvent body from c.
func DecodeLinBaudrateEvent(c *cursor.Cursor, h *header.ObjectHeader) (LinBaudrateEvent, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinBaudrateEvent{}, err
	}
	baudrate, err := c.ReadUint32()
	if err != nil {
		return LinBaudrateEvent{}, err
	}
	return LinBaudrateEvent{Timestamp: h.TimestampNs, Channel_: channel, Baudrate: baudrate}, nil
}

// LinSleepModeEvent reports a LIN bus entering sleep mode.
type LinSleepModeEvent struct {
	Timestamp uint64
	Channel_  uint16
	Reason    uint8
}

func (m LinSleepModeEvent) Type() objtype.Type      { return objtype.LinSleepModeEvent }
func (m LinSleepModeEvent) TimestampNs() uint64     { return m.Timestamp }
func (m LinSleepModeEvent) Channel() (uint16, bool) { return 0, false }

// DecodeLinSleepModeEvent reads a LinSleepModeEvent body from c.
func DecodeLinSleepModeEvent(c *cursor.Cursor, h *header.ObjectHeader) (LinSleepModeEvent, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinSleepModeEvent{}, err
	}
	reason, err := c.ReadUint8()
	if err != nil {
		return LinSleepModeEvent{}, err
	}
	return LinSleepModeEvent{Timestamp: h.TimestampNs, Channel_: channel, Reason: reason}, nil
}

// LinWakeupEvent reports a LIN bus waking from sleep mode.
type LinWakeupEvent struct {
	Timestamp uint64
	Channel_  uint16
	Signal    uint8
	External  uint8
}

func (m LinWakeupEvent) Type() objtype.Type      { return objtype.LinWakeupEvent }
func (m LinWakeupEvent) TimestampNs() uint64     { return m.Timestamp }
func (m LinWakeupEvent) Channel() (uint16, bool) { return 0, false }

// DecodeLinWakeupEvent reads a LinWakeupEvent body from c.
func DecodeLinWakeupEvent(c *cursor.Cursor, h *header.ObjectHeader) (LinWakeupEvent, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return LinWakeupEvent{}, err
	}
	signal, err := c.ReadUint8()
	if err != nil {
		return LinWakeupEvent{}, err
	}
	external, err := c.ReadUint8()
	if err != nil {
		return LinWakeupEvent{}, err
	}
	return LinWakeupEvent{Timestamp: h.TimestampNs, Channel_: channel, Signal: signal, External: external}, nil
}
