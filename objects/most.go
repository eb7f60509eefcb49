package objects

import (
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// MostSpy is a raw MOST control-channel frame captured in spy mode.
type MostSpy struct {
	Timestamp uint64
	Channel_  uint16
	SourceAdr uint32
	DestAdr   uint32
	Data      []byte
}

func (m MostSpy) Type() objtype.Type      { return objtype.MostSpy }
func (m MostSpy) TimestampNs() uint64     { return m.Timestamp }
func (m MostSpy) Channel() (uint16, bool) { return 0, false }

// DecodeMostSpy reads a MostSpy body from c.
func DecodeMostSpy(c *cursor.Cursor, h *header.ObjectHeader) (MostSpy, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostSpy{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostSpy{}, err
	}
	srcAdr, err := c.ReadUint32()
	if err != nil {
		return MostSpy{}, err
	}
	destAdr, err := c.ReadUint32()
	if err != nil {
		return MostSpy{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return MostSpy{}, err
	}
	return MostSpy{
		Timestamp: h.TimestampNs, Channel_: channel, SourceAdr: srcAdr, DestAdr: destAdr,
		Data: append([]byte(nil), data...),
	}, nil
}

// MostCtrl is a MOST control-channel message sent/received by the node.
type MostCtrl struct {
	Timestamp uint64
	Channel_  uint16
	SourceAdr uint32
	DestAdr   uint32
	Data      []byte
}

func (m MostCtrl) Type() objtype.Type      { return objtype.MostCtrl }
func (m MostCtrl) TimestampNs() uint64     { return m.Timestamp }
func (m MostCtrl) Channel() (uint16, bool) { return 0, false }

// DecodeMostCtrl reads a MostCtrl body from c.
func DecodeMostCtrl(c *cursor.Cursor, h *header.ObjectHeader) (MostCtrl, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostCtrl{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostCtrl{}, err
	}
	srcAdr, err := c.ReadUint32()
	if err != nil {
		return MostCtrl{}, err
	}
	destAdr, err := c.ReadUint32()
	if err != nil {
		return MostCtrl{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return MostCtrl{}, err
	}
	return MostCtrl{
		Timestamp: h.TimestampNs, Channel_: channel, SourceAdr: srcAdr, DestAdr: destAdr,
		Data: append([]byte(nil), data...),
	}, nil
}

// MostPkt2 is a MOST synchronous/asynchronous data packet, the successor
// format to the deprecated MostPkt record.
type MostPkt2 struct {
	Timestamp uint64
	Channel_  uint16
	SourceAdr uint32
	DestAdr   uint32
	Data      []byte
}

func (m MostPkt2) Type() objtype.Type      { return objtype.MostPkt2 }
func (m MostPkt2) TimestampNs() uint64     { return m.Timestamp }
func (m MostPkt2) Channel() (uint16, bool) { return 0, false }

// DecodeMostPkt2 reads a MostPkt2 body from c.
func DecodeMostPkt2(c *cursor.Cursor, h *header.ObjectHeader) (MostPkt2, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostPkt2{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostPkt2{}, err
	}
	srcAdr, err := c.ReadUint32()
	if err != nil {
		return MostPkt2{}, err
	}
	destAdr, err := c.ReadUint32()
	if err != nil {
		return MostPkt2{}, err
	}
	data, err := c.ReadBytes(c.Remaining())
	if err != nil {
		return MostPkt2{}, err
	}
	return MostPkt2{
		Timestamp: h.TimestampNs, Channel_: channel, SourceAdr: srcAdr, DestAdr: destAdr,
		Data: append([]byte(nil), data...),
	}, nil
}

// MostLightLock reports a MOST ring light-lock status change.
type MostLightLock struct {
	Timestamp uint64
	Channel_  uint16
	State     uint32
}

func (m MostLightLock) Type() objtype.Type      { return objtype.MostLightLock }
func (m MostLightLock) TimestampNs() uint64     { return m.Timestamp }
func (m MostLightLock) Channel() (uint16, bool) { return 0, false }

// DecodeMostLightLock reads a MostLightLock body from c.
func DecodeMostLightLock(c *cursor.Cursor, h *header.ObjectHeader) (MostLightLock, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostLightLock{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostLightLock{}, err
	}
	state, err := c.ReadUint32()
	if err != nil {
		return MostLightLock{}, err
	}
	return MostLightLock{Timestamp: h.TimestampNs, Channel_: channel, State: state}, nil
}

// MostStatistic is a periodic MOST ring-load/error-count sample.
type MostStatistic struct {
	Timestamp     uint64
	Channel_      uint16
	CodingErrors  uint32
	SyncLocks     uint32
	BusLoad       uint32
}

func (m MostStatistic) Type() objtype.Type      { return objtype.MostStatistic }
func (m MostStatistic) TimestampNs() uint64     { return m.Timestamp }
func (m MostStatistic) Channel() (uint16, bool) { return 0, false }

// DecodeMostStatistic reads a MostStatistic body from c.
func DecodeMostStatistic(c *cursor.Cursor, h *header.ObjectHeader) (MostStatistic, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostStatistic{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostStatistic{}, err
	}
	codingErrors, err := c.ReadUint32()
	if err != nil {
		return MostStatistic{}, err
	}
	syncLocks, err := c.ReadUint32()
	if err != nil {
		return MostStatistic{}, err
	}
	busLoad, err := c.ReadUint32()
	if err != nil {
		return MostStatistic{}, err
	}
	return MostStatistic{
		Timestamp: h.TimestampNs, Channel_: channel, CodingErrors: codingErrors,
		SyncLocks: syncLocks, BusLoad: busLoad,
	}, nil
}

// MostHwMode reports a MOST hardware/controller mode transition.
type MostHwMode struct {
	Timestamp uint64
	Channel_  uint16
	HwMode    uint32
}

func (m MostHwMode) Type() objtype.Type      { return objtype.MostHwMode }
func (m MostHwMode) TimestampNs() uint64     { return m.Timestamp }
func (m MostHwMode) Channel() (uint16, bool) { return 0, false }

// DecodeMostHwMode reads a MostHwMode body from c.
func DecodeMostHwMode(c *cursor.Cursor, h *header.ObjectHeader) (MostHwMode, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostHwMode{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostHwMode{}, err
	}
	hwMode, err := c.ReadUint32()
	if err != nil {
		return MostHwMode{}, err
	}
	return MostHwMode{Timestamp: h.TimestampNs, Channel_: channel, HwMode: hwMode}, nil
}

// MostReg reports a MOST device register read/write.
type MostReg struct {
	Timestamp uint64
	Channel_  uint16
	Adr       uint32
	Value     uint8
}

func (m MostReg) Type() objtype.Type      { return objtype.MostReg }
func (m MostReg) TimestampNs() uint64     { return m.Timestamp }
func (m MostReg) Channel() (uint16, bool) { return 0, false }

// DecodeMostReg reads a MostReg body from c.
func DecodeMostReg(c *cursor.Cursor, h *header.ObjectHeader) (MostReg, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostReg{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostReg{}, err
	}
	adr, err := c.ReadUint32()
	if err != nil {
		return MostReg{}, err
	}
	value, err := c.ReadUint8()
	if err != nil {
		return MostReg{}, err
	}
	return MostReg{Timestamp: h.TimestampNs, Channel_: channel, Adr: adr, Value: value}, nil
}

// MostGenReg is MostReg's wider ("generic register") sibling, carrying a
// 32-bit value instead of MostReg's single byte.
type MostGenReg struct {
	Timestamp uint64
	Channel_  uint16
	Adr       uint32
	Value     uint32
}

func (m MostGenReg) Type() objtype.Type      { return objtype.MostGenReg }
func (m MostGenReg) TimestampNs() uint64     { return m.Timestamp }
func (m MostGenReg) Channel() (uint16, bool) { return 0, false }

// DecodeMostGenReg reads a MostGenReg body from c.
func DecodeMostGenReg(c *cursor.Cursor, h *header.ObjectHeader) (MostGenReg, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostGenReg{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostGenReg{}, err
	}
	adr, err := c.ReadUint32()
	if err != nil {
		return MostGenReg{}, err
	}
	value, err := c.ReadUint32()
	if err != nil {
		return MostGenReg{}, err
	}
	return MostGenReg{Timestamp: h.TimestampNs, Channel_: channel, Adr: adr, Value: value}, nil
}

// MostNetState reports a MOST ring network-state (NetOn/NetOff/stable-lock)
// transition.
type MostNetState struct {
	Timestamp uint64
	Channel_  uint16
	StateNew  uint16
	StateOld  uint16
}

func (m MostNetState) Type() objtype.Type      { return objtype.MostNetState }
func (m MostNetState) TimestampNs() uint64     { return m.Timestamp }
func (m MostNetState) Channel() (uint16, bool) { return 0, false }

// DecodeMostNetState reads a MostNetState body from c.
func DecodeMostNetState(c *cursor.Cursor, h *header.ObjectHeader) (MostNetState, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostNetState{}, err
	}
	stateNew, err := c.ReadUint16()
	if err != nil {
		return MostNetState{}, err
	}
	stateOld, err := c.ReadUint16()
	if err != nil {
		return MostNetState{}, err
	}
	return MostNetState{Timestamp: h.TimestampNs, Channel_: channel, StateNew: stateNew, StateOld: stateOld}, nil
}

// MostDataLost reports one or more MOST frames the controller could not
// buffer in time.
type MostDataLost struct {
	Timestamp  uint64
	Channel_   uint16
	Info       uint32
	LostMsgsCtrl uint32
	LostMsgsAsync uint32
}

func (m MostDataLost) Type() objtype.Type      { return objtype.MostDataLost }
func (m MostDataLost) TimestampNs() uint64     { return m.Timestamp }
func (m MostDataLost) Channel() (uint16, bool) { return 0, false }

// DecodeMostDataLost reads a MostDataLost body from c.
func DecodeMostDataLost(c *cursor.Cursor, h *header.ObjectHeader) (MostDataLost, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostDataLost{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved
		return MostDataLost{}, err
	}
	info, err := c.ReadUint32()
	if err != nil {
		return MostDataLost{}, err
	}
	lostCtrl, err := c.ReadUint32()
	if err != nil {
		return MostDataLost{}, err
	}
	lostAsync, err := c.ReadUint32()
	if err != nil {
		return MostDataLost{}, err
	}
	return MostDataLost{
		Timestamp: h.TimestampNs, Channel_: channel, Info: info,
		LostMsgsCtrl: lostCtrl, LostMsgsAsync: lostAsync,
	}, nil
}

// MostTrigger marks an external/software trigger event on the MOST ring.
type MostTrigger struct {
	Timestamp uint64
	Channel_  uint16
	Mode      uint16
	Hw        uint16
	PreviousTriggerValue uint32
	TriggerValue         uint32
}

func (m MostTrigger) Type() objtype.Type      { return objtype.MostTrigger }
func (m MostTrigger) TimestampNs() uint64     { return m.Timestamp }
func (m MostTrigger) Channel() (uint16, bool) { return 0, false }

// DecodeMostTrigger reads a MostTrigger body from c.
func DecodeMostTrigger(c *cursor.Cursor, h *header.ObjectHeader) (MostTrigger, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return MostTrigger{}, err
	}
	mode, err := c.ReadUint16()
	if err != nil {
		return MostTrigger{}, err
	}
	hw, err := c.ReadUint16()
	if err != nil {
		return MostTrigger{}, err
	}
	if _, err := c.ReadUint16(); err != nil { // reserved/pad
		return MostTrigger{}, err
	}
	prev, err := c.ReadUint32()
	if err != nil {
		return MostTrigger{}, err
	}
	value, err := c.ReadUint32()
	if err != nil {
		return MostTrigger{}, err
	}
	return MostTrigger{
		Timestamp: h.TimestampNs, Channel_: channel, Mode: mode, Hw: hw,
		PreviousTriggerValue: prev, TriggerValue: value,
	}, nil
}
