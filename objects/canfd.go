package objects

import (
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// canFdDataLength maps a CAN FD DLC nibble to the number of data bytes it
// represents, via the standard non-linear DLC table. DecodeCanFdMessage uses
// it to size its data slice. DecodeCanFdMessage64 does not consult it: the
// wire-declared valid_data_bytes is taken as the data length, and a mismatch
// with the DLC is never rejected.
func canFdDataLength(dlc uint8) int {
	switch {
	case dlc <= 8:
		return int(dlc)
	case dlc == 9:
		return 12
	case dlc == 10:
		return 16
	case dlc == 11:
		return 20
	case dlc == 12:
		return 24
	case dlc == 13:
		return 32
	case dlc == 14:
		return 48
	default: // 15 and any out-of-range value
		return 64
	}
}

// CanFdDataLength exposes canFdDataLength's DLC→byte-length table for
// callers outside this package (e.g. conformance tests).
func CanFdDataLength(dlc uint8) int { return canFdDataLength(dlc) }

const (
	canFdFlagFDFrame = 0x1000
	canFdFlagBRS     = 0x2000
	canFdFlagESI     = 0x4000
)

// CanFdMessage is the fixed-size (non-"64") CAN FD frame variant: the same
// base fields as CanMessage, with FD-specific frame-length and bit-count
// telemetry and a DLC-mapped variable data length.
type CanFdMessage struct {
	Timestamp     uint64
	Channel_      uint16
	Flags         uint8
	DLC           uint8
	ID            uint32
	FrameLengthNs uint32
	BitCount      uint16
	Reserved      uint16
	Data          []byte
}

func (m CanFdMessage) Type() objtype.Type      { return objtype.CanFdMessage }
func (m CanFdMessage) TimestampNs() uint64     { return m.Timestamp }
func (m CanFdMessage) Channel() (uint16, bool) { return m.Channel_, true }

// DecodeCanFdMessage reads a CanFdMessage body from c.
func DecodeCanFdMessage(c *cursor.Cursor, h *header.ObjectHeader) (CanFdMessage, error) {
	channel, err := c.ReadUint16()
	if err != nil {
		return CanFdMessage{}, err
	}
	flags, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage{}, err
	}
	id, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage{}, err
	}
	frameLength, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage{}, err
	}
	bitCount, err := c.ReadUint16()
	if err != nil {
		return CanFdMessage{}, err
	}
	reserved, err := c.ReadUint16()
	if err != nil {
		return CanFdMessage{}, err
	}

	dataLen := canFdDataLength(dlc)
	if dataLen > c.Remaining() {
		dataLen = c.Remaining()
	}
	data, err := c.ReadBytes(dataLen)
	if err != nil {
		return CanFdMessage{}, err
	}

	return CanFdMessage{
		Timestamp: h.TimestampNs, Channel_: channel, Flags: flags, DLC: dlc, ID: id,
		FrameLengthNs: frameLength, BitCount: bitCount, Reserved: reserved, Data: append([]byte(nil), data...),
	}, nil
}

// CanFdMessage64 is the extended CAN FD frame variant carrying full
// controller telemetry (bit-timing config, CRC, direction).
type CanFdMessage64 struct {
	Timestamp         uint64
	Channel_          uint8
	DLC               uint8
	ValidDataBytes    uint8
	TxCount           uint8
	ID                uint32
	FrameLength       uint32
	Flags             uint32
	BtrCfgArb         uint32
	BtrCfgData        uint32
	TimeOffsetBRSNs   uint32
	TimeOffsetCRCDelNs uint32
	BitCount          uint16
	Dir               uint8
	ExtDataOffset     uint8
	CRC               uint32
	Data              []byte
	ExtData           []byte
}

func (m CanFdMessage64) Type() objtype.Type { return objtype.CanFdMessage64 }
func (m CanFdMessage64) TimestampNs() uint64 { return m.Timestamp }
func (m CanFdMessage64) Channel() (uint16, bool) {
	return uint16(m.Channel_), true
}

// IsFDFrame reports whether the FD (as opposed to classic CAN) framing bit
// is set.
func (m CanFdMessage64) IsFDFrame() bool { return m.Flags&canFdFlagFDFrame != 0 }

// HasBRS reports whether the Bit Rate Switch flag is set.
func (m CanFdMessage64) HasBRS() bool { return m.Flags&canFdFlagBRS != 0 }

// HasESI reports whether the Error State Indicator flag is set.
func (m CanFdMessage64) HasESI() bool { return m.Flags&canFdFlagESI != 0 }

// IsTx reports whether this frame was transmitted (as opposed to received)
// by the logging node.
func (m CanFdMessage64) IsTx() bool { return m.Dir == 1 }

// DecodeCanFdMessage64 reads a CanFdMessage64 body from c.
func DecodeCanFdMessage64(c *cursor.Cursor, h *header.ObjectHeader) (CanFdMessage64, error) {
	channel, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage64{}, err
	}
	dlc, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage64{}, err
	}
	validDataBytes, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage64{}, err
	}
	txCount, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage64{}, err
	}
	id, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}
	frameLength, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}
	flags, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}
	btrArb, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}
	btrData, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}
	offsetBRS, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}
	offsetCRCDel, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}
	bitCount, err := c.ReadUint16()
	if err != nil {
		return CanFdMessage64{}, err
	}
	dir, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage64{}, err
	}
	extDataOffset, err := c.ReadUint8()
	if err != nil {
		return CanFdMessage64{}, err
	}
	crc, err := c.ReadUint32()
	if err != nil {
		return CanFdMessage64{}, err
	}

	dataLen := int(validDataBytes)
	if dataLen > c.Remaining() {
		dataLen = c.Remaining()
	}
	data, err := c.ReadBytes(dataLen)
	if err != nil {
		return CanFdMessage64{}, err
	}

	var extData []byte
	if remaining := c.Remaining(); remaining > 0 {
		extData, err = c.ReadBytes(remaining)
		if err != nil {
			return CanFdMessage64{}, err
		}
	}

	return CanFdMessage64{
		Timestamp: h.TimestampNs, Channel_: channel, DLC: dlc, ValidDataBytes: validDataBytes,
		TxCount: txCount, ID: id, FrameLength: frameLength, Flags: flags,
		BtrCfgArb: btrArb, BtrCfgData: btrData, TimeOffsetBRSNs: offsetBRS, TimeOffsetCRCDelNs: offsetCRCDel,
		BitCount: bitCount, Dir: dir, ExtDataOffset: extDataOffset, CRC: crc,
		Data: append([]byte(nil), data...), ExtData: append([]byte(nil), extData...),
	}, nil
}

// EncodeCanFdMessage64 serializes m's body (not including the object
// header), the inverse of DecodeCanFdMessage64, for round-trip test
// fixtures.
func EncodeCanFdMessage64(m CanFdMessage64) []byte {
	b := make([]byte, 0, 40+len(m.Data)+len(m.ExtData))
	b = append(b, m.Channel_, m.DLC, m.ValidDataBytes, m.TxCount)
	b = le.AppendUint32(b, m.ID)
	b = le.AppendUint32(b, m.FrameLength)
	b = le.AppendUint32(b, m.Flags)
	b = le.AppendUint32(b, m.BtrCfgArb)
	b = le.AppendUint32(b, m.BtrCfgData)
	b = le.AppendUint32(b, m.TimeOffsetBRSNs)
	b = le.AppendUint32(b, m.TimeOffsetCRCDelNs)
	b = le.AppendUint16(b, m.BitCount)
	b = append(b, m.Dir, m.ExtDataOffset)
	b = le.AppendUint32(b, m.CRC)
	b = append(b, m.Data...)
	b = append(b, m.ExtData...)
	return b
}
