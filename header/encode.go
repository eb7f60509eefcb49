package header

import "github.com/tracebus/blf/endian"

// V1Fields is the set of inputs needed to encode a 32-byte V1 object header,
// used by tests to build fixture objects. Raw is the pre-normalization
// timestamp; NormalizeTimestamp is applied by the decoder, not here.
type V1Fields struct {
	ObjectType    uint32
	ObjectSize    uint32
	Flags         Flags
	ClientIndex   uint16
	ObjectVersion uint16
	RawTimestamp  uint64
}

// EncodeV1 serializes a 32-byte V1 object header: the fixed 16-byte base
// record followed by the V1 timestamp extension. This exists only to build
// round-trip test fixtures; this module has no general-purpose writer.
func EncodeV1(f V1Fields) []byte {
	b := make([]byte, V1HeaderSize)
	endian.LittleEndian.PutUint32(b[0:4], SignatureLOBJ)
	endian.LittleEndian.PutUint16(b[4:6], V1HeaderSize)
	endian.LittleEndian.PutUint16(b[6:8], 1)
	endian.LittleEndian.PutUint32(b[8:12], f.ObjectSize)
	endian.LittleEndian.PutUint32(b[12:16], f.ObjectType)

	endian.LittleEndian.PutUint32(b[16:20], uint32(f.Flags))
	endian.LittleEndian.PutUint16(b[20:22], f.ClientIndex)
	endian.LittleEndian.PutUint16(b[22:24], f.ObjectVersion)
	endian.LittleEndian.PutUint64(b[24:32], f.RawTimestamp)

	return b
}

// V2Fields is the set of inputs needed to encode a 40-byte V2 object header.
type V2Fields struct {
	ObjectType         uint32
	ObjectSize         uint32
	Flags              Flags
	Status             TimestampStatus
	ObjectVersion      uint16
	RawTimestamp       uint64
	RawOriginalTimestamp uint64
}

// EncodeV2 serializes a 40-byte V2 object header.
func EncodeV2(f V2Fields) []byte {
	b := make([]byte, V2HeaderSize)
	endian.LittleEndian.PutUint32(b[0:4], SignatureLOBJ)
	endian.LittleEndian.PutUint16(b[4:6], V2HeaderSize)
	endian.LittleEndian.PutUint16(b[6:8], 2)
	endian.LittleEndian.PutUint32(b[8:12], f.ObjectSize)
	endian.LittleEndian.PutUint32(b[12:16], f.ObjectType)

	endian.LittleEndian.PutUint32(b[16:20], uint32(f.Flags))
	b[20] = byte(f.Status)
	b[21] = 0 // reserved
	endian.LittleEndian.PutUint16(b[22:24], f.ObjectVersion)
	endian.LittleEndian.PutUint64(b[24:32], f.RawTimestamp)
	endian.LittleEndian.PutUint64(b[32:40], f.RawOriginalTimestamp)

	return b
}

// EncodeCompactV1 serializes a 16-byte compact V1 header (no extension
// fields on the wire), used to build salvage-mode test fixtures. extra, if
// non-empty, is appended after the base header as raw trailing bytes a
// salvage read would opportunistically reinterpret as the V1 extension.
func EncodeCompactV1(objectType, objectSize uint32, extra []byte) []byte {
	b := make([]byte, BaseHeaderSize, BaseHeaderSize+len(extra))
	endian.LittleEndian.PutUint32(b[0:4], SignatureLOBJ)
	endian.LittleEndian.PutUint16(b[4:6], BaseHeaderSize)
	endian.LittleEndian.PutUint16(b[6:8], 1)
	endian.LittleEndian.PutUint32(b[8:12], objectSize)
	endian.LittleEndian.PutUint32(b[12:16], objectType)
	return append(b, extra...)
}
