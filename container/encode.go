package container

import (
	"bytes"

	"github.com/klauspost/compress/zlib"
	"github.com/tracebus/blf/endian"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objtype"
)

// Encode builds the full wire bytes of a LogContainer object — base V1
// header, the five container-specific fields, and the (optionally
// compressed) inner object stream — for use in test fixtures. This is not a
// general-purpose writer; it always emits a 32-byte V1 base header.
func Encode(method Method, innerObjects []byte) []byte {
	var compressed []byte
	switch method {
	case MethodNone:
		compressed = innerObjects
	case MethodZlib:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		_, _ = w.Write(innerObjects)
		_ = w.Close()
		compressed = buf.Bytes()
	}

	objectSize := uint32(header.V1HeaderSize + fieldsSize + len(compressed))

	out := header.EncodeV1(header.V1Fields{
		ObjectType: uint32(objtype.LogContainer),
		ObjectSize: objectSize,
	})

	fields := make([]byte, fieldsSize)
	endian.LittleEndian.PutUint16(fields[0:2], uint16(method))
	endian.LittleEndian.PutUint32(fields[8:12], uint32(len(innerObjects)))

	out = append(out, fields...)
	out = append(out, compressed...)
	return out
}
