package container

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/tracebus/blf/errs"
	"github.com/tracebus/blf/internal/pool"
)

// Method is the container's compression_method field.
type Method uint16

const (
	// MethodNone means the payload is the inner object stream, unmodified.
	MethodNone Method = 0
	// MethodZlib means the payload is a zlib-wrapped deflate stream.
	MethodZlib Method = 2
)

// inflate decompresses payload per method into a pooled buffer. For
// MethodZlib, wantSize (the container's uncompressed_size) pre-sizes the
// buffer, and an inflated length that differs from it by more than a 4-byte
// alignment pad fails with ErrBadContainer. For MethodNone the payload is
// copied through unchanged and wantSize is not checked.
//
// The returned ByteBuffer is borrowed from the container scratch pool; the
// caller must return it via pool.PutContainerBuffer once done.
func inflate(method Method, payload []byte, wantSize uint32) (*pool.ByteBuffer, error) {
	switch method {
	case MethodNone:
		buf := pool.GetContainerBuffer()
		buf.Grow(len(payload))
		buf.MustWrite(payload)
		return buf, nil
	case MethodZlib:
		return inflateZlib(payload, wantSize)
	default:
		return nil, fmt.Errorf("%w: method=%d", errs.ErrUnsupportedCompression, method)
	}
}

func inflateZlib(payload []byte, wantSize uint32) (*pool.ByteBuffer, error) {
	r, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib header: %v", errs.ErrBadContainer, err)
	}
	defer r.Close()

	buf := pool.GetContainerBuffer()
	buf.Grow(int(wantSize))

	if _, err := io.Copy(buf, r); err != nil {
		pool.PutContainerBuffer(buf)
		return nil, fmt.Errorf("%w: inflate: %v", errs.ErrBadContainer, err)
	}

	if diff := int(wantSize) - buf.Len(); diff < -4 || diff > 4 {
		got := buf.Len()
		pool.PutContainerBuffer(buf)
		return nil, fmt.Errorf("%w: uncompressed_size=%d got=%d", errs.ErrBadContainer, wantSize, got)
	}

	return buf, nil
}
