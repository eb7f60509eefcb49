package container

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/errs"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/internal/pool"
)

func decodeHeader(t *testing.T, raw []byte) (*header.ObjectHeader, *cursor.Cursor) {
	t.Helper()
	c := cursor.New(raw)
	h, err := header.Read(c)
	require.NoError(t, err)
	return h, c
}

func TestReadInflate_NoCompression(t *testing.T) {
	inner := []byte("inner-object-stream-bytes")
	raw := Encode(MethodNone, inner)

	h, c := decodeHeader(t, raw)
	lc, err := Read(c, h)
	require.NoError(t, err)
	require.Equal(t, MethodNone, lc.CompressionMethod)

	buf, err := lc.Inflate(c, h.PayloadSize())
	require.NoError(t, err)
	defer pool.PutContainerBuffer(buf)

	require.Equal(t, inner, buf.Bytes())
}

func TestReadInflate_Zlib(t *testing.T) {
	inner := make([]byte, 512)
	for i := range inner {
		inner[i] = byte(i)
	}
	raw := Encode(MethodZlib, inner)

	h, c := decodeHeader(t, raw)
	lc, err := Read(c, h)
	require.NoError(t, err)
	require.Equal(t, MethodZlib, lc.CompressionMethod)
	require.Equal(t, uint32(len(inner)), lc.UncompressedSize)

	buf, err := lc.Inflate(c, h.PayloadSize())
	require.NoError(t, err)
	defer pool.PutContainerBuffer(buf)

	require.Equal(t, inner, buf.Bytes())
}

func TestInflate_UnsupportedCompression(t *testing.T) {
	raw := Encode(MethodNone, []byte("hello"))
	h, c := decodeHeader(t, raw)
	lc, err := Read(c, h)
	require.NoError(t, err)

	lc.CompressionMethod = Method(99)
	_, err = lc.Inflate(c, h.PayloadSize())
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestInflate_EmptyUncompressedSize(t *testing.T) {
	raw := Encode(MethodZlib, nil)
	h, c := decodeHeader(t, raw)
	lc, err := Read(c, h)
	require.NoError(t, err)

	buf, err := lc.Inflate(c, h.PayloadSize())
	require.NoError(t, err)
	defer pool.PutContainerBuffer(buf)
	require.Equal(t, 0, buf.Len())
}

func TestInflate_SizeMismatchFails(t *testing.T) {
	inner := make([]byte, 128)
	raw := Encode(MethodZlib, inner)
	h, c := decodeHeader(t, raw)
	lc, err := Read(c, h)
	require.NoError(t, err)

	lc.UncompressedSize = 4096 // wildly wrong vs. actual inflated size

	_, err = lc.Inflate(c, h.PayloadSize())
	require.ErrorIs(t, err, errs.ErrBadContainer)
}
