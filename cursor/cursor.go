// Package cursor provides a bounds-checked, position-tracking reader over an
// in-memory little-endian byte buffer — the primitive every object-header and
// payload decoder in this module reads through.
//
// A Cursor never panics on a short read: every primitive read method returns
// errs.ErrTruncated instead, so a caller decoding a stream of objects can
// treat a truncated tail as a recoverable condition rather than a crash.
package cursor

import (
	"fmt"
	"math"

	"github.com/tracebus/blf/endian"
	"github.com/tracebus/blf/errs"
)

// Cursor reads little-endian primitives from a fixed byte slice, tracking a
// read position that never exceeds the slice length.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a Cursor positioned at the start of data. The slice is not
// copied; callers must not mutate it while the Cursor is in use.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read position, in bytes from the start of the
// underlying buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Bytes returns the full underlying buffer, regardless of read position.
func (c *Cursor) Bytes() []byte {
	return c.data
}

// Skip advances the read position by n bytes without interpreting them.
// Returns errs.ErrTruncated if fewer than n bytes remain.
func (c *Cursor) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative skip %d", errs.ErrTruncated, n)
	}
	if c.Remaining() < n {
		return fmt.Errorf("%w: want to skip %d, have %d", errs.ErrTruncated, n, c.Remaining())
	}
	c.pos += n
	return nil
}

// AlignTo advances the read position to the next multiple of n, relative to
// the start of the underlying buffer. BLF pads every top-level object and
// every object inside a LogContainer to a 4-byte boundary, so callers
// typically call AlignTo(4) between objects.
//
// If the position is already aligned, AlignTo is a no-op. Returns
// errs.ErrTruncated if the aligned position would exceed the buffer.
func (c *Cursor) AlignTo(n int) error {
	if n <= 0 {
		return fmt.Errorf("AlignTo: invalid alignment %d", n)
	}
	rem := c.pos % n
	if rem == 0 {
		return nil
	}
	return c.Skip(n - rem)
}

// SubCursor carves out the next length bytes as an independent Cursor
// positioned at 0, and advances this cursor's position past them. Used to
// hand a decoder a bounded view of exactly its object's payload, so it
// cannot accidentally read into the next object.
func (c *Cursor) SubCursor(length int) (*Cursor, error) {
	if length < 0 {
		return nil, fmt.Errorf("SubCursor: negative length %d", length)
	}
	if c.Remaining() < length {
		return nil, fmt.Errorf("%w: want sub-cursor of %d, have %d", errs.ErrTruncated, length, c.Remaining())
	}
	start := c.pos
	c.pos += length
	return New(c.data[start : start+length : start+length]), nil
}

// PeekBytes returns the next n bytes without advancing the read position.
// Returns errs.ErrTruncated if fewer than n bytes remain.
func (c *Cursor) PeekBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("PeekBytes: negative length %d", n)
	}
	if c.Remaining() < n {
		return nil, fmt.Errorf("%w: want %d bytes, have %d", errs.ErrTruncated, n, c.Remaining())
	}
	return c.data[c.pos : c.pos+n], nil
}

// ReadBytes returns the next n bytes and advances the read position past
// them. The returned slice aliases the underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.PeekBytes(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// ReadUint8 reads one byte as an unsigned integer.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads two bytes as a little-endian unsigned integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return endian.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads four bytes as a little-endian unsigned integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return endian.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads eight bytes as a little-endian unsigned integer.
func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return endian.LittleEndian.Uint64(b), nil
}

// ReadInt16 reads two bytes as a little-endian signed integer.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads four bytes as a little-endian signed integer.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads eight bytes as a little-endian signed integer.
func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

// ReadFloat64 reads eight bytes as a little-endian IEEE-754 double.
func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
