// Package pool provides pooled scratch buffers so the LogContainer engine
// can inflate one container at a time without allocating fresh memory per
// container — buffers are scratch and may be reused across containers.
package pool

import (
	"io"
	"sync"
)

// Default and max-retained sizes for the two pools this package exposes.
const (
	// ContainerBufferDefaultSize is the initial capacity handed out for a
	// single container's inflate scratch buffer.
	ContainerBufferDefaultSize = 1024 * 16 // 16KiB
	// ContainerBufferMaxThreshold is the largest buffer capacity this pool
	// will retain; oversized buffers (from an unusually large container)
	// are discarded instead of pooled, bounding peak idle memory.
	ContainerBufferMaxThreshold = 1024 * 512 // 512KiB

	// MergeBufferDefaultSize is the initial capacity for the buffer that
	// stages one LogContainer's raw wire bytes off the sequential scan
	// cursor, so a worker goroutine can decode it independently once the
	// scan moves on.
	MergeBufferDefaultSize = 1024 * 1024 // 1MiB
	// MergeBufferMaxThreshold bounds the merge buffer pool the same way.
	MergeBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable byte slice wrapper designed for reuse: callers
// Reset() it instead of discarding it, so the backing array survives across
// uses.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Growth strategy: for small buffers grow by ContainerBufferDefaultSize to
// minimize reallocations; for larger buffers grow by 25% of current capacity
// to balance memory usage against reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ContainerBufferDefaultSize
	if cap(bb.B) > 4*ContainerBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
// Implements io.Writer so *ByteBuffer can be passed directly to flate.Reader
// via io.Copy.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse. Oversized buffers are
// discarded instead of pooled.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	containerPool = NewByteBufferPool(ContainerBufferDefaultSize, ContainerBufferMaxThreshold)
	mergePool     = NewByteBufferPool(MergeBufferDefaultSize, MergeBufferMaxThreshold)
)

// GetContainerBuffer retrieves a scratch ByteBuffer sized for one container's
// inflated payload.
func GetContainerBuffer() *ByteBuffer {
	return containerPool.Get()
}

// PutContainerBuffer returns a container scratch buffer to the pool.
func PutContainerBuffer(bb *ByteBuffer) {
	containerPool.Put(bb)
}

// GetMergeBuffer retrieves a scratch ByteBuffer sized for staging one
// container job's raw bytes ahead of a parallel decode.
func GetMergeBuffer() *ByteBuffer {
	return mergePool.Get()
}

// PutMergeBuffer returns a staging buffer to the pool once its job has been
// decoded and merged.
func PutMergeBuffer(bb *ByteBuffer) {
	mergePool.Put(bb)
}
