package pool

import (
	"io"
	"sync"
)

const (
	// PeakBufferDefaultSize is the initial capacity of a pooled buffer,
	// sized for a typical decompressed peak array.
	PeakBufferDefaultSize = 1024 * 16 // 16KiB
	// PeakBufferMaxThreshold caps the capacity of buffers returned to the
	// pool; larger buffers are dropped for the GC to reclaim.
	PeakBufferMaxThreshold = 1024 * 128 // 128KiB
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
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

// Write appends data to the buffer, growing it if necessary. It never fails;
// the error is always nil and exists to satisfy io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ReadFrom drains r into the buffer until EOF, growing as needed.
// It returns the number of bytes appended.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if len(bb.B) == cap(bb.B) {
			// Grow via append, then restore the logical length.
			bb.B = append(bb.B, 0)[:len(bb.B)]
		}

		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

var peakBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(PeakBufferDefaultSize)
	},
}

// GetPeakBuffer returns an empty ByteBuffer from the pool.
func GetPeakBuffer() *ByteBuffer {
	bb, _ := peakBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutPeakBuffer returns the buffer to the pool. Buffers that grew beyond
// PeakBufferMaxThreshold are discarded to keep the pool footprint bounded.
func PutPeakBuffer(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > PeakBufferMaxThreshold {
		return
	}
	peakBufferPool.Put(bb)
}
