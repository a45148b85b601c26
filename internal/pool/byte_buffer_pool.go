package pool

import (
	"io"
	"sync"
)

// Buffer sizing for pooled message buffers. IPP request headers and
// attribute groups are small; 4KiB covers typical messages without
// reallocation, and buffers grown past the threshold are not returned to
// the pool so one oversized response cannot pin memory.
const (
	MessageBufferDefaultSize  = 1024 * 4
	MessageBufferMaxThreshold = 1024 * 64
)

// ByteBuffer is a reusable byte slice wrapper handed out by the pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory
// for reuse.
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

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)

	return nil
}

// Grow ensures the buffer has capacity for at least n more bytes.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}
	buf := make([]byte, len(bb.B), len(bb.B)+n)
	copy(buf, bb.B)
	bb.B = buf
}

// WriteTo writes the buffer contents to w, implementing io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)

	return int64(n), err
}

var messageBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(MessageBufferDefaultSize)
	},
}

// GetMessageBuffer obtains a reset ByteBuffer from the pool.
func GetMessageBuffer() *ByteBuffer {
	buf, _ := messageBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutMessageBuffer returns a ByteBuffer to the pool. Buffers grown past
// MessageBufferMaxThreshold are dropped instead of pooled.
func PutMessageBuffer(buf *ByteBuffer) {
	if buf == nil || buf.Cap() > MessageBufferMaxThreshold {
		return
	}
	messageBufferPool.Put(buf)
}
