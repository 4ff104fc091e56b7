// Package pool provides reusable buffers for artifact serialization and
// report rendering.
package pool

import (
	"io"
	"sync"
)

const (
	// ArtifactBufferDefaultSize is the initial capacity of pooled buffers,
	// sized for a typical artifact payload (a few thousand uint64 samples
	// plus strategy names).
	ArtifactBufferDefaultSize = 1024 * 16 // 16KiB

	// ArtifactBufferMaxThreshold is the largest buffer the pool retains;
	// anything bigger is dropped to avoid memory bloat after an unusually
	// large run.
	ArtifactBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice with explicit length control.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
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

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteString appends s to the buffer, growing it as needed.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers backed by sync.Pool.
//
// The pool can be configured with a maximum size threshold so overly large
// buffers are discarded instead of retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default size. A maxThreshold of 0 disables the retention limit.
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

// Put returns a ByteBuffer to the pool for reuse.
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

var artifactDefaultPool = NewByteBufferPool(ArtifactBufferDefaultSize, ArtifactBufferMaxThreshold)

// GetArtifactBuffer retrieves a ByteBuffer from the default artifact pool.
func GetArtifactBuffer() *ByteBuffer {
	return artifactDefaultPool.Get()
}

// PutArtifactBuffer returns a ByteBuffer to the default artifact pool.
func PutArtifactBuffer(bb *ByteBuffer) {
	artifactDefaultPool.Put(bb)
}

const (
	// ReportBufferDefaultSize is the initial capacity of pooled report
	// buffers, sized for a rendered HTML report.
	ReportBufferDefaultSize = 1024 * 64 // 64KiB

	// ReportBufferMaxThreshold is the largest report buffer the pool retains.
	ReportBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

var reportDefaultPool = NewByteBufferPool(ReportBufferDefaultSize, ReportBufferMaxThreshold)

// GetReportBuffer retrieves a ByteBuffer from the default report pool.
func GetReportBuffer() *ByteBuffer {
	return reportDefaultPool.Get()
}

// PutReportBuffer returns a ByteBuffer to the default report pool.
func PutReportBuffer(bb *ByteBuffer) {
	reportDefaultPool.Put(bb)
}
