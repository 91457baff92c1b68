// ABOUTME: Pooled output builder for one screen repaint; recycled via sync.Pool
// ABOUTME: Widgets' positioned frames are concatenated here before a single terminal write

package tui

import (
	"bytes"
	"sync"
)

var framePool = sync.Pool{
	New: func() any {
		f := &Frame{}
		f.b.Grow(1024)
		return f
	},
}

// AcquireFrame gets an empty Frame from the pool.
func AcquireFrame() *Frame {
	f := framePool.Get().(*Frame)
	f.Reset()
	return f
}

// ReleaseFrame returns a Frame to the pool.
func ReleaseFrame(f *Frame) {
	if f == nil {
		return
	}
	f.Reset()
	framePool.Put(f)
}

// Frame accumulates the output of one repaint.
type Frame struct {
	b     bytes.Buffer
	parts int
}

// WriteString appends s to the frame.
func (f *Frame) WriteString(s string) {
	if s == "" {
		return
	}
	f.b.WriteString(s)
	f.parts++
}

// Bytes returns a copy of the accumulated output.
func (f *Frame) Bytes() []byte {
	return bytes.Clone(f.b.Bytes())
}

// String returns the accumulated output.
func (f *Frame) String() string {
	return f.b.String()
}

// Len returns the number of non-empty writes since the last Reset.
func (f *Frame) Len() int {
	return f.parts
}

// Reset clears the frame for reuse.
func (f *Frame) Reset() {
	f.b.Reset()
	f.parts = 0
}
