// ABOUTME: Reader turns a StdinBuffer callback stream into a blocking ReadKey call.
// ABOUTME: One background goroutine per Reader; Close stops it, EOF surfaces as io.EOF.

package input

import (
	"context"
	"io"
	"sync"

	"github.com/astelon/btui/pkg/tui/key"
)

// keyQueueSize bounds how far the reader may run ahead of the consumer.
const keyQueueSize = 64

// Reader delivers one parsed key per ReadKey call.
type Reader struct {
	buf    *StdinBuffer
	keys   chan key.Key
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewReader creates a Reader over r. Reading starts with the first ReadKey.
func NewReader(r io.Reader) *Reader {
	ctx, cancel := context.WithCancel(context.Background())
	rd := &Reader{
		keys:   make(chan key.Key, keyQueueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	rd.buf = NewStdinBuffer(r, rd.enqueue)
	return rd
}

// ReadKey blocks until a key is available, ctx is done, or the underlying
// reader is exhausted (io.EOF).
func (rd *Reader) ReadKey(ctx context.Context) (key.Key, error) {
	rd.once.Do(func() { go rd.run() })

	select {
	case k, ok := <-rd.keys:
		if !ok {
			return key.Key{}, io.EOF
		}
		return k, nil
	case <-ctx.Done():
		return key.Key{}, ctx.Err()
	}
}

// Close stops the background reader. Pending keys are discarded.
func (rd *Reader) Close() {
	rd.cancel()
}

func (rd *Reader) run() {
	defer close(rd.keys)
	rd.buf.Start(rd.ctx)
}

func (rd *Reader) enqueue(k key.Key) {
	select {
	case rd.keys <- k:
	case <-rd.ctx.Done():
	}
}
