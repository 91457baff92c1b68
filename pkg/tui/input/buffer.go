// ABOUTME: StdinBuffer reads raw bytes from an io.Reader and dispatches parsed key events.
// ABOUTME: Handles escape sequence buffering, lone-ESC timeout (~50ms), and bracketed paste as runes.

package input

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/astelon/btui/pkg/tui/key"
)

const (
	readBufSize  = 256
	escTimeout   = 50 * time.Millisecond
	maxSeqLen    = 8
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// StdinBuffer reads from a reader and dispatches parsed key events via onKey.
type StdinBuffer struct {
	reader io.Reader
	onKey  func(key.Key)
	buf    []byte
	mu     sync.Mutex
}

// NewStdinBuffer creates a StdinBuffer that reads from r and calls onKey for each parsed key.
func NewStdinBuffer(r io.Reader, onKey func(key.Key)) *StdinBuffer {
	return &StdinBuffer{
		reader: r,
		onKey:  onKey,
		buf:    make([]byte, 0, readBufSize),
	}
}

// ParseAll splits a complete chunk of terminal input into key events.
// A trailing lone ESC is reported as Escape since no more bytes can follow.
func ParseAll(data string) []key.Key {
	var keys []key.Key
	b := NewStdinBuffer(nil, func(k key.Key) {
		keys = append(keys, k)
	})
	b.buf = append(b.buf, data...)
	b.flushRemaining()
	return keys
}

// Start reads from the underlying reader until ctx is cancelled or the reader returns an error.
// It blocks until completion; call it in a goroutine if non-blocking behavior is needed.
func (b *StdinBuffer) Start(ctx context.Context) {
	readCh := make(chan readResult)
	done := make(chan struct{})

	go b.readLoop(readCh, done)
	defer close(done)

	for {
		// Bytes left over after dispatch are an incomplete sequence; a lone
		// ESC that sees nothing else within escTimeout is the Escape key.
		var expired <-chan time.Time
		if b.waiting() {
			expired = time.After(escTimeout)
		}

		select {
		case <-ctx.Done():
			return
		case result, ok := <-readCh:
			if !ok || result.err != nil {
				b.flushRemaining()
				return
			}
			b.processBytes(ctx, result.data)
		case <-expired:
			b.flushRemaining()
		}
	}
}

// waiting reports whether an incomplete sequence other than a paste is buffered.
func (b *StdinBuffer) waiting() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buf) > 0 && !strings.HasPrefix(string(b.buf), bracketStart)
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// readLoop continuously reads from the reader and sends data on ch.
// It stops when done is closed.
func (b *StdinBuffer) readLoop(ch chan<- readResult, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := b.reader.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- readResult{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			if n == 0 {
				select {
				case ch <- readResult{err: err}:
				case <-done:
				}
			}
			return
		}
	}
}

// processBytes appends incoming data to the internal buffer and dispatches complete keys.
func (b *StdinBuffer) processBytes(ctx context.Context, data []byte) {
	b.mu.Lock()
	b.buf = append(b.buf, data...)
	b.mu.Unlock()

	b.dispatchKeys(ctx)
}

// dispatchKeys parses and dispatches all complete key sequences from the buffer.
func (b *StdinBuffer) dispatchKeys(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		b.mu.Lock()
		if len(b.buf) == 0 {
			b.mu.Unlock()
			return
		}

		consumed, keys, needsWait := b.tryParse()
		if needsWait || consumed == 0 {
			b.mu.Unlock()
			return
		}
		b.buf = b.buf[consumed:]
		b.mu.Unlock()

		b.emit(keys)
	}
}

func (b *StdinBuffer) emit(keys []key.Key) {
	for _, k := range keys {
		b.onKey(k)
	}
}

// tryParse attempts to parse one event from the front of b.buf. A bracketed
// paste is one event that yields several keys.
// Returns (consumed bytes, parsed keys, needs-wait flag).
// Must be called with b.mu held.
func (b *StdinBuffer) tryParse() (int, []key.Key, bool) {
	if len(b.buf) == 0 {
		return 0, nil, false
	}

	if strings.HasPrefix(string(b.buf), bracketStart) {
		return b.parseBracketedPaste()
	}

	if b.buf[0] == 0x1b {
		if len(b.buf) == 1 {
			// Might be lone ESC or start of sequence; caller should wait.
			return 0, nil, true
		}
		return b.parseEscapeFromBuf()
	}

	if !utf8.FullRune(b.buf) {
		if len(b.buf) < utf8.UTFMax {
			return 0, nil, true
		}
		return 1, []key.Key{key.Named(key.KeyUnknown)}, false
	}

	r, size := utf8.DecodeRune(b.buf)
	if r == utf8.RuneError {
		return 1, []key.Key{key.Named(key.KeyUnknown)}, false
	}

	return size, []key.Key{key.ParseKey(string(b.buf[:size]))}, false
}

// parseEscapeFromBuf parses an escape sequence from the buffer.
// Must be called with b.mu held and len(b.buf) >= 2.
func (b *StdinBuffer) parseEscapeFromBuf() (int, []key.Key, bool) {
	if b.buf[1] == '[' || b.buf[1] == 'O' {
		end := sequenceEnd(b.buf)
		if end < 0 {
			if len(b.buf) < maxSeqLen {
				return 0, nil, true
			}
			// Too long to be anything we know; report the ESC and re-parse the rest.
			return 1, []key.Key{key.Named(key.KeyEscape)}, false
		}
		return end, []key.Key{key.ParseKey(string(b.buf[:end]))}, false
	}

	// Alt+printable, otherwise a lone Escape followed by something else.
	if k := key.ParseKey(string(b.buf[:2])); k.Type != key.KeyUnknown {
		return 2, []key.Key{k}, false
	}
	return 1, []key.Key{key.Named(key.KeyEscape)}, false
}

// sequenceEnd returns the byte length of the CSI or SS3 sequence at the
// start of buf, or -1 while it is still incomplete.
func sequenceEnd(buf []byte) int {
	if buf[1] == 'O' {
		if len(buf) < 3 {
			return -1
		}
		return 3
	}
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i + 1
		}
	}
	return -1
}

// parseBracketedPaste turns the body of a bracketed paste into literal keys.
// Line breaks become Enter; other control bytes are dropped.
// Must be called with b.mu held.
func (b *StdinBuffer) parseBracketedPaste() (int, []key.Key, bool) {
	s := string(b.buf)
	body, _, found := strings.Cut(s[len(bracketStart):], bracketEnd)
	if !found {
		// End marker not here yet.
		return 0, nil, true
	}

	var keys []key.Key
	for _, r := range body {
		switch {
		case r == '\r' || r == '\n':
			keys = append(keys, key.Named(key.KeyEnter))
		case r == utf8.RuneError || r < 0x20 || r == 0x7f:
		default:
			keys = append(keys, key.Lit(r))
		}
	}
	return len(bracketStart) + len(body) + len(bracketEnd), keys, false
}

// flushRemaining dispatches any leftover bytes in the buffer.
func (b *StdinBuffer) flushRemaining() {
	b.mu.Lock()
	for len(b.buf) > 0 {
		consumed, keys, needsWait := b.tryParse()
		if needsWait {
			// No more data coming: drop the first byte, reporting ESC as Escape.
			first := b.buf[0]
			b.buf = b.buf[1:]
			b.mu.Unlock()
			if first == 0x1b {
				b.onKey(key.Named(key.KeyEscape))
			} else {
				b.onKey(key.Named(key.KeyUnknown))
			}
			b.mu.Lock()
			continue
		}
		if consumed == 0 {
			break
		}
		b.buf = b.buf[consumed:]
		b.mu.Unlock()
		b.emit(keys)
		b.mu.Lock()
	}
	b.mu.Unlock()
}
