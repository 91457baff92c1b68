// ABOUTME: VisibleWidth computes display width of strings with grapheme-aware segmentation
// ABOUTME: LRU cache for non-ASCII strings; fast path for printable ASCII

package width

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// VisibleWidth returns the display width of s. ANSI escape sequences are
// zero width; East Asian wide characters and emoji take two columns.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := 0
	for _, seg := range segments(s) {
		w += seg.width
	}
	widthCache.put(s, w)
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster,
// taken from its first code point.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// segment is either a visible grapheme cluster or an ANSI sequence.
type segment struct {
	text  string
	col   int
	width int
	isSeq bool
}

// segments splits s into grapheme clusters and ANSI sequences, recording
// the starting column of each.
func segments(s string) []segment {
	var segs []segment
	col := 0
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			segs = append(segs, segment{text: s[i:end], col: col, isSeq: true})
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		segs = append(segs, segment{text: cluster, col: col, width: w})
		col += w
		i += len(s[i:]) - len(rest)
	}
	return segs
}

// lruEntry holds a cached width measurement.
type lruEntry struct {
	key   string
	value int
}

// cache is an LRU of string widths guarded by a mutex.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

var widthCache = newCache(cacheSize)

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}
