// ABOUTME: VisibleWidth measures how many terminal cells a string occupies.
// ABOUTME: Grapheme-aware via uniseg and go-runewidth; non-ASCII results are LRU cached.

package width

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 128

type lruEntry struct {
	key   string
	value int
}

// cache is an LRU of widths for non-ASCII strings.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

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

var widthCache = newCache(cacheSize)

// VisibleWidth returns the display width of s in terminal cells. Escape
// sequences and control bytes contribute nothing; East Asian wide
// characters and emoji count as two.
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
	forEachCluster(StripANSI(s), func(cluster string, cw int) bool {
		w += cw
		return true
	})
	widthCache.put(s, w)
	return w
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// forEachCluster calls fn with every grapheme cluster of s and its cell
// width, stopping early when fn returns false.
func forEachCluster(s string, fn func(cluster string, width int) bool) {
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster, graphemeWidth(cluster)) {
			return
		}
		s = rest
		state = newState
	}
}

// graphemeWidth is the width of the cluster's first rune; combining marks
// and joiners that follow it take no cells.
func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
