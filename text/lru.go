// SPDX-License-Identifier: Unlicense OR MIT

package text

// Cache is a Shaper that remembers the results of another Shaper.
// The most recently used maxSize results are kept. A Cache is not
// safe for concurrent use.
type Cache struct {
	shaper     Shaper
	m          map[layoutKey]*layout
	head, tail *layout
}

type layout struct {
	next, prev *layout
	key        layoutKey
	glyphs     []Glyph
}

type layoutKey struct {
	str    string
	params Params
}

const maxSize = 1000

// NewCache returns a Cache wrapping s.
func NewCache(s Shaper) *Cache {
	return &Cache{shaper: s}
}

// Shape implements Shaper.
func (c *Cache) Shape(s string, p Params) []Glyph {
	k := layoutKey{str: s, params: p}
	if g, ok := c.get(k); ok {
		return g
	}
	g := c.shaper.Shape(s, p)
	c.put(k, g)
	return g
}

func (c *Cache) get(k layoutKey) ([]Glyph, bool) {
	if lt, ok := c.m[k]; ok {
		c.remove(lt)
		c.insert(lt)
		return lt.glyphs, true
	}
	return nil, false
}

func (c *Cache) put(k layoutKey, g []Glyph) {
	if c.m == nil {
		c.m = make(map[layoutKey]*layout)
		c.head = new(layout)
		c.tail = new(layout)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	val := &layout{key: k, glyphs: g}
	c.m[k] = val
	c.insert(val)
	if len(c.m) > maxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

func (c *Cache) remove(lt *layout) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (c *Cache) insert(lt *layout) {
	lt.next = c.head
	lt.prev = c.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
