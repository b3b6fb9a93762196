// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"reflect"
	"strconv"
	"testing"
	"testing/quick"

	"golang.org/x/image/math/fixed"
)

// monoShaper lays out every rune with the same advance.
type monoShaper struct {
	adv   fixed.Int26_6
	calls int
}

func (m *monoShaper) Shape(s string, p Params) []Glyph {
	m.calls++
	var glyphs []Glyph
	var x fixed.Int26_6
	for _, r := range s {
		if len(glyphs) > 0 && x+m.adv > p.MaxWidth {
			break
		}
		glyphs = append(glyphs, Glyph{Rune: r, X: x, Advance: m.adv, Width: m.adv})
		x += m.adv
	}
	return glyphs
}

func TestLayoutEmpty(t *testing.T) {
	l := NewLayout(&monoShaper{adv: fixed.I(10)}, nil, Params{Size: fixed.I(16), MaxWidth: fixed.I(100)})
	if got, want := l.Breaks(), []int{0, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("breaks = %v, want %v", got, want)
	}
	if got := l.NumRows(); got != 1 {
		t.Fatalf("got %d rows, want 1", got)
	}
	if got := len(l.Row(0)); got != 0 {
		t.Errorf("empty row has %d glyphs", got)
	}
}

func TestLayoutCharacterWrap(t *testing.T) {
	// Five runes fit every row; words are split mid-way.
	p := Params{Size: fixed.I(16), MaxWidth: fixed.I(50)}
	l := NewLayout(&monoShaper{adv: fixed.I(10)}, []rune("hello world!"), p)
	if got, want := l.Breaks(), []int{0, 5, 10, 12}; !reflect.DeepEqual(got, want) {
		t.Fatalf("breaks = %v, want %v", got, want)
	}
	start, end := l.RowRange(1)
	if start != 5 || end != 10 {
		t.Errorf("RowRange(1) = %d, %d", start, end)
	}
	row := l.Row(1)
	if row[0].Rune != ' ' || row[0].X != 0 || row[4].X != fixed.I(40) {
		t.Errorf("row 1 not positioned from its start: %+v", row)
	}
	if got := row[4].End(); got != fixed.I(50) {
		t.Errorf("row end = %v, want 50", got)
	}
}

func TestLayoutNarrowWidth(t *testing.T) {
	// A single rune is placed on every row when nothing fits.
	p := Params{Size: fixed.I(16), MaxWidth: fixed.I(1)}
	l := NewLayout(&monoShaper{adv: fixed.I(10)}, []rune("abc"), p)
	if got, want := l.Breaks(), []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("breaks = %v, want %v", got, want)
	}
}

func TestLayoutInvariants(t *testing.T) {
	s := &monoShaper{adv: fixed.I(7)}
	f := func(str string, width uint8) bool {
		runes := []rune(str)
		p := Params{Size: fixed.I(16), MaxWidth: fixed.I(int(width))}
		l := NewLayout(s, runes, p)
		b := l.Breaks()
		if b[0] != 0 || b[len(b)-1] != len(runes) || len(b) != l.NumRows()+1 {
			return false
		}
		total := 0
		for i, row := range l.Rows() {
			if len(runes) > 0 && b[i+1] <= b[i] {
				return false
			}
			total += len(row)
		}
		return total == len(runes) && l.Len() == len(runes)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	s := &monoShaper{adv: fixed.I(9)}
	p := Params{Size: fixed.I(16), MaxWidth: fixed.I(40)}
	str := []rune("the quick brown fox")
	a, b := NewLayout(s, str, p), NewLayout(s, str, p)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("layouts differ:\n%+v\n%+v", a, b)
	}
}

type brokenShaper struct{}

func (brokenShaper) Shape(s string, p Params) []Glyph { return nil }

func TestLayoutShaperContract(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a shaper returning no glyphs")
		}
	}()
	NewLayout(brokenShaper{}, []rune("x"), Params{})
}

func TestCacheShape(t *testing.T) {
	s := &monoShaper{adv: fixed.I(10)}
	c := NewCache(s)
	p := Params{Size: fixed.I(16), MaxWidth: fixed.I(100)}
	a := c.Shape("abc", p)
	b := c.Shape("abc", p)
	if s.calls != 1 {
		t.Errorf("shaper called %d times, want 1", s.calls)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("cached glyphs differ")
	}
	p.MaxWidth = fixed.I(20)
	if got := len(c.Shape("abc", p)); got != 2 {
		t.Errorf("got %d glyphs for narrower width, want 2", got)
	}
	if s.calls != 2 {
		t.Errorf("width change did not miss the cache")
	}
}

func TestLayoutLRU(t *testing.T) {
	c := NewCache(&monoShaper{})
	put := func(i int) {
		c.put(layoutKey{str: strconv.Itoa(i)}, nil)
	}
	get := func(i int) bool {
		_, ok := c.get(layoutKey{str: strconv.Itoa(i)})
		return ok
	}
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
