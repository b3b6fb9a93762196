// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
)

// Layout is the wrapped layout of a logical line: the break offsets
// partitioning the line into visual rows and the glyphs of every row.
// The two are always computed together by NewLayout and a Layout is
// never modified afterwards.
type Layout struct {
	breaks []int
	rows   [][]Glyph
}

// NewLayout computes the layout of str. Each visual row holds as many
// runes as fit p.MaxWidth, breaking mid-word if necessary. Empty text
// results in a single empty row.
func NewLayout(s Shaper, str []rune, p Params) Layout {
	l := Layout{breaks: []int{0}}
	for done := 0; done < len(str); {
		row := s.Shape(string(str[done:]), p)
		n := len(row)
		if n == 0 || n > len(str)-done {
			panic(fmt.Errorf("text: shaper returned %d glyphs for %d runes", n, len(str)-done))
		}
		l.rows = append(l.rows, row)
		done += n
		l.breaks = append(l.breaks, done)
	}
	if len(l.rows) == 0 {
		l.rows = [][]Glyph{nil}
		l.breaks = append(l.breaks, 0)
	}
	l.validate(len(str))
	return l
}

// validate panics if the layout does not describe n runes.
func (l Layout) validate(n int) {
	if len(l.breaks) != len(l.rows)+1 {
		panic(fmt.Errorf("text: %d breaks for %d rows", len(l.breaks), len(l.rows)))
	}
	if l.breaks[0] != 0 || l.breaks[len(l.breaks)-1] != n {
		panic(fmt.Errorf("text: breaks %v do not span %d runes", l.breaks, n))
	}
	for i, row := range l.rows {
		start, end := l.breaks[i], l.breaks[i+1]
		if end <= start && n > 0 {
			panic(fmt.Errorf("text: breaks %v not strictly increasing", l.breaks))
		}
		if len(row) != end-start {
			panic(fmt.Errorf("text: row %d has %d glyphs, want %d", i, len(row), end-start))
		}
	}
}

// Breaks returns the rune offsets of the visual row boundaries. The
// first element is 0 and the last is the length of the text. The
// returned slice must not be modified.
func (l Layout) Breaks() []int {
	return l.breaks
}

// Rows returns the glyphs of every visual row. The returned slices
// must not be modified.
func (l Layout) Rows() [][]Glyph {
	return l.rows
}

// NumRows returns the number of visual rows.
func (l Layout) NumRows() int {
	return len(l.rows)
}

// Row returns the glyphs of visual row i.
func (l Layout) Row(i int) []Glyph {
	return l.rows[i]
}

// RowRange returns the rune offsets [start, end) of visual row i.
func (l Layout) RowRange(i int) (start, end int) {
	return l.breaks[i], l.breaks[i+1]
}

// Len returns the number of runes laid out.
func (l Layout) Len() int {
	if len(l.breaks) == 0 {
		return 0
	}
	return l.breaks[len(l.breaks)-1]
}
