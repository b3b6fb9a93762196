// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
)

// Position is a logical address into a Document, independent of
// wrapping. Col ranges from 0 to the length of the line inclusive.
type Position struct {
	Col, Line int
}

// Caret is the pixel placement of a cursor relative to the top-left
// corner of the document.
type Caret struct {
	X, Y          int
	Width, Height int
}

// Clamp returns the position nearest to p that addresses d.
func (p Position) Clamp(d *Document) Position {
	if p.Line >= d.Len() {
		p.Line = d.Len() - 1
	}
	if p.Line < 0 {
		p.Line = 0
	}
	if n := d.lines[p.Line].Len(); p.Col > n {
		p.Col = n
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}

// Locate returns the caret placement of pos. The caret covers the
// glyph at pos, or sits just past the right edge of the last glyph
// of the line's last visual row when pos.Col equals the line length.
// Y counts the visual rows of every preceding line.
//
// Positions beyond the end of their line are a contract violation;
// callers must clamp positions before locating them.
func Locate(d *Document, pos Position) (Caret, error) {
	l, err := d.Line(pos.Line)
	if err != nil {
		return Caret{}, err
	}
	lh := d.LineHeight()
	y := d.RowsBefore(pos.Line) * lh
	rows := l.layout.Rows()
	col, lastX := 0, 0
	for row, glyphs := range rows {
		lastX = 0
		for _, g := range glyphs {
			x, w := g.X.Round(), g.Width.Round()
			if col == pos.Col {
				return Caret{X: x, Y: y + row*lh, Width: w, Height: lh}, nil
			}
			lastX = x + w
			col++
		}
	}
	if col == pos.Col {
		return Caret{X: lastX, Y: y + (len(rows)-1)*lh, Width: d.caretWidth, Height: lh}, nil
	}
	return Caret{}, fmt.Errorf("%w: column %d of line %d with %d runes", ErrInvalidCursorPosition, pos.Col, pos.Line, col)
}
