// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	"unicode"

	"minitext.org/internal/f32color"
)

// Cursor is a caret into a Document. Its pixel placement is cached
// and recomputed whenever its position changes through Apply or
// SetPos; after edits through other cursors, Update must be called.
type Cursor struct {
	pos   Position
	caret Caret
}

// NewCursor returns a cursor at pos, placed in d. The position is
// clamped to d.
func NewCursor(d *Document, pos Position) *Cursor {
	c := new(Cursor)
	c.SetPos(d, pos)
	return c
}

// Pos returns the logical position of the cursor.
func (c *Cursor) Pos() Position {
	return c.pos
}

// Caret returns the cached caret placement of the cursor.
func (c *Cursor) Caret() Caret {
	return c.caret
}

// SetPos moves the cursor to pos clamped to d.
func (c *Cursor) SetPos(d *Document, pos Position) {
	c.pos = pos.Clamp(d)
	// A clamped position always locates.
	c.caret, _ = Locate(d, c.pos)
}

// Update recomputes the caret placement after a change of d's
// layout.
func (c *Cursor) Update(d *Document) error {
	caret, err := Locate(d, c.pos)
	if err != nil {
		return err
	}
	c.caret = caret
	return nil
}

// Rect returns the caret rectangle, scrolled by scroll pixels.
func (c *Cursor) Rect(scroll int, col f32color.RGBA) Rect {
	return Rect{
		Pos:    image.Pt(c.caret.X, c.caret.Y),
		Size:   image.Pt(c.caret.Width, c.caret.Height),
		Offset: image.Pt(0, -scroll),
		Color:  col,
	}
}

// Apply applies cmd at the cursor's position and updates the caret.
// The position must address d; edits through other cursors may
// invalidate it.
func (c *Cursor) Apply(d *Document, cmd Command) error {
	if err := d.check(c.pos); err != nil {
		return err
	}
	switch cmd := cmd.(type) {
	case Move:
		c.move(d, cmd.Dir)
	case Insert:
		if unicode.IsControl(cmd.Rune) {
			break
		}
		d.insertRune(c.pos, cmd.Rune)
		c.pos.Col++
	case Newline:
		d.splitLine(c.pos)
		c.pos = Position{Col: 0, Line: c.pos.Line + 1}
	case Backspace:
		switch {
		case c.pos.Col > 0:
			c.pos.Col--
			d.deleteRune(c.pos)
		case c.pos.Line > 0:
			n := d.joinLine(c.pos.Line)
			c.pos = Position{Col: n, Line: c.pos.Line - 1}
		}
	case Tab:
	default:
		panic(fmt.Errorf("unknown command %T", cmd))
	}
	return c.Update(d)
}

// move moves the cursor without ghost column memory: moving to a
// shorter line clamps the column and it is not restored later.
func (c *Cursor) move(d *Document, dir Direction) {
	p := c.pos
	switch dir {
	case Left:
		if p.Col > 0 {
			p.Col--
		} else if p.Line > 0 {
			p.Line--
			p.Col = d.lines[p.Line].Len()
		}
	case Right:
		if p.Col < d.lines[p.Line].Len() {
			p.Col++
		} else if p.Line < d.Len()-1 {
			p.Line++
			p.Col = 0
		}
	case Up:
		if p.Line > 0 {
			p.Line--
			if n := d.lines[p.Line].Len(); p.Col > n {
				p.Col = n
			}
		}
	case Down:
		if p.Line < d.Len()-1 {
			p.Line++
			if n := d.lines[p.Line].Len(); p.Col > n {
				p.Col = n
			}
		}
	}
	c.pos = p
}
