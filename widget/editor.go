// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"image"

	"golang.org/x/image/math/fixed"

	"minitext.org/internal/f32color"
	"minitext.org/layout"
	"minitext.org/op"
	"minitext.org/text"
)

// EditorOptions configure an Editor.
type EditorOptions struct {
	Shaper text.Shaper
	// TextSize is the text size in pixels. It is also the height
	// of a visual row.
	TextSize fixed.Int26_6
	// Size is the viewport size in pixels.
	Size image.Point
	// Margin is the width reserved at the end of every visual row
	// for the caret.
	Margin int
	// CaretWidth is the width of a caret after the last rune of a
	// line. If zero, DefaultCaretWidth is used.
	CaretWidth int
}

// Editor is a Document with a set of cursors, laid out in a
// scrollable viewport.
type Editor struct {
	// TextColor is the color of the text.
	TextColor f32color.RGBA
	// CaretColor is the color of the carets.
	CaretColor f32color.RGBA

	doc      *Document
	cursors  []*Cursor
	viewport layout.Viewport
	textSize fixed.Int26_6
	margin   int
	// scroll is the distance in pixels from the top of the
	// document to the top of the viewport.
	scroll int
}

// NewEditor returns an editor for lines with a single cursor at the
// start of the document.
func NewEditor(opts EditorOptions, lines []string) *Editor {
	e := &Editor{
		viewport: layout.Viewport{Size: opts.Size},
		textSize: opts.TextSize,
		margin:   opts.Margin,
	}
	e.doc = NewDocument(opts.Shaper, e.params(), lines...)
	if opts.CaretWidth > 0 {
		e.doc.SetCaretWidth(opts.CaretWidth)
	}
	e.AddCursor(Position{})
	return e
}

func (e *Editor) params() text.Params {
	w := e.viewport.Size.X - e.margin
	if w < 0 {
		w = 0
	}
	return text.Params{Size: e.textSize, MaxWidth: fixed.I(w)}
}

// Document returns the edited document.
func (e *Editor) Document() *Document {
	return e.doc
}

// Cursors returns the cursors of the editor.
func (e *Editor) Cursors() []*Cursor {
	return e.cursors
}

// AddCursor adds a cursor at pos, clamped to the document.
func (e *Editor) AddCursor(pos Position) *Cursor {
	c := NewCursor(e.doc, pos)
	e.cursors = append(e.cursors, c)
	return c
}

// Viewport returns the current viewport.
func (e *Editor) Viewport() layout.Viewport {
	return e.viewport
}

// Apply applies cmd to every cursor in turn. Each cursor is clamped
// to the document before its command, since edits through earlier
// cursors may have moved or removed its line. Afterwards, every caret
// is placed again and the scroll offset clamped to the new document.
func (e *Editor) Apply(cmd Command) error {
	var errs []error
	for _, c := range e.cursors {
		c.pos = c.pos.Clamp(e.doc)
		if err := c.Apply(e.doc, cmd); err != nil {
			errs = append(errs, err)
		}
	}
	e.updateCursors()
	e.ScrollBy(0)
	return errors.Join(errs...)
}

// Resize changes the viewport size. Every line is laid out again and
// every caret placed again. Empty sizes are ignored.
func (e *Editor) Resize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	e.viewport.Size = size
	e.relayout()
}

// SetTextSize changes the text size, for example after a change of
// display density.
func (e *Editor) SetTextSize(size fixed.Int26_6) {
	e.textSize = size
	e.relayout()
}

// SetMargin changes the width reserved at the end of every visual
// row.
func (e *Editor) SetMargin(margin int) {
	e.margin = margin
	e.relayout()
}

func (e *Editor) relayout() {
	e.doc.SetParams(e.params())
	e.updateCursors()
	e.ScrollBy(0)
}

func (e *Editor) updateCursors() {
	for _, c := range e.cursors {
		c.SetPos(e.doc, c.pos)
	}
}

// Scroll returns the distance in pixels from the top of the document
// to the top of the viewport.
func (e *Editor) Scroll() int {
	return e.scroll
}

// ScrollBy scrolls the content dy pixels; positive values reveal
// later lines. The last visual row never scrolls past the top of the
// viewport.
func (e *Editor) ScrollBy(dy int) {
	e.scroll += dy
	max := (e.doc.VisualRows() - 1) * e.doc.LineHeight()
	if e.scroll > max {
		e.scroll = max
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}

// ScrollLines scrolls the content n visual rows.
func (e *Editor) ScrollLines(n int) {
	e.ScrollBy(n * e.doc.LineHeight())
}

// Layout records the visible rows of text and the carets.
func (e *Editor) Layout(o *op.Ops) {
	lh := e.doc.LineHeight()
	y := -e.scroll
	for _, l := range e.doc.lines {
		for i := 0; i < l.NumRows(); i++ {
			if y+lh > 0 && y < e.viewport.Size.Y {
				start, end := l.layout.RowRange(i)
				op.TextOp{
					Text:  string(l.text[start:end]),
					Pos:   image.Pt(0, y),
					Color: e.TextColor,
				}.Add(o)
			}
			y += lh
		}
	}
	for _, c := range e.cursors {
		c.Rect(e.scroll, e.CaretColor).Add(o, e.viewport)
	}
}
