// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"minitext.org/text"
)

var (
	// ErrOutOfRange is returned for line indices beyond the
	// bounds of a Document.
	ErrOutOfRange = errors.New("line index out of range")
	// ErrInvalidCursorPosition is returned for columns beyond
	// the end of their line.
	ErrInvalidCursorPosition = errors.New("invalid cursor position")
)

// DefaultCaretWidth is the width in pixels of a caret placed after
// the last rune of a line, where there is no glyph to measure.
const DefaultCaretWidth = 8

// Document is an ordered list of Lines. The index of a Line is its
// logical line number. A Document always has at least one Line.
type Document struct {
	shaper     text.Shaper
	params     text.Params
	caretWidth int
	lines      []*Line
}

// NewDocument lays out lines with s and p. An empty list of lines
// results in a Document with a single empty Line.
func NewDocument(s text.Shaper, p text.Params, lines ...string) *Document {
	d := &Document{
		shaper:     s,
		params:     p,
		caretWidth: DefaultCaretWidth,
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	d.lines = make([]*Line, len(lines))
	for i, str := range lines {
		d.lines[i] = newLine(s, p, []rune(str))
	}
	return d
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns line i.
func (d *Document) Line(i int) (*Line, error) {
	if i < 0 || i >= len(d.lines) {
		return nil, fmt.Errorf("%w: line %d of %d", ErrOutOfRange, i, len(d.lines))
	}
	return d.lines[i], nil
}

// InsertLine inserts a line with text str at index i, shifting
// subsequent lines down. i may equal Len to append.
func (d *Document) InsertLine(i int, str string) error {
	if i < 0 || i > len(d.lines) {
		return fmt.Errorf("%w: insert at %d of %d", ErrOutOfRange, i, len(d.lines))
	}
	d.lines = slices.Insert(d.lines, i, newLine(d.shaper, d.params, []rune(str)))
	return nil
}

// RemoveLine removes line i, shifting subsequent lines up. The only
// line of a Document cannot be removed.
func (d *Document) RemoveLine(i int) error {
	if i < 0 || i >= len(d.lines) {
		return fmt.Errorf("%w: remove %d of %d", ErrOutOfRange, i, len(d.lines))
	}
	if len(d.lines) == 1 {
		return fmt.Errorf("%w: cannot remove the only line", ErrOutOfRange)
	}
	d.lines = slices.Delete(d.lines, i, i+1)
	return nil
}

// Params returns the shaping parameters of the document.
func (d *Document) Params() text.Params {
	return d.params
}

// SetParams changes the shaping parameters and lays out every line
// again.
func (d *Document) SetParams(p text.Params) {
	d.params = p
	for _, l := range d.lines {
		l.relayout(d.shaper, p)
	}
}

// LineHeight returns the height of a visual row in pixels.
func (d *Document) LineHeight() int {
	return d.params.LineHeight()
}

// CaretWidth returns the width of a caret after the end of a line.
func (d *Document) CaretWidth() int {
	return d.caretWidth
}

// SetCaretWidth sets the width of a caret after the end of a line.
func (d *Document) SetCaretWidth(w int) {
	d.caretWidth = w
}

// RowsBefore returns the number of visual rows of the lines
// preceding line i.
func (d *Document) RowsBefore(i int) int {
	n := 0
	for _, l := range d.lines[:i] {
		n += l.NumRows()
	}
	return n
}

// VisualRows returns the number of visual rows of the document.
func (d *Document) VisualRows() int {
	return d.RowsBefore(len(d.lines))
}

// Lines returns the text of every line.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.lines))
	for i, l := range d.lines {
		lines[i] = l.Text()
	}
	return lines
}

// String returns the lines of the document joined by newlines.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

// check reports whether pos addresses a rune boundary of the document.
func (d *Document) check(pos Position) error {
	l, err := d.Line(pos.Line)
	if err != nil {
		return err
	}
	if pos.Col < 0 || pos.Col > l.Len() {
		return fmt.Errorf("%w: column %d of line %d with %d runes", ErrInvalidCursorPosition, pos.Col, pos.Line, l.Len())
	}
	return nil
}

// insertRune inserts r before column pos.Col of line pos.Line.
func (d *Document) insertRune(pos Position, r rune) {
	l := d.lines[pos.Line]
	l.text = slices.Insert(l.text, pos.Col, r)
	l.relayout(d.shaper, d.params)
}

// deleteRune deletes the rune at column pos.Col of line pos.Line.
func (d *Document) deleteRune(pos Position) {
	l := d.lines[pos.Line]
	l.text = slices.Delete(l.text, pos.Col, pos.Col+1)
	l.relayout(d.shaper, d.params)
}

// splitLine splits line pos.Line at column pos.Col. The runes after
// the column move to a new line inserted below.
func (d *Document) splitLine(pos Position) {
	l := d.lines[pos.Line]
	after := slices.Clone(l.text[pos.Col:])
	l.text = slices.Clip(l.text[:pos.Col])
	l.relayout(d.shaper, d.params)
	d.lines = slices.Insert(d.lines, pos.Line+1, newLine(d.shaper, d.params, after))
}

// joinLine appends line i to line i-1 and removes line i. It returns
// the length of line i-1 before the join.
func (d *Document) joinLine(i int) int {
	prev, l := d.lines[i-1], d.lines[i]
	n := len(prev.text)
	prev.text = append(slices.Clip(prev.text), l.text...)
	d.lines = slices.Delete(d.lines, i, i+1)
	prev.relayout(d.shaper, d.params)
	return n
}
