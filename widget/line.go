// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"minitext.org/text"
)

// Line is a logical line of text and its wrapped layout. The text
// and layout of a Line are only replaced together, by the Document
// that owns it.
type Line struct {
	text   []rune
	layout text.Layout
}

func newLine(s text.Shaper, p text.Params, runes []rune) *Line {
	l := &Line{text: runes}
	l.relayout(s, p)
	return l
}

func (l *Line) relayout(s text.Shaper, p text.Params) {
	l.layout = text.NewLayout(s, l.text, p)
}

// Text returns the contents of the line.
func (l *Line) Text() string {
	return string(l.text)
}

// Runes returns the contents of the line. The returned slice must
// not be modified.
func (l *Line) Runes() []rune {
	return l.text
}

// Len returns the number of runes in the line.
func (l *Line) Len() int {
	return len(l.text)
}

// Layout returns the wrapped layout of the line.
func (l *Line) Layout() text.Layout {
	return l.layout
}

// NumRows returns the number of visual rows of the line.
func (l *Line) NumRows() int {
	return l.layout.NumRows()
}
