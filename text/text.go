// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements the wrapped layout of logical lines of text.

A Shaper maps a string to positioned glyphs; a Layout partitions one
logical line into visual rows by repeatedly asking the Shaper for the
longest prefix that fits the available width.
*/
package text

import (
	"golang.org/x/image/math/fixed"
)

// Glyph is a shaped, positioned rendering unit for one rune.
type Glyph struct {
	Rune rune
	// X is the offset of the glyph from the start of its visual row.
	X fixed.Int26_6
	// Advance is the distance to the next glyph, including kerning.
	Advance fixed.Int26_6
	// Width is the horizontal extent of the glyph's layout bounds.
	Width fixed.Int26_6
}

// Params are the shaping parameters of a layout.
type Params struct {
	// Size is the text size in pixels per em.
	Size fixed.Int26_6
	// MaxWidth is the available width of a visual row.
	MaxWidth fixed.Int26_6
}

// Shaper converts strings into glyphs.
//
// Shape returns one glyph per rune for the longest prefix of s whose
// glyphs fit within p.MaxWidth. For non-empty s at least one glyph is
// returned, even if it does not fit, so that callers always make
// progress. Shape must be deterministic and must not retain s.
type Shaper interface {
	Shape(s string, p Params) []Glyph
}

// LineHeight returns the height in pixels of a visual row.
func (p Params) LineHeight() int {
	return p.Size.Round()
}

// End returns the position just past the right edge of g.
func (g Glyph) End() fixed.Int26_6 {
	return g.X + g.Width
}
