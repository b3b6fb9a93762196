// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/image/math/fixed"

	"minitext.org/internal/f32color"
	"minitext.org/text"
)

// monoShaper lays out every rune with a 10 pixel advance.
type monoShaper struct{}

const monoAdvance = 10

func (monoShaper) Shape(s string, p text.Params) []text.Glyph {
	var glyphs []text.Glyph
	var x fixed.Int26_6
	adv := fixed.I(monoAdvance)
	for _, r := range s {
		if len(glyphs) > 0 && x+adv > p.MaxWidth {
			break
		}
		glyphs = append(glyphs, text.Glyph{Rune: r, X: x, Advance: adv, Width: adv})
		x += adv
	}
	return glyphs
}

// testParams fit five runes on a row of height 16.
var testParams = text.Params{Size: fixed.I(16), MaxWidth: fixed.I(50)}

func newTestDocument(lines ...string) *Document {
	return NewDocument(monoShaper{}, testParams, lines...)
}

var testColor = f32color.RGBA{R: 1, A: 1}
