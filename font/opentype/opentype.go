// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements text shaping for OpenType and TrueType
// font files.
package opentype

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"minitext.org/text"
)

// Face is a parsed font. It implements text.Shaper and is safe for
// concurrent use.
type Face struct {
	font    *sfnt.Font
	hinting font.Hinting
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (*Face, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return &Face{font: f, hinting: font.HintingFull}, nil
}

// Font returns the underlying font, for rasterization.
func (f *Face) Font() *sfnt.Font {
	return f.font
}

// NewFace returns a font.Face drawing glyphs at text size ppem.
func (f *Face) NewFace(ppem fixed.Int26_6) (font.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(ppem) / 64,
		DPI:     72,
		Hinting: f.hinting,
	})
}

// Metrics returns the font metrics at text size ppem.
func (f *Face) Metrics(ppem fixed.Int26_6) font.Metrics {
	var buf sfnt.Buffer
	m, _ := f.font.Metrics(&buf, ppem, f.hinting)
	return m
}

// Shape implements text.Shaper. Runes missing from the font are shaped
// with the font's notdef glyph, so exactly one glyph is produced per
// rune of the fitting prefix.
func (f *Face) Shape(s string, p text.Params) []text.Glyph {
	var (
		buf    sfnt.Buffer
		glyphs []text.Glyph
		x      fixed.Int26_6
		prev   sfnt.GlyphIndex
	)
	for _, r := range s {
		g, err := f.font.GlyphIndex(&buf, r)
		if err != nil {
			g = 0
		}
		adv, err := f.font.GlyphAdvance(&buf, g, p.Size, f.hinting)
		if err != nil {
			adv = 0
		}
		if n := len(glyphs); n > 0 {
			var k fixed.Int26_6
			if kern, err := f.font.Kern(&buf, prev, g, p.Size, f.hinting); err == nil {
				k = kern
			}
			// Break the row if we're out of space.
			if x+k+adv > p.MaxWidth {
				break
			}
			glyphs[n-1].Advance += k
			x += k
		}
		glyphs = append(glyphs, text.Glyph{
			Rune:    r,
			X:       x,
			Advance: adv,
			Width:   adv,
		})
		x += adv
		prev = g
	}
	return glyphs
}
