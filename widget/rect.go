// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"minitext.org/f32"
	"minitext.org/internal/f32color"
	"minitext.org/layout"
	"minitext.org/op"
)

// Rect is a colored rectangle. Its canonical placement is in pixel
// space; the device space placement is derived on demand from the
// current viewport, never stored.
type Rect struct {
	// Pos is the top-left corner, possibly off-screen.
	Pos image.Point
	// Size is the extent in pixels.
	Size image.Point
	// Offset translates the rectangle before conversion, for
	// scrolling.
	Offset image.Point
	Color  f32color.RGBA
}

// Bounds returns the translated rectangle in pixel space.
func (r Rect) Bounds() image.Rectangle {
	min := r.Pos.Add(r.Offset)
	return image.Rectangle{Min: min, Max: min.Add(r.Size)}
}

// NDC returns the translated rectangle in the device space of v.
func (r Rect) NDC(v layout.Viewport) f32.Rectangle {
	return v.ToNDC(r.Pos.Add(r.Offset), r.Size)
}

// Contains reports whether pt lies inside the translated rectangle,
// edges included.
func (r Rect) Contains(pt image.Point) bool {
	b := r.Bounds()
	return b.Min.X <= pt.X && pt.X <= b.Max.X &&
		b.Min.Y <= pt.Y && pt.Y <= b.Max.Y
}

// Add records r as a fill for viewport v.
func (r Rect) Add(o *op.Ops, v layout.Viewport) {
	op.FillOp{Rect: r.Bounds(), NDC: r.NDC(v), Color: r.Color}.Add(o)
}

// Button is a rectangular control with a text label.
type Button struct {
	Rect
	Label      string
	LabelColor f32color.RGBA
}

// Clicked reports whether a click at pt hits the button.
func (b *Button) Clicked(pt image.Point) bool {
	return b.Contains(pt)
}

// Layout records the button for viewport v.
func (b *Button) Layout(o *op.Ops, v layout.Viewport) {
	b.Rect.Add(o, v)
	if b.Label != "" {
		op.TextOp{Text: b.Label, Pos: b.Bounds().Min, Color: b.LabelColor}.Add(o)
	}
}
