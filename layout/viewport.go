// SPDX-License-Identifier: Unlicense OR MIT

// Package layout converts between pixel space and the normalized
// device space of the rendering surface.
package layout

import (
	"image"
	"math"

	"minitext.org/f32"
)

// Viewport is the drawable area in pixels. Pixel space has its origin
// in the top-left corner with Y extending down; device space spans
// [-1, 1] on both axes with Y extending up.
//
// The conversions are pure functions of Size and must be re-evaluated
// after every resize.
type Viewport struct {
	Size image.Point
}

// Empty reports whether the viewport has no area. Conversions on an
// empty viewport return zero values.
func (v Viewport) Empty() bool {
	return v.Size.X <= 0 || v.Size.Y <= 0
}

// ToNDC converts the pixel rectangle at pos with size to device space.
func (v Viewport) ToNDC(pos, size image.Point) f32.Rectangle {
	if v.Empty() {
		return f32.Rectangle{}
	}
	w, h := float32(v.Size.X), float32(v.Size.Y)
	return f32.Rectangle{
		Origin: f32.Point{
			X: float32(pos.X)/(w/2) - 1,
			Y: -(float32(pos.Y)/(h/2) - 1),
		},
		Size: f32.Point{
			X: float32(size.X) / w * 2,
			Y: float32(size.Y) / h * 2,
		},
	}
}

// FromNDC converts the device space rectangle r to pixel space,
// rounding to the nearest pixel.
func (v Viewport) FromNDC(r f32.Rectangle) (pos, size image.Point) {
	if v.Empty() {
		return image.Point{}, image.Point{}
	}
	w, h := float64(v.Size.X), float64(v.Size.Y)
	pos = image.Point{
		X: round((float64(r.Origin.X) + 1) * (w / 2)),
		Y: round((-float64(r.Origin.Y) + 1) * (h / 2)),
	}
	size = image.Point{
		X: round(float64(r.Size.X) * w / 2),
		Y: round(float64(r.Size.Y) * h / 2),
	}
	return pos, size
}

func round(v float64) int {
	return int(math.Round(v))
}
