// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events about the window and its surface.
package system

import (
	"image"
)

// A ResizeEvent is generated when the drawable area of the window
// changes size or pixel density.
type ResizeEvent struct {
	// Size is the new size in pixels.
	Size image.Point
	// Scale is the number of pixels per dp. Zero means unchanged.
	Scale float32
}

// A DestroyEvent is the last event sent to a window.
type DestroyEvent struct{}

func (ResizeEvent) ImplementsEvent()  {}
func (DestroyEvent) ImplementsEvent() {}
