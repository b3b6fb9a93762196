// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op records the drawing operations of a frame.

An Ops list is the boundary between layout and rendering: layout
code describes what to draw as colored rectangles and positioned text
spans, and a renderer such as package raster or a GPU pipeline
replays them in order.

	ops := new(op.Ops)
	...
	ops.Reset()
	op.FillOp{Rect: ..., Color: ...}.Add(ops)
	op.TextOp{Text: "hello", Pos: ...}.Add(ops)
*/
package op

import (
	"image"

	"minitext.org/f32"
	"minitext.org/internal/f32color"
)

// Ops holds a list of operations.
type Ops struct {
	fills []FillOp
	texts []TextOp
}

// FillOp fills a rectangle with a color.
type FillOp struct {
	// Rect is the rectangle in pixel space.
	Rect image.Rectangle
	// NDC is Rect in normalized device coordinates, derived from
	// Rect for the viewport current when the op was added.
	NDC   f32.Rectangle
	Color f32color.RGBA
}

// TextOp draws a span of text with its top-left corner at Pos.
type TextOp struct {
	Text  string
	Pos   image.Point
	Color f32color.RGBA
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	o.fills = o.fills[:0]
	o.texts = o.texts[:0]
}

// Fills returns the recorded fills in the order they were added.
func (o *Ops) Fills() []FillOp {
	return o.fills
}

// Texts returns the recorded text spans in the order they were added.
func (o *Ops) Texts() []TextOp {
	return o.texts
}

func (f FillOp) Add(o *Ops) {
	o.fills = append(o.fills, f)
}

func (t TextOp) Add(o *Ops) {
	o.texts = append(o.texts, t)
}
