// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/math/fixed"

	"minitext.org/font/gofont"
	"minitext.org/internal/f32color"
	"minitext.org/layout"
	"minitext.org/op"
)

var (
	red  = f32color.LinearFromSRGB(color.NRGBA{R: 0xff, A: 0xff})
	blue = f32color.LinearFromSRGB(color.NRGBA{B: 0xff, A: 0xff})
)

func addFill(o *op.Ops, v layout.Viewport, r image.Rectangle, col f32color.RGBA) {
	op.FillOp{Rect: r, NDC: v.ToNDC(r.Min, r.Size()), Color: col}.Add(o)
}

func near(c1, c2 color.RGBA) bool {
	d := func(a, b uint8) bool { return a-b < 3 || b-a < 3 }
	return d(c1.R, c2.R) && d(c1.G, c2.G) && d(c1.B, c2.B) && d(c1.A, c2.A)
}

func TestFills(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))
	v := layout.Viewport{Size: dst.Bounds().Size()}
	var o op.Ops
	addFill(&o, v, image.Rect(0, 0, 20, 10), red)
	addFill(&o, v, image.Rect(5, 2, 10, 6), blue)
	// Partly outside the frame.
	addFill(&o, v, image.Rect(15, -5, 30, 3), blue)
	r := New(gofont.Mono())
	if err := r.Frame(&o, dst, fixed.I(16)); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		pt   image.Point
		want color.RGBA
	}{
		{image.Pt(1, 8), color.RGBA{R: 0xff, A: 0xff}},
		{image.Pt(7, 4), color.RGBA{B: 0xff, A: 0xff}},
		{image.Pt(12, 4), color.RGBA{R: 0xff, A: 0xff}},
		{image.Pt(18, 1), color.RGBA{B: 0xff, A: 0xff}},
		{image.Pt(18, 5), color.RGBA{R: 0xff, A: 0xff}},
	}
	for _, tc := range tests {
		if got := dst.RGBAAt(tc.pt.X, tc.pt.Y); !near(got, tc.want) {
			t.Errorf("pixel %v = %v, want %v", tc.pt, got, tc.want)
		}
	}
}

func TestText(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 20))
	v := layout.Viewport{Size: dst.Bounds().Size()}
	white := f32color.LinearFromSRGB(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	var o op.Ops
	addFill(&o, v, dst.Bounds(), white)
	op.TextOp{Text: "Save", Color: red}.Add(&o)
	r := New(gofont.Regular())
	if err := r.Frame(&o, dst, fixed.I(16)); err != nil {
		t.Fatal(err)
	}
	inked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if c := dst.RGBAAt(x, y); c.G < 0x80 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("no text drawn")
	}
	// Text is drawn below its position, never above.
	o.Reset()
	op.TextOp{Text: "Save", Pos: image.Pt(0, 20), Color: red}.Add(&o)
	before := append([]uint8(nil), dst.Pix...)
	if err := r.Frame(&o, dst, fixed.I(16)); err != nil {
		t.Fatal(err)
	}
	if string(before) != string(dst.Pix) {
		t.Error("text below the frame was drawn")
	}
}

func TestNilFrame(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := New(gofont.Mono()).Frame(nil, dst, fixed.I(16)); err != nil {
		t.Error(err)
	}
}
