// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software rasterizer for operation lists,
for rendering frames without a GPU.
*/
package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"minitext.org/f32"
	"minitext.org/font/opentype"
	"minitext.org/layout"
	"minitext.org/op"
)

// Rasterizer draws frames into images.
type Rasterizer struct {
	face *opentype.Face

	// fontFace is face at size.
	fontFace font.Face
	size     fixed.Int26_6

	vr vector.Rasterizer
}

// New returns a rasterizer drawing text with face.
func New(face *opentype.Face) *Rasterizer {
	return &Rasterizer{face: face}
}

// Frame draws the fills and then the text of frame into frameBuf,
// whose bounds are taken as the viewport. Text is drawn at text size
// size.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA, size fixed.Int26_6) error {
	if frame == nil {
		return nil
	}
	v := layout.Viewport{Size: frameBuf.Bounds().Size()}
	for _, f := range frame.Fills() {
		r.fill(frameBuf, v, f)
	}
	if len(frame.Texts()) == 0 {
		return nil
	}
	if r.fontFace == nil || r.size != size {
		ff, err := r.face.NewFace(size)
		if err != nil {
			return err
		}
		if r.fontFace != nil {
			r.fontFace.Close()
		}
		r.fontFace, r.size = ff, size
	}
	ascent := r.fontFace.Metrics().Ascent
	for _, t := range frame.Texts() {
		d := font.Drawer{
			Dst:  frameBuf,
			Src:  image.NewUniform(t.Color.SRGB()),
			Face: r.fontFace,
			Dot:  fixed.P(t.Pos.X, t.Pos.Y).Add(fixed.Point26_6{Y: ascent}),
		}
		d.DrawString(t.Text)
	}
	return nil
}

// fill draws the device space rectangle of f.
func (r *Rasterizer) fill(frameBuf *image.RGBA, v layout.Viewport, f op.FillOp) {
	pos, size := v.FromNDC(f.NDC)
	bounds := image.Rectangle{Min: pos, Max: pos.Add(size)}
	bounds = bounds.Intersect(frameBuf.Bounds())
	if bounds.Empty() {
		return
	}
	r.vr.Reset(bounds.Dx(), bounds.Dy())
	r.vr.DrawOp = draw.Over
	// Clamping the corners of an axis-aligned rectangle clips it.
	origin := f32.Pt(float32(bounds.Min.X), float32(bounds.Min.Y))
	extent := f32.Pt(float32(bounds.Dx()), float32(bounds.Dy()))
	vs := f.NDC.Vertices()
	for i := 0; i < len(vs); i += 3 {
		p0 := clamp(toPixels(v, vs[i]).Sub(origin), extent)
		r.vr.MoveTo(p0.X, p0.Y)
		for _, p := range vs[i+1 : i+3] {
			p = clamp(toPixels(v, p).Sub(origin), extent)
			r.vr.LineTo(p.X, p.Y)
		}
		r.vr.ClosePath()
	}
	src := image.NewUniform(f.Color.SRGB())
	r.vr.Draw(frameBuf, bounds, src, image.Point{})
}

// toPixels maps a device space point to pixel space.
func toPixels(v layout.Viewport, p f32.Point) f32.Point {
	w, h := float32(v.Size.X), float32(v.Size.Y)
	return f32.Point{
		X: (p.X + 1) * w / 2,
		Y: (1 - p.Y) * h / 2,
	}
}

func clamp(p, extent f32.Point) f32.Point {
	p.X = float32(math.Max(0, math.Min(float64(p.X), float64(extent.X))))
	p.Y = float32(math.Max(0, math.Min(float64(p.Y), float64(extent.Y))))
	return p
}
