// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle, used for normalized device coordinates.

Unlike pixel space, device space has its origin in the center
of the viewport with the Y axis extending up.
*/
package f32

import (
	"image"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rectangle is an axis-aligned rectangle described by its
// top-left corner and its extent. In device space the rectangle
// covers the points (X, Y) where Origin.X <= X < Origin.X+Size.X
// and Origin.Y-Size.Y < Y <= Origin.Y.
type Rectangle struct {
	Origin, Size Point
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Round returns the integer point closest to p.
func (p Point) Round() image.Point {
	return image.Point{
		X: int(math.Round(float64(p.X))),
		Y: int(math.Round(float64(p.Y))),
	}
}

// Empty reports whether r covers no area.
func (r Rectangle) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	r.Origin = r.Origin.Add(p)
	return r
}

// Vertices returns the two counter-clockwise triangles covering r,
// in the order expected by a triangle-list vertex buffer.
func (r Rectangle) Vertices() [6]Point {
	x, y := r.Origin.X, r.Origin.Y
	w, h := r.Size.X, r.Size.Y
	return [6]Point{
		{x, y},
		{x, y - h},
		{x + w, y - h},

		{x + w, y},
		{x, y},
		{x + w, y - h},
	}
}
