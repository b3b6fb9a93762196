// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"testing"
	"testing/quick"

	"minitext.org/f32"
)

func TestToNDC(t *testing.T) {
	v := Viewport{Size: image.Pt(800, 600)}
	tests := []struct {
		pos, size image.Point
		want      f32.Rectangle
	}{
		{image.Pt(0, 0), image.Pt(800, 600), f32.Rectangle{Origin: f32.Pt(-1, 1), Size: f32.Pt(2, 2)}},
		{image.Pt(400, 300), image.Pt(8, 16), f32.Rectangle{Origin: f32.Pt(0, 0), Size: f32.Pt(0.02, 16.0/600*2)}},
		{image.Pt(800, 600), image.Pt(0, 0), f32.Rectangle{Origin: f32.Pt(1, -1)}},
		{image.Pt(-400, -300), image.Pt(1, 1), f32.Rectangle{Origin: f32.Pt(-2, 2), Size: f32.Pt(1.0/800*2, 1.0/600*2)}},
	}
	for _, tc := range tests {
		if got := v.ToNDC(tc.pos, tc.size); got != tc.want {
			t.Errorf("ToNDC(%v, %v) = %+v, want %+v", tc.pos, tc.size, got, tc.want)
		}
	}
}

func TestNDCRoundTrip(t *testing.T) {
	f := func(x, y int16, w, h uint16, vw, vh uint16) bool {
		v := Viewport{Size: image.Pt(int(vw)+1, int(vh)+1)}
		pos, size := image.Pt(int(x), int(y)), image.Pt(int(w), int(h))
		gotPos, gotSize := v.FromNDC(v.ToNDC(pos, size))
		return gotPos == pos && gotSize == size
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestEmptyViewport(t *testing.T) {
	var v Viewport
	if r := v.ToNDC(image.Pt(1, 1), image.Pt(1, 1)); r != (f32.Rectangle{}) {
		t.Errorf("empty viewport produced %+v", r)
	}
}
