// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"minitext.org/f32"
	"minitext.org/layout"
	"minitext.org/op"
)

func TestRectContains(t *testing.T) {
	r := Rect{Pos: image.Pt(10, 20), Size: image.Pt(30, 10)}
	tests := []struct {
		pt   image.Point
		want bool
	}{
		{image.Pt(10, 20), true},
		{image.Pt(40, 30), true},
		{image.Pt(25, 25), true},
		{image.Pt(9, 25), false},
		{image.Pt(41, 25), false},
		{image.Pt(25, 31), false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.pt); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.pt, got, tc.want)
		}
	}
	r.Offset = image.Pt(0, -20)
	if !r.Contains(image.Pt(10, 0)) || r.Contains(image.Pt(10, 20+11)) {
		t.Error("Contains ignores the offset")
	}
}

func TestRectNDCFollowsViewport(t *testing.T) {
	r := Rect{Pos: image.Pt(0, 0), Size: image.Pt(100, 50)}
	small := layout.Viewport{Size: image.Pt(200, 100)}
	if got, want := r.NDC(small), (f32.Rectangle{Origin: f32.Pt(-1, 1), Size: f32.Pt(1, 1)}); got != want {
		t.Errorf("NDC = %v, want %v", got, want)
	}
	large := layout.Viewport{Size: image.Pt(400, 200)}
	if got, want := r.NDC(large), (f32.Rectangle{Origin: f32.Pt(-1, 1), Size: f32.Pt(0.5, 0.5)}); got != want {
		t.Errorf("NDC after resize = %v, want %v", got, want)
	}
}

func TestButton(t *testing.T) {
	b := &Button{
		Rect:  Rect{Pos: image.Pt(5, 5), Size: image.Pt(40, 20), Color: testColor},
		Label: "Save",
	}
	if !b.Clicked(image.Pt(20, 10)) {
		t.Error("click inside not detected")
	}
	if b.Clicked(image.Pt(60, 10)) {
		t.Error("click outside detected")
	}
	var o op.Ops
	b.Layout(&o, layout.Viewport{Size: image.Pt(100, 100)})
	if n := len(o.Fills()); n != 1 {
		t.Fatalf("got %d fills, want 1", n)
	}
	if got := o.Fills()[0].Rect; got != image.Rect(5, 5, 45, 25) {
		t.Errorf("fill rect %v", got)
	}
	if texts := o.Texts(); len(texts) != 1 || texts[0].Text != "Save" {
		t.Errorf("got texts %+v", texts)
	}
}
