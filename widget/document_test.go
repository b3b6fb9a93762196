// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestDocumentNeverEmpty(t *testing.T) {
	d := newTestDocument()
	if d.Len() != 1 {
		t.Fatalf("got %d lines, want 1", d.Len())
	}
	l, err := d.Line(0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 || l.NumRows() != 1 {
		t.Errorf("got line %q with %d rows", l.Text(), l.NumRows())
	}
	if err := d.RemoveLine(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("removing the only line: got %v, want ErrOutOfRange", err)
	}
}

func TestDocumentLineOutOfRange(t *testing.T) {
	d := newTestDocument("a", "b")
	for _, i := range []int{-1, 2, 100} {
		if _, err := d.Line(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Line(%d): got %v, want ErrOutOfRange", i, err)
		}
	}
	if err := d.InsertLine(3, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("InsertLine(3): got %v", err)
	}
	if err := d.RemoveLine(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveLine(2): got %v", err)
	}
}

func TestDocumentInsertRemove(t *testing.T) {
	d := newTestDocument("a", "c")
	if err := d.InsertLine(1, "b"); err != nil {
		t.Fatal(err)
	}
	if err := d.InsertLine(3, "d"); err != nil {
		t.Fatal(err)
	}
	if got, want := d.Lines(), []string{"a", "b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := d.RemoveLine(0); err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "b\nc\nd"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDocumentSetParams(t *testing.T) {
	d := newTestDocument("abcdefghij", "xy")
	if got := d.VisualRows(); got != 3 {
		t.Fatalf("got %d rows, want 3", got)
	}
	p := d.Params()
	p.MaxWidth = fixed.I(20)
	d.SetParams(p)
	l, _ := d.Line(0)
	if got, want := l.Layout().Breaks(), []int{0, 2, 4, 6, 8, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("breaks after resize = %v, want %v", got, want)
	}
	if got := d.RowsBefore(1); got != 5 {
		t.Errorf("RowsBefore(1) = %d, want 5", got)
	}
	if got := d.VisualRows(); got != 6 {
		t.Errorf("VisualRows = %d, want 6", got)
	}
}

func TestLayoutInvariantsHold(t *testing.T) {
	d := newTestDocument("", "a", "abcde", "abcdef", "the quick brown fox")
	for i := 0; i < d.Len(); i++ {
		l, _ := d.Line(i)
		b := l.Layout().Breaks()
		if b[0] != 0 || b[len(b)-1] != l.Len() {
			t.Errorf("line %d: breaks %v do not span %d runes", i, b, l.Len())
		}
		sum := 0
		for _, row := range l.Layout().Rows() {
			sum += len(row)
		}
		if sum != l.Len() {
			t.Errorf("line %d: %d glyphs for %d runes", i, sum, l.Len())
		}
	}
}
