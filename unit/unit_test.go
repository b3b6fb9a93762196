// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"minitext.org/unit"
)

func TestMetric_DpToSp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}

	{
		exp := m.Dp(5)
		got := m.Sp(m.DpToSp(5))
		if got != exp {
			t.Errorf("DpToSp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := m.Sp(5)
		got := m.Dp(m.SpToDp(5))
		if got != exp {
			t.Errorf("SpToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Dp(5)
		got := m.PxToDp(m.Dp(5))
		if got != exp {
			t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.Sp(5)
		got := m.PxToSp(m.Sp(5))
		if got != exp {
			t.Errorf("PxToSp conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestZeroMetric(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(8); got != 8 {
		t.Errorf("zero metric: Dp(8) = %d, want 8", got)
	}
	if got := m.SpFixed(16); got != fixed.I(16) {
		t.Errorf("zero metric: SpFixed(16) = %v, want %v", got, fixed.I(16))
	}
	if got := unit.Scaled(2).Sp(16); got != 32 {
		t.Errorf("Scaled(2).Sp(16) = %d, want 32", got)
	}
}
