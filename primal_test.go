// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

import "testing"

func TestUpdatePrimalMatchesUnfusedForm(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5, 6, 7}
	z := []float64{0.1, -0.2, 0.3, -0.4, 0.5}
	lambda := 0.7
	n := len(y)

	got := make([]float64, n)
	updatePrimal(n, y, z, lambda, got)

	dtz := make([]float64, n)
	applyDT(n, z, dtz)
	want := make([]float64, n)
	for i := range want {
		want[i] = y[i] - lambda*dtz[i]
	}

	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("updatePrimal[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUpdatePrimalZeroDual(t *testing.T) {
	y := []float64{1, -2, 3, -4}
	z := make([]float64, len(y)-2)
	x := make([]float64, len(y))
	updatePrimal(len(y), y, z, 1, x)
	for i := range y {
		if x[i] != y[i] {
			t.Errorf("x[%d] = %v, want %v (z=0 implies x=y)", i, x[i], y[i])
		}
	}
}
