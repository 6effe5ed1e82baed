// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

// updatePrimal computes x = y - lambda*Dᵀz in a single pass over x, without
// materializing Dᵀz in an intermediate buffer. It is the fused form of
// applyDT followed by a scaled subtract.
//
// updatePrimal requires n >= 4 (m = n-2 >= 2), matching NewSolver's
// precondition; it is never called with a smaller n.
func updatePrimal(n int, y, z []float64, lambda float64, x []float64) {
	m := n - 2

	x[0] = y[0] + lambda*z[0]
	x[1] = y[1] - lambda*(2*z[0]-z[1])
	for i := 2; i <= n-3; i++ {
		x[i] = y[i] - lambda*(-z[i-2]+2*z[i-1]-z[i])
	}
	x[n-2] = y[n-2] - lambda*(-z[m-2]+2*z[m-1])
	x[n-1] = y[n-1] + lambda*z[m-1]
}
