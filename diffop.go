// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

// applyD writes the second-order difference (Dx)_i = -x_i + 2x_{i+1} - x_{i+2}
// for i = 0, ..., n-3 into dst. dst must have length n-2.
func applyD(n int, x, dst []float64) {
	for i := 0; i < n-2; i++ {
		dst[i] = -x[i] + 2*x[i+1] - x[i+2]
	}
}

// applyDT writes the adjoint stencil Dᵀz into dst, a length-n vector, from
// z, a length-(n-2) vector. The boundary rows use the truncated stencil:
//
//	dst[0]   = -z[0]
//	dst[1]   = 2z[0] - z[1]
//	dst[i]   = -z[i-2] + 2z[i-1] - z[i],  2 <= i <= n-3
//	dst[n-2] = -z[n-4] + 2z[n-3]
//	dst[n-1] = -z[n-3]
//
// applyDT requires n >= 4 (m = n-2 >= 2), matching NewSolver's precondition;
// it is never called with a smaller n.
func applyDT(n int, z, dst []float64) {
	m := n - 2

	dst[0] = -z[0]
	dst[1] = 2*z[0] - z[1]
	for i := 2; i <= n-3; i++ {
		dst[i] = -z[i-2] + 2*z[i-1] - z[i]
	}
	dst[n-2] = -z[m-2] + 2*z[m-1]
	dst[n-1] = -z[m-1]
}
