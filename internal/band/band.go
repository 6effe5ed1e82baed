// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package band solves the symmetric positive-definite bandwidth-2
// (quindiagonal) linear systems that arise from the active-set subproblem
// of the l1tf solver. Storage follows the row-major banded convention of
// gonum.org/v1/gonum/mat.BandDense and blas64.Band (each row stores its own
// diagonal entry plus coupling to the two preceding rows), specialized to a
// fixed bandwidth of 2 so the Cholesky factor-and-solve can be inlined
// in closed form rather than routed through a general LAPACK band routine.
package band

import "math"

// floor is the value Factorize substitutes for a non-positive pivot; it
// keeps a non-PD factorization finite rather than propagating NaN through
// the rest of the column.
const floor = 1e-300

// floorSqrt is the exact value Factorize assigns to a floored pivot's
// diagonal entry (math.Sqrt(floor)); comparing against it identifies a
// pivot that was floored, without a separate scratch buffer.
var floorSqrt = math.Sqrt(floor)

// System is a symmetric positive-definite band matrix of size K with
// bandwidth 2, plus its right-hand side / solution vector B.
//
// D, E, F and B are owned by the caller and reused across iterations via
// Reset; System performs no allocation of its own.
//
//	D[j]   = A(j,j)      for j = 0, ..., K-1
//	E[j]   = A(j,j-1)    for j = 1, ..., K-1   (E[0] unused)
//	F[j]   = A(j,j-2)    for j = 2, ..., K-1   (F[0], F[1] unused)
//	B[j]   = right-hand side, then solution, for j = 0, ..., K-1
//
// After Factorize, D, E and F hold the Cholesky factor L (lower triangular,
// bandwidth 2, A = L Lᵀ) in the same layout.
type System struct {
	K       int
	D, E, F []float64
	B       []float64
}

// NewSystem allocates a System with scratch capacity for up to capacity
// active coordinates.
func NewSystem(capacity int) *System {
	return &System{
		D: make([]float64, capacity),
		E: make([]float64, capacity),
		F: make([]float64, capacity),
		B: make([]float64, capacity),
	}
}

// Reset truncates the scratch slices to length k, reusing backing arrays
// and zeroing their contents.
func (s *System) Reset(k int) {
	s.K = k
	s.D = s.D[:k]
	s.E = s.E[:k]
	s.F = s.F[:k]
	s.B = s.B[:k]
	for i := 0; i < k; i++ {
		s.D[i], s.E[i], s.F[i], s.B[i] = 0, 0, 0, 0
	}
}

// Factorize computes the Cholesky factor L of the band matrix described by
// D, E, F in place, overwriting them with L's entries in the same layout.
//
// Factorize returns whether every pivot encountered was strictly positive,
// i.e. whether the matrix was (to floating-point) positive definite. On a
// false return the factorization still runs to completion: non-positive
// pivots are floored to a small positive value so the resulting L (and any
// subsequent Solve) stays finite. This matches gonum's
// lapack/testlapack.Dpbtf2Test contract of signaling failure via a boolean
// rather than aborting, and spec.md's policy of letting the driver continue
// with whatever z_A the numerically degraded solve produced.
//
// A floored pivot also zeroes the off-diagonal entries that would otherwise
// divide by it: dividing by a floored (≈1e-150) diagonal amplifies whatever
// coupling term fed it by ~1e150, and a second floored pivot two columns
// later squares that amplification, overflowing to ±Inf. Since the column
// is already numerically degenerate, decoupling it from its neighbors keeps
// the rest of the factorization finite without changing behavior on any
// genuinely positive-definite system (floorSqrt is never produced there).
func (s *System) Factorize() bool {
	ok := true
	d, e, f := s.D, s.E, s.F
	k := s.K
	for j := 0; j < k; j++ {
		var ajj float64
		switch j {
		case 0:
			ajj = d[0]
		case 1:
			if d[0] == floorSqrt {
				e[1] = 0
			} else {
				e[1] = e[1] / d[0]
			}
			ajj = d[1] - e[1]*e[1]
		default:
			if d[j-2] == floorSqrt {
				f[j] = 0
			} else {
				f[j] = f[j] / d[j-2]
			}
			if d[j-1] == floorSqrt {
				e[j] = 0
			} else {
				e[j] = (e[j] - f[j]*e[j-1]) / d[j-1]
			}
			ajj = d[j] - e[j]*e[j] - f[j]*f[j]
		}
		if ajj <= 0 {
			ok = false
			ajj = floor
		}
		d[j] = math.Sqrt(ajj)
	}
	return ok
}

// Solve overwrites B with the solution of A x = b (b the original content of
// B) using the Cholesky factor left in D, E, F by Factorize.
func (s *System) Solve() {
	d, e, f, b := s.D, s.E, s.F, s.B
	k := s.K

	// Forward substitution: L y = b.
	for j := 0; j < k; j++ {
		v := b[j]
		if j >= 1 {
			v -= e[j] * b[j-1]
		}
		if j >= 2 {
			v -= f[j] * b[j-2]
		}
		b[j] = v / d[j]
	}

	// Back substitution: Lᵀ x = y.
	for j := k - 1; j >= 0; j-- {
		v := b[j]
		if j+1 < k {
			v -= e[j+1] * b[j+1]
		}
		if j+2 < k {
			v -= f[j+2] * b[j+2]
		}
		b[j] = v / d[j]
	}
}
