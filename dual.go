// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

// isPinned reports whether zi is exactly ±1 (bit-for-bit), which is how the
// active/inactive partition is encoded in z itself: reassignment writes
// exactly ±1 to pin a coordinate, so membership must be tested by exact
// equality, not by a tolerance band.
func isPinned(zi float64) bool {
	return zi == 1 || zi == -1
}

// updateDual is C4: it assembles the banded active-set subproblem from the
// current partition of s.z, solves it, and writes the result back into
// s.z for every active coordinate. Inactive coordinates (pinned at ±1) are
// left untouched.
//
// It returns the number of active coordinates and whether the banded solve
// reported a positive-definite factorization. A false return is not fatal:
// per spec policy, the driver continues with whatever z_A the degraded
// solve produced, trusting the next round of violator reassignment to
// repair the partition.
func (s *Solver) updateDual() (nActive int, pdOK bool) {
	n := s.n
	m := n - 2

	for i := 0; i < m; i++ {
		if isPinned(s.z[i]) {
			s.zIScratch[i] = s.z[i]
		} else {
			s.zIScratch[i] = 0
		}
	}
	applyDT(n, s.zIScratch, s.divZI)

	s.sys.Reset(m)

	prev, prev2 := -1, -1
	k := 0
	for i := 0; i < m; i++ {
		if isPinned(s.z[i]) {
			continue
		}
		s.activeIdx[k] = i

		diag := 6.0
		var sup1, sup2 float64
		if prev >= 0 {
			switch i - prev {
			case 1:
				sup1 = -4.0
			case 2:
				sup1 = 1.0
			}
		}
		if prev2 >= 0 && i-prev2 == 2 {
			sup2 = 1.0
		}

		rhs := (2*s.y[i+1]-s.y[i]-s.y[i+2])/s.lambda -
			2*s.divZI[i+1] + s.divZI[i] + s.divZI[i+2]

		s.sys.D[k] = diag
		s.sys.E[k] = sup1
		s.sys.F[k] = sup2
		s.sys.B[k] = rhs

		prev2 = prev
		prev = i
		k++
	}

	if k == 0 {
		return 0, true
	}

	s.sys.K = k
	s.sys.D = s.sys.D[:k]
	s.sys.E = s.sys.E[:k]
	s.sys.F = s.sys.F[:k]
	s.sys.B = s.sys.B[:k]

	pdOK = s.sys.Factorize()
	s.sys.Solve()

	for j := 0; j < k; j++ {
		s.z[s.activeIdx[j]] = s.sys.B[j]
	}
	return k, pdOK
}
