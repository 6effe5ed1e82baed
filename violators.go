// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

import "math"

// locateViolators is C5: it scans the current partition against Dx and
// scores every KKT violator. It populates s.vioIndex and s.vioFitness for
// indices [0, n_vio) and resets s.vioSort to the identity permutation over
// the same range, returning n_vio.
func (s *Solver) locateViolators() int {
	n := s.n
	m := n - 2
	nVio := 0
	for i := 0; i < m; i++ {
		zi := s.z[i]
		dxi := s.diffX[i]

		var violator bool
		var fitness float64
		switch {
		case zi == 1:
			violator = dxi < 0
			fitness = math.Max(s.lambda*math.Abs(dxi), 1)
		case zi == -1:
			violator = dxi > 0
			fitness = math.Max(s.lambda*math.Abs(dxi), 1)
		default:
			violator = math.Abs(zi) > 1
			fitness = math.Max(s.lambda*math.Abs(dxi), math.Abs(zi))
		}

		if violator {
			s.vioIndex[nVio] = i
			s.vioFitness[nVio] = fitness
			s.vioSort[nVio] = nVio
			nVio++
		}
	}
	return nVio
}
