// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

import "sort"

// violatorSorter orders a permutation of violator slots by descending
// fitness. It closes over the fitness/index slices of a single Solver
// rather than reading them from a package-level global, which is what
// makes the solver reentrant (spec.md §9 flags a process-wide global
// comparator as the hazard to avoid); grounded on gonum's
// optimize.bestSorter, the same closure-over-parallel-slices pattern used
// there to sort candidate points by objective value.
type violatorSorter struct {
	perm    []int
	fitness []float64
}

func (v violatorSorter) Len() int { return len(v.perm) }

// Less orders by descending fitness so that after a stable sort,
// perm[0] names the highest-fitness violator.
func (v violatorSorter) Less(i, j int) bool {
	return v.fitness[v.perm[i]] > v.fitness[v.perm[j]]
}

func (v violatorSorter) Swap(i, j int) {
	v.perm[i], v.perm[j] = v.perm[j], v.perm[i]
}

// reassignViolators is C6: it stable-sorts the n_vio violators located by
// locateViolators in descending fitness order and moves the top
// n_reassign = max(floor(p*n_vio+0.5), 1) across the active/inactive
// partition boundary.
func (s *Solver) reassignViolators(nVio int, p float64) int {
	if nVio == 0 {
		return 0
	}

	sort.Stable(violatorSorter{
		perm:    s.vioSort[:nVio],
		fitness: s.vioFitness,
	})

	nReassign := int(p*float64(nVio) + 0.5)
	if nReassign < 1 {
		nReassign = 1
	}
	if nReassign > nVio {
		nReassign = nVio
	}

	for r := 0; r < nReassign; r++ {
		idx := s.vioIndex[s.vioSort[r]]
		zi := s.z[idx]
		switch {
		case zi == 1 && s.diffX[idx] < 0:
			s.z[idx] = 0
		case zi == -1 && s.diffX[idx] > 0:
			s.z[idx] = 0
		case zi > 1:
			s.z[idx] = 1
		case zi < -1:
			s.z[idx] = -1
		}
	}
	return nReassign
}
