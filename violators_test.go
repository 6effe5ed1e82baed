// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

import "testing"

func newTestSolver(n int, lambda float64) *Solver {
	return NewSolver(n, lambda)
}

func TestLocateViolatorsPinnedUp(t *testing.T) {
	s := newTestSolver(6, 1)
	// z[1] pinned up but Dx[1] < 0: violates upper-bound KKT condition.
	s.z[0], s.z[1], s.z[2], s.z[3] = 0, 1, 0, 0
	s.diffX[0], s.diffX[1], s.diffX[2], s.diffX[3] = 0, -2, 0, 0

	n := s.locateViolators()
	if n != 1 {
		t.Fatalf("locateViolators found %d violators, want 1", n)
	}
	if s.vioIndex[0] != 1 {
		t.Errorf("violator index = %d, want 1", s.vioIndex[0])
	}
	if want := s.lambda * 2; s.vioFitness[0] != want {
		t.Errorf("fitness = %v, want %v", s.vioFitness[0], want)
	}
}

func TestLocateViolatorsActiveOutOfBounds(t *testing.T) {
	s := newTestSolver(6, 2)
	s.z[0], s.z[1], s.z[2], s.z[3] = 1.2, 0, -1, -0.5
	s.diffX[0], s.diffX[1], s.diffX[2], s.diffX[3] = 0, 0, 0, 0

	n := s.locateViolators()
	if n != 1 {
		t.Fatalf("locateViolators found %d violators, want 1", n)
	}
	if s.vioIndex[0] != 0 {
		t.Errorf("violator index = %d, want 0", s.vioIndex[0])
	}
	if want := 1.2; s.vioFitness[0] != want { // fitness floor: max(lambda*|Dx|, |z|) = max(0, 1.2)
		t.Errorf("fitness = %v, want %v", s.vioFitness[0], want)
	}
}

func TestLocateViolatorsFitnessFloor(t *testing.T) {
	s := newTestSolver(6, 0.01)
	s.z[0] = 1
	s.diffX[0] = -0.001 // lambda*|Dx| = 1e-5, below the floor of 1
	for i := 1; i < len(s.z); i++ {
		s.z[i], s.diffX[i] = 0, 0
	}

	n := s.locateViolators()
	if n != 1 {
		t.Fatalf("locateViolators found %d violators, want 1", n)
	}
	if s.vioFitness[0] != 1 {
		t.Errorf("fitness = %v, want the floor of 1", s.vioFitness[0])
	}
}

func TestLocateViolatorsNoneWhenConsistent(t *testing.T) {
	s := newTestSolver(8, 1)
	s.z[0], s.z[1], s.z[2], s.z[3], s.z[4], s.z[5] = 1, -1, 0.3, -0.7, 0, 1
	s.diffX[0] = 2   // z=1, Dx>=0: consistent
	s.diffX[1] = -2  // z=-1, Dx<=0: consistent
	s.diffX[2] = 0   // active, |z|<1: never a violator
	s.diffX[3] = 0
	s.diffX[4] = 0
	s.diffX[5] = 3

	n := s.locateViolators()
	if n != 0 {
		t.Errorf("locateViolators found %d violators, want 0", n)
	}
}
