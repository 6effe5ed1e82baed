// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

//go:generate stringer -type=Status

// Status reports the outcome of a Solver.Run call.
type Status int

const (
	// StatusNotTerminated is the status of a Solver that has not yet run,
	// or is mid-iteration. Run never returns it.
	StatusNotTerminated Status = iota
	// StatusConverged indicates locateViolators reported zero violators:
	// the returned X and Z satisfy the optimality conditions of spec P1.
	StatusConverged
	// StatusIterationLimit indicates the iteration cap (Params.MaxIterations)
	// was reached without convergence. X and Z hold the best-effort values
	// from the last completed iteration.
	StatusIterationLimit
)

// Params holds the tuning knobs of the active-set driver (C7). Use
// DefaultParams as a starting point rather than a zero-value Params, since
// NewSolver panics on a zero ProportionInit, QueueLen, ShrinkFactor,
// ExpandFactor or MaxIterations.
type Params struct {
	// ProportionInit is the initial fraction p of violators reassigned per
	// iteration, in (0, 1].
	ProportionInit float64
	// QueueLen is the length m of the safeguard queue of recent violator
	// counts.
	QueueLen int
	// ShrinkFactor damps p when the violator count stagnates or worsens;
	// must be in (0, 1).
	ShrinkFactor float64
	// ExpandFactor grows p when the violator count reaches a new minimum;
	// must be > 1.
	ExpandFactor float64
	// MaxIterations bounds the outer loop.
	MaxIterations int
}

// DefaultParams returns the tuning used by the reference scenarios of
// spec.md §8: a moderate initial proportion, a short safeguard window, and
// a generous iteration cap. Mirrors the shape of
// gonum.org/v1/gonum/optimize.DefaultSettingsGlobal, which returns a
// populated Settings rather than leaving magic numbers at call sites.
func DefaultParams() Params {
	return Params{
		ProportionInit: 0.5,
		QueueLen:       5,
		ShrinkFactor:   0.8,
		ExpandFactor:   1.1,
		MaxIterations:  200,
	}
}
