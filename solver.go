// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package l1tf implements a primal active-set / dual-ascent solver for
// one-dimensional second-order ℓ₁ trend filtering:
//
//	x* = argmin_x  ½ ‖y - x‖² + λ ‖D x‖₁
//
// where D is the second-order difference operator. See Solver and
// DefaultParams.
package l1tf

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/gonum-community/l1tf/internal/band"
)

// Solver holds the problem size, tuning parameters and scratch buffers for
// one trend-filtering instance. All buffers are allocated once by
// NewSolver and reused by every call to Run. Once constructed, the only
// allocation a Solver makes is the small sort.Interface value that
// reassignViolators passes to sort.Stable on each iteration with violators.
// A Solver is not safe for concurrent use by multiple goroutines, but
// distinct Solvers share no state (see spec.md §5 and SPEC_FULL.md's note
// on gonum.org/v1/gonum/optimize.Method having the same property).
type Solver struct {
	n      int
	lambda float64
	params Params
	logger zerolog.Logger

	y []float64 // borrowed for the duration of Run; never mutated

	x []float64 // primal iterate, length n
	z []float64 // dual iterate, length n-2

	diffX     []float64 // scratch: D x, length n-2
	divZI     []float64 // scratch: Dᵀ z_I, length n
	zIScratch []float64 // scratch: z with active coordinates zeroed, length n-2

	vioIndex   []int     // scratch, length n-2
	vioFitness []float64 // scratch, length n-2
	vioSort    []int     // scratch, length n-2
	activeIdx  []int     // scratch: k-th active row -> original index, length n-2

	sys   *band.System
	queue *safeguardQueue
}

// Option configures a Solver at construction.
type Option func(*Solver)

// WithParams overrides the full tuning parameter set.
func WithParams(p Params) Option {
	return func(s *Solver) { s.params = p }
}

// WithProportion overrides Params.ProportionInit.
func WithProportion(p float64) Option {
	return func(s *Solver) { s.params.ProportionInit = p }
}

// WithQueueLen overrides Params.QueueLen.
func WithQueueLen(m int) Option {
	return func(s *Solver) { s.params.QueueLen = m }
}

// WithShrinkExpand overrides Params.ShrinkFactor and Params.ExpandFactor.
func WithShrinkExpand(shrink, expand float64) Option {
	return func(s *Solver) {
		s.params.ShrinkFactor = shrink
		s.params.ExpandFactor = expand
	}
}

// WithMaxIterations overrides Params.MaxIterations.
func WithMaxIterations(maxiter int) Option {
	return func(s *Solver) { s.params.MaxIterations = maxiter }
}

// WithLogger attaches a structured diagnostic sink. Without this option a
// Solver logs nothing (zerolog.Nop), matching spec.md §6's "no other side
// effects" default.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// NewSolver builds a Solver for sequences of length n with regularization
// weight lambda, applying opts over DefaultParams.
//
// NewSolver panics if n < 4 or lambda <= 0: these are precondition
// violations (spec.md §7 kind 3), the caller's responsibility, not checked
// in the hot path of Run itself.
func NewSolver(n int, lambda float64, opts ...Option) *Solver {
	if n < 4 {
		panic("l1tf: n must be at least 4")
	}
	if lambda <= 0 {
		panic("l1tf: lambda must be positive")
	}

	m := n - 2
	s := &Solver{
		n:      n,
		lambda: lambda,
		params: DefaultParams(),
		logger: defaultLogger(),

		x: make([]float64, n),
		z: make([]float64, m),

		diffX:     make([]float64, m),
		divZI:     make([]float64, n),
		zIScratch: make([]float64, m),

		vioIndex:   make([]int, m),
		vioFitness: make([]float64, m),
		vioSort:    make([]int, m),
		activeIdx:  make([]int, m),

		sys: band.NewSystem(m),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.params.ProportionInit <= 0 || s.params.ProportionInit > 1 {
		panic("l1tf: ProportionInit must be in (0, 1]")
	}
	if s.params.QueueLen < 1 {
		panic("l1tf: QueueLen must be >= 1")
	}
	if s.params.ShrinkFactor <= 0 || s.params.ShrinkFactor >= 1 {
		panic("l1tf: ShrinkFactor must be in (0, 1)")
	}
	if s.params.ExpandFactor <= 1 {
		panic("l1tf: ExpandFactor must be > 1")
	}
	if s.params.MaxIterations < 1 {
		panic("l1tf: MaxIterations must be >= 1")
	}
	s.queue = newSafeguardQueue(s.params.QueueLen, n)
	return s
}

// X returns the primal iterate from the most recent Run call.
func (s *Solver) X() []float64 { return s.x }

// Z returns the dual iterate from the most recent Run call.
func (s *Solver) Z() []float64 { return s.z }

// Run executes the active-set driver (C7) on y, which must have length n.
// It returns the terminal Status and the number of iterations performed.
// X and Z hold the best-effort primal/dual on every return path, converged
// or not (spec.md §2 invariant P2).
//
// Run resets the dual iterate to all-zero (spec.md §3's initial state)
// and the safeguard queue to its sentinel before each call, so a Solver
// may be reused across independent y inputs of the same n.
func (s *Solver) Run(y []float64) (status Status, iterations int) {
	s.y = y
	for i := range s.z {
		s.z[i] = 0
	}
	s.queue.reset(s.n)
	p := s.params.ProportionInit

	for iter := 1; iter <= s.params.MaxIterations; iter++ {
		nActive, pdOK := s.updateDual()
		if !pdOK {
			s.logBandFailure(iter)
		}

		updatePrimal(s.n, s.y, s.z, s.lambda, s.x)
		applyD(s.n, s.x, s.diffX)

		nVio := s.locateViolators()
		s.logIteration(iter, nVio, nActive, p)

		if nVio == 0 {
			s.logTerminal(StatusConverged)
			return StatusConverged, iter
		}

		p = s.adjustProportion(nVio, p)
		s.reassignViolators(nVio, p)
	}

	// The last iteration's reassignment moved z after x was computed;
	// recompute x (and Dx) so X and Z are primal-dual consistent.
	updatePrimal(s.n, s.y, s.z, s.lambda, s.x)
	applyD(s.n, s.x, s.diffX)

	s.logTerminal(StatusIterationLimit)
	return StatusIterationLimit, s.params.MaxIterations
}

// adjustProportion is the safeguard-queue schedule of C7/spec.md §4.6.
func (s *Solver) adjustProportion(nVio int, p float64) float64 {
	q := s.queue
	switch {
	case nVio < q.minQ:
		p = math.Min(s.params.ExpandFactor*p, 1)
		q.push(nVio)
	case nVio >= q.maxQ:
		p = math.Max(s.params.ShrinkFactor*p, 1/float64(nVio))
	default:
		q.push(nVio)
	}
	return p
}
