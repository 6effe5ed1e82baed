// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package l1tf

import "github.com/rs/zerolog"

// logIteration emits the per-iteration diagnostic record of spec.md §6:
// (iter, n_vio, n_active, p). It is a no-op unless the Solver's logger has
// an enabled level, preserving the "no other side effects" guarantee when
// the caller hasn't opted into diagnostics via WithLogger.
func (s *Solver) logIteration(iter, nVio, nActive int, p float64) {
	s.logger.Debug().
		Int("iter", iter).
		Int("n_vio", nVio).
		Int("n_active", nActive).
		Float64("p", p).
		Msg("active-set iteration")
}

func (s *Solver) logBandFailure(iter int) {
	s.logger.Warn().
		Int("iter", iter).
		Msg("banded solve lost positive-definiteness; continuing")
}

func (s *Solver) logTerminal(status Status) {
	switch status {
	case StatusConverged:
		s.logger.Info().Msg("Solved")
	case StatusIterationLimit:
		s.logger.Info().Msg("MAXITER Exceeded")
	}
}

// defaultLogger is the zero-config diagnostic sink: zerolog.Nop discards
// every event at negligible cost, so a Solver built without WithLogger pays
// nothing for the calls above.
func defaultLogger() zerolog.Logger {
	return zerolog.Nop()
}
