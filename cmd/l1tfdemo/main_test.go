// Copyright ©2026 The l1tf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonum-community/l1tf"
)

func TestGenerateSignalIsReproducible(t *testing.T) {
	a := generateSignal(50, 0.1, 7)
	b := generateSignal(50, 0.1, 7)
	require.Equal(t, a, b, "same seed must reproduce the same fixture")

	c := generateSignal(50, 0.1, 8)
	assert.NotEqual(t, a, c, "different seeds should (almost surely) differ")
}

func TestReportEndToEnd(t *testing.T) {
	y := generateSignal(80, 0.1, 1)
	s := l1tf.NewSolver(80, 1.0, l1tf.WithMaxIterations(200))
	status, _ := s.Run(y)
	require.Equal(t, l1tf.StatusConverged, status)

	objective, dxInfNorm := report(y, s.X(), 1.0)
	assert.GreaterOrEqual(t, objective, 0.0)
	assert.GreaterOrEqual(t, dxInfNorm, 0.0)
}
