// SPDX-License-Identifier: MIT
// Package trim_test exercises the equilibrium solver via the public API.
// Focus: convergence on closed-form targets, the fixed-point property, the
// structured terminal failures, and determinism.
package trim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hydrostat/hull"
	"github.com/katalvlaran/hydrostat/hydro"
	"github.com/katalvlaran/hydrostat/trim"
)

// SolverSuite carries the rectangular barge every scenario runs against:
// L=100 m, B=20 m, measured depth 10 m, so ∇(T, θ) = 2000·T exactly while
// the waterline stays inside the grid.
type SolverSuite struct {
	suite.Suite

	g  *hull.Geometry
	pp hull.Particulars
}

func (s *SolverSuite) SetupSuite() {
	stations := make([]float64, 11)
	for i := range stations {
		stations[i] = -50 + 10*float64(i)
	}
	waterlines := make([]float64, 11)
	for j := range waterlines {
		waterlines[j] = float64(j)
	}
	offsets := make([][]float64, len(stations))
	for i := range offsets {
		row := make([]float64, len(waterlines))
		for j := range row {
			row[j] = 10
		}
		offsets[i] = row
	}

	g, err := hull.New(stations, waterlines, offsets)
	require.NoError(s.T(), err)
	s.g = g
	s.pp = hull.Particulars{LengthPP: 100, Breadth: 20, DesignDraft: 5, BlockCoefficient: 1}
}

// TestSeedIsExact: with Cb=1 the box approximation seeds the exact draft,
// so an even-keel target converges without a single Newton step.
func (s *SolverSuite) TestSeedIsExact() {
	sol, err := trim.Solve(s.g, s.pp, trim.Target{Displacement: 6000, LCG: 0}, trim.DefaultOptions())
	require.NoError(s.T(), err)

	require.True(s.T(), sol.Converged)
	require.Zero(s.T(), sol.Iterations)
	require.InDelta(s.T(), 3, sol.Draft, 1e-9)
	require.Zero(s.T(), sol.Trim)
	require.Zero(s.T(), sol.Heel)
}

// TestFixedPoint: hydrostatics computed at a known attitude, fed back as
// the target, must reproduce that attitude.
func (s *SolverSuite) TestFixedPoint() {
	const (
		wantDraft = 4.2
		wantTrim  = 0.02
	)
	ho := hydro.DefaultOptions()
	ho.Trim = wantTrim
	res, err := hydro.Compute(s.g, s.pp, wantDraft, ho)
	require.NoError(s.T(), err)

	sol, err := trim.Solve(s.g, s.pp, trim.Target{
		Displacement: res.Volume,
		LCG:          res.LCB,
	}, trim.DefaultOptions())
	require.NoError(s.T(), err)

	require.True(s.T(), sol.Converged)
	require.InDelta(s.T(), wantDraft, sol.Draft, 1e-4)
	require.InDelta(s.T(), wantTrim, sol.Trim, 1e-5)
	require.LessOrEqual(s.T(), sol.Iterations, 50)
}

// TestTrimmedTarget: an off-midships LCG forces a non-zero trim; check
// against the wall-sided relation LCB = BMl·tan(θ).
func (s *SolverSuite) TestTrimmedTarget() {
	sol, err := trim.Solve(s.g, s.pp, trim.Target{Displacement: 9000, LCG: 5}, trim.DefaultOptions())
	require.NoError(s.T(), err)

	require.True(s.T(), sol.Converged)
	require.InDelta(s.T(), 4.5, sol.Draft, 1e-4)

	// BMl at T=4.5: (B·L³/12)/∇ = (20e6/12)/9000; LCG = BMl·tan(θ).
	wantTrim := math.Atan(5 * 9000 / (20e6 / 12))
	require.InDelta(s.T(), wantTrim, sol.Trim, 1e-5)
}

// TestGuessHonored: an explicit exact guess converges immediately.
func (s *SolverSuite) TestGuessHonored() {
	opts := trim.DefaultOptions()
	opts.Guess = &trim.Guess{Draft: 4, Trim: 0}

	sol, err := trim.Solve(s.g, s.pp, trim.Target{Displacement: 8000, LCG: 0}, opts)
	require.NoError(s.T(), err)

	require.True(s.T(), sol.Converged)
	require.Zero(s.T(), sol.Iterations)
	require.Equal(s.T(), 4.0, sol.Draft)
}

// TestBadTarget rejects non-physical loadcases before iterating.
func (s *SolverSuite) TestBadTarget() {
	for _, tgt := range []trim.Target{
		{Displacement: 0, LCG: 0},
		{Displacement: -100, LCG: 0},
		{Displacement: math.Inf(1), LCG: 0},
		{Displacement: 5000, LCG: math.NaN()},
	} {
		_, err := trim.Solve(s.g, s.pp, tgt, trim.DefaultOptions())
		require.ErrorIs(s.T(), err, trim.ErrBadTarget)
	}
}

// TestNonConvergence: a one-iteration cap on a target needing several steps
// yields the structured terminal failure with the last state attached.
func (s *SolverSuite) TestNonConvergence() {
	opts := trim.DefaultOptions()
	opts.MaxIterations = 1

	_, err := trim.Solve(s.g, s.pp, trim.Target{Displacement: 9000, LCG: 5}, opts)
	require.ErrorIs(s.T(), err, trim.ErrNonConvergence)

	var se *trim.SolveError
	require.True(s.T(), errors.As(err, &se))
	require.Equal(s.T(), 1, se.Iterations)
	require.Greater(s.T(), se.Draft, 0.0)
}

// TestSingularJacobian: perturbations below machine epsilon collapse the
// finite-difference Jacobian to zero.
func (s *SolverSuite) TestSingularJacobian() {
	opts := trim.DefaultOptions()
	opts.RelStep = 1e-300 // T ± h is bitwise T: all differences vanish

	_, err := trim.Solve(s.g, s.pp, trim.Target{Displacement: 9000, LCG: 5}, opts)
	require.ErrorIs(s.T(), err, trim.ErrSingularJacobian)

	var se *trim.SolveError
	require.True(s.T(), errors.As(err, &se))
}

// TestDeterministic: the solver walks an identical path for identical inputs.
func (s *SolverSuite) TestDeterministic() {
	tgt := trim.Target{Displacement: 7400, LCG: -2.5}

	a, err := trim.Solve(s.g, s.pp, tgt, trim.DefaultOptions())
	require.NoError(s.T(), err)
	b, err := trim.Solve(s.g, s.pp, tgt, trim.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), a, b)
}

// TestConcurrentSolves: distinct loadcases share no state.
func (s *SolverSuite) TestConcurrentSolves() {
	targets := []trim.Target{
		{Displacement: 4000, LCG: 0},
		{Displacement: 8000, LCG: 1},
		{Displacement: 12000, LCG: -1},
		{Displacement: 16000, LCG: 2},
	}
	type outcome struct {
		sol trim.Solution
		err error
	}
	done := make(chan outcome, len(targets))
	for _, tgt := range targets {
		tgt := tgt
		go func() {
			sol, err := trim.Solve(s.g, s.pp, tgt, trim.DefaultOptions())
			done <- outcome{sol, err}
		}()
	}
	for range targets {
		out := <-done
		require.NoError(s.T(), out.err)
		require.True(s.T(), out.sol.Converged)
	}
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
