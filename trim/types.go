// SPDX-License-Identifier: MIT
// Package trim: target, options, solution and sentinel errors.
package trim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydrostat/hydro"
)

var (
	// ErrBadTarget indicates a non-positive or non-finite target
	// displacement, or a non-finite target LCG.
	ErrBadTarget = errors.New("trim: target displacement must be positive and finite")
	// ErrSingularJacobian indicates the finite-difference Jacobian is
	// numerically singular at the current iterate — the two residual
	// components respond (near-)proportionally to draft and trim.
	ErrSingularJacobian = errors.New("trim: jacobian is numerically singular")
	// ErrNonConvergence indicates the iteration cap was reached before the
	// scaled residual fell under the tolerance.
	ErrNonConvergence = errors.New("trim: iteration cap reached before convergence")
)

// Target is the externally supplied loadcase the solver equilibrates
// against. Displacement is volumetric (m³); LCG is measured from midships,
// positive forward — the same convention as hydro.Result.LCB.
type Target struct {
	Displacement float64
	LCG          float64
}

// Guess seeds the iteration with an explicit starting point.
type Guess struct {
	Draft float64 // m above baseline
	Trim  float64 // rad, positive bow-down
}

// Options tunes the solver. Zero values select the documented defaults.
type Options struct {
	// MaxIterations caps Newton iterations; default 50.
	MaxIterations int
	// Tolerance is the scaled-residual convergence threshold: the solver
	// stops when max(|R₀|/Displacement, |R₁|/L) < Tolerance. Default 1e-6.
	Tolerance float64
	// RelStep sizes the finite-difference perturbations as a fraction of
	// the measured draft span (for T) and in radians (for θ). Default 1e-4.
	RelStep float64
	// MaxHalvings bounds the step-damping retries per iteration; default 8.
	MaxHalvings int
	// Guess overrides the box-approximation initial point when non-nil.
	Guess *Guess
	// Hydro is applied to every evaluation; its Trim field is owned by the
	// solver and overwritten per call.
	Hydro hydro.Options
	// Logger traces iterations; defaults to a no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns the documented solver defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 50,
		Tolerance:     1e-6,
		RelStep:       1e-4,
		MaxHalvings:   8,
		Hydro:         hydro.DefaultOptions(),
		Logger:        zerolog.Nop(),
	}
}

// Solution is the solved equilibrium.
type Solution struct {
	Draft float64 // mean draft, m
	Trim  float64 // rad, positive bow-down
	Heel  float64 // rad; echoes Options.Hydro.Heel, the solver never varies it

	Residual   [2]float64 // final [∇−target, LCB−targetLCG]
	Iterations int
	Converged  bool
}

// SolveError is the structured terminal failure of a Solve call: it wraps
// the causing sentinel and carries the last iterate so the caller can retry
// with a different initial guess or report the state.
type SolveError struct {
	Draft      float64
	Trim       float64
	Residual   [2]float64
	Iterations int
	Err        error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v (draft=%.6g m, trim=%.6g rad, residual=[%.6g, %.6g], iterations=%d)",
		e.Err, e.Draft, e.Trim, e.Residual[0], e.Residual[1], e.Iterations)
}

func (e *SolveError) Unwrap() error { return e.Err }
