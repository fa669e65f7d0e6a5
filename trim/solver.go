// SPDX-License-Identifier: MIT
// Package trim - damped Newton–Raphson equilibrium solver.
//
// This file provides the canonical entry point:
//
//   - Solve: validate the target, seed the iterate, then iterate
//     Jacobian estimation → Newton step → deterministic damping until the
//     scaled residual converges or a terminal failure surfaces.
//
// Design principles:
//   - Deterministic: fixed perturbation sizes, fixed halving schedule, no
//     randomness — identical inputs always walk the identical path.
//   - Strict sentinels: terminal failures wrap ErrSingularJacobian or
//     ErrNonConvergence in *SolveError together with the last state.
//   - Sequential by contract: each iteration needs the previous residual;
//     concurrency belongs to the caller (distinct Solve calls are
//     independent).
package trim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydrostat/hull"
	"github.com/katalvlaran/hydrostat/hydro"
)

// detRelThreshold scales the singularity test: |det J| below this fraction
// of the Jacobian's term magnitudes counts as singular.
const detRelThreshold = 1e-12

// guessMargin keeps the seeded draft strictly inside the measured waterline
// span, as a fraction of the span.
const guessMargin = 1e-3

// iterate is one evaluated solver state.
type iterate struct {
	draft, trim float64
	r           [2]float64
	norm        float64 // scaled residual norm
}

// Solve finds the (mean draft, trim angle) equilibrium for tgt on hull h.
//
// Errors: ErrBadTarget, hull.ErrBadParticulars, hydro.ErrNilHull; terminal
// *SolveError wrapping ErrSingularJacobian, ErrNonConvergence, or the hydro
// failure that blocked even the most damped step.
//
// Complexity: O(MaxIterations · S·W) hydro work — five evaluations per
// iteration (four for the central-difference Jacobian, one per damping
// probe) over an S-station, W-waterline grid.
func Solve(h hydro.HullData, pp hull.Particulars, tgt Target, opts Options) (Solution, error) {
	// Stage 1 - validation and defaults.
	if h == nil {
		return Solution{}, hydro.ErrNilHull
	}
	if !(tgt.Displacement > 0) || math.IsInf(tgt.Displacement, 0) ||
		math.IsNaN(tgt.LCG) || math.IsInf(tgt.LCG, 0) {
		return Solution{}, ErrBadTarget
	}
	if err := pp.Validate(); err != nil {
		return Solution{}, err
	}
	opts = withDefaults(opts)

	var (
		lo   = h.Waterline(0)
		hi   = h.Waterline(h.NumWaterlines() - 1)
		span = hi - lo
		log  = opts.Logger
	)

	// eval computes the residual state at one attitude. The solver owns the
	// trim field of the hydro options; everything else passes through.
	eval := func(draft, trimAngle float64) (iterate, error) {
		ho := opts.Hydro
		ho.Trim = trimAngle
		res, err := hydro.Compute(h, pp, draft, ho)
		if err != nil {
			return iterate{}, err
		}
		r0 := res.Volume - tgt.Displacement
		r1 := res.LCB - tgt.LCG

		return iterate{
			draft: draft,
			trim:  trimAngle,
			r:     [2]float64{r0, r1},
			norm:  math.Max(math.Abs(r0)/tgt.Displacement, math.Abs(r1)/pp.LengthPP),
		}, nil
	}

	// Stage 2 - initial iterate: explicit guess, or the box approximation
	// T₀ = ∇target / (L·B·Cb) clamped into the measured span, θ₀ = 0.
	t0, th0 := seedGuess(tgt, pp, lo, hi, opts.Guess)
	cur, err := eval(t0, th0)
	if err != nil {
		return Solution{}, &SolveError{
			Draft: t0, Trim: th0,
			Err: fmt.Errorf("initial evaluation: %w", err),
		}
	}
	log.Debug().Float64("draft", t0).Float64("trim", th0).
		Float64("residualNorm", cur.norm).Msg("trim solve seeded")

	// Stage 3 - Newton iteration with deterministic damping.
	hT := opts.RelStep * span // draft perturbation, m
	hTh := opts.RelStep       // trim perturbation, rad
	for it := 0; it <= opts.MaxIterations; it++ {
		if cur.norm < opts.Tolerance {
			return Solution{
				Draft:      cur.draft,
				Trim:       cur.trim,
				Heel:       opts.Hydro.Heel,
				Residual:   cur.r,
				Iterations: it,
				Converged:  true,
			}, nil
		}
		if it == opts.MaxIterations {
			break
		}

		// Central-difference Jacobian: four extra evaluations. A perturbed
		// evaluation that leaves the grid halves its own step first.
		j, jerr := jacobian(eval, cur, hT, hTh, opts.MaxHalvings)
		if jerr != nil {
			return Solution{}, solveErr(cur, it, fmt.Errorf("jacobian estimation: %w", jerr))
		}

		det := j[0][0]*j[1][1] - j[0][1]*j[1][0]
		scale := math.Abs(j[0][0]*j[1][1]) + math.Abs(j[0][1]*j[1][0])
		if math.Abs(det) <= detRelThreshold*scale || det == 0 {
			return Solution{}, solveErr(cur, it, ErrSingularJacobian)
		}

		// Newton step: d = −J⁻¹ · R.
		dT := -(j[1][1]*cur.r[0] - j[0][1]*cur.r[1]) / det
		dTh := -(j[0][0]*cur.r[1] - j[1][0]*cur.r[0]) / det

		next, derr := dampedStep(eval, cur, dT, dTh, opts.MaxHalvings)
		if derr != nil {
			return Solution{}, solveErr(cur, it, derr)
		}
		cur = next

		log.Debug().Int("iteration", it+1).
			Float64("draft", cur.draft).Float64("trim", cur.trim).
			Float64("residualNorm", cur.norm).Msg("trim solve step")
	}

	return Solution{}, solveErr(cur, opts.MaxIterations, ErrNonConvergence)
}

// jacobian builds the 2×2 residual Jacobian by central differences. When a
// perturbed attitude cannot be evaluated (grid range), the perturbation for
// that column is halved up to maxHalvings times before giving up.
func jacobian(
	eval func(float64, float64) (iterate, error),
	cur iterate, hT, hTh float64, maxHalvings int,
) ([2][2]float64, error) {
	var j [2][2]float64

	dPlus, dMinus, h, err := centralPair(eval, cur, hT, maxHalvings, true)
	if err != nil {
		return j, err
	}
	j[0][0] = (dPlus.r[0] - dMinus.r[0]) / (2 * h)
	j[1][0] = (dPlus.r[1] - dMinus.r[1]) / (2 * h)

	tPlus, tMinus, h, err := centralPair(eval, cur, hTh, maxHalvings, false)
	if err != nil {
		return j, err
	}
	j[0][1] = (tPlus.r[0] - tMinus.r[0]) / (2 * h)
	j[1][1] = (tPlus.r[1] - tMinus.r[1]) / (2 * h)

	return j, nil
}

// centralPair evaluates cur perturbed by ±step along the draft axis
// (overDraft) or the trim axis, halving step on evaluation failure.
func centralPair(
	eval func(float64, float64) (iterate, error),
	cur iterate, step float64, maxHalvings int, overDraft bool,
) (plus, minus iterate, used float64, err error) {
	for k := 0; k <= maxHalvings; k++ {
		if overDraft {
			if plus, err = eval(cur.draft+step, cur.trim); err == nil {
				minus, err = eval(cur.draft-step, cur.trim)
			}
		} else {
			if plus, err = eval(cur.draft, cur.trim+step); err == nil {
				minus, err = eval(cur.draft, cur.trim-step)
			}
		}
		if err == nil {
			return plus, minus, step, nil
		}
		step /= 2
	}

	return iterate{}, iterate{}, 0, err
}

// dampedStep applies the Newton step, halving it up to maxHalvings times
// while it cannot be evaluated or fails to reduce the residual norm; the
// final damped step is accepted if it evaluates at all, guaranteeing
// bounded deterministic progress.
func dampedStep(
	eval func(float64, float64) (iterate, error),
	cur iterate, dT, dTh float64, maxHalvings int,
) (iterate, error) {
	var lastErr error
	step := 1.0
	for k := 0; k <= maxHalvings; k++ {
		cand, err := eval(cur.draft+step*dT, cur.trim+step*dTh)
		switch {
		case err == nil && cand.norm < cur.norm:
			return cand, nil
		case err == nil && k == maxHalvings:
			// Out of retries: accept the damped step to keep moving.
			return cand, nil
		case err != nil:
			lastErr = err
		}
		step /= 2
	}

	// Every retry failed to evaluate; surface the blocking hydro error.
	return iterate{}, fmt.Errorf("step damping exhausted: %w", lastErr)
}

// seedGuess picks the starting iterate.
func seedGuess(tgt Target, pp hull.Particulars, lo, hi float64, g *Guess) (draft, trimAngle float64) {
	if g != nil {
		return g.Draft, g.Trim
	}
	t0 := tgt.Displacement / (pp.LengthPP * pp.Breadth * pp.BlockCoefficient)
	margin := guessMargin * (hi - lo)
	t0 = math.Max(lo+margin, math.Min(hi-margin, t0))

	return t0, 0
}

func solveErr(cur iterate, iterations int, err error) *SolveError {
	return &SolveError{
		Draft:      cur.draft,
		Trim:       cur.trim,
		Residual:   cur.r,
		Iterations: iterations,
		Err:        err,
	}
}

func withDefaults(opts Options) Options {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 50
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = 1e-6
	}
	if opts.RelStep <= 0 {
		opts.RelStep = 1e-4
	}
	if opts.MaxHalvings <= 0 {
		opts.MaxHalvings = 8
	}

	return opts
}
