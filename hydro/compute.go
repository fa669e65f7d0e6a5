// Package hydro - single-attitude hydrostatics evaluation.
//
// This file provides the canonical entry point:
//
//   - Compute: validate inputs, transform the waterplane for trim/heel,
//     integrate per-station sections, fold them into volume, buoyancy and
//     waterplane properties, and derive metacentrics and form coefficients.
//
// Design principles:
//   - Deterministic: fixed evaluation order, no concurrency, no caching.
//   - Strict sentinels: every failure surfaces as one of the hydro
//     sentinels from types.go; no silent default values.
//   - Pure function: identical inputs yield bit-identical Results, so
//     callers may evaluate concurrently without locking.
package hydro

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydrostat/hull"
	"github.com/katalvlaran/hydrostat/integrate"
)

// Compute evaluates the hydrostatics of hull h at the given mean draft with
// the attitude and policy in opts. pp supplies the fixed dimensions for the
// form coefficients.
//
// Contracts:
//   - h non-nil with at least a 2×2 offsets grid;
//   - pp valid per hull.Particulars.Validate;
//   - draft, opts.Trim and opts.Heel finite.
//
// Errors: ErrNilHull, hull.ErrBadParticulars, ErrOutOfRange,
// ErrDegenerateGeometry, ErrNumericalInstability.
//
// Complexity: O(S·W) for S stations and W waterlines (each station performs
// one depth integration over at most W+2 samples).
func Compute(h HullData, pp hull.Particulars, draft float64, opts Options) (Result, error) {
	// Stage 1 - validation.
	if h == nil {
		return Result{}, ErrNilHull
	}
	if h.NumStations() < 2 || h.NumWaterlines() < 2 {
		return Result{}, fmt.Errorf("%w: offsets grid smaller than 2x2", ErrDegenerateGeometry)
	}
	if err := pp.Validate(); err != nil {
		return Result{}, err
	}
	for _, v := range [...]float64{draft, opts.Trim, opts.Heel} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("%w: draft, trim and heel must be finite", ErrOutOfRange)
		}
	}
	r := opts.Integrator
	if r == nil {
		r = integrate.Simpson{}
	}

	// Stage 2 - waterplane transform and per-station sections.
	var (
		nS      = h.NumStations()
		lo      = h.Waterline(0)
		hi      = h.Waterline(h.NumWaterlines() - 1)
		mid     = (h.Station(0) + h.Station(nS-1)) / 2
		slope   = math.Tan(opts.Trim)
		tanHeel = math.Tan(opts.Heel)

		xs   = make([]float64, nS) // station coordinates
		area = make([]float64, nS) // A(x): submerged sectional area
		myA  = make([]float64, nS) // sectional transverse moment
		mzA  = make([]float64, nS) // sectional vertical moment
		wpW  = make([]float64, nS) // W(x): waterplane breadth
		wpC  = make([]float64, nS) // (y⁺³+y⁻³)/3: cubic breadth term
		wpM  = make([]float64, nS) // (y⁺²−y⁻²)/2: transverse wp moment
	)
	for i := 0; i < nS; i++ {
		x := h.Station(i)
		xs[i] = x
		tEff := draft + slope*(x-mid)
		if tEff < lo || tEff > hi {
			return Result{}, fmt.Errorf("%w: station %d, effective draft %g outside [%g, %g]",
				ErrOutOfRange, i, tEff, lo, hi)
		}
		sec, err := sectionAt(h, i, tEff, tanHeel, lo, hi, r)
		if err != nil {
			return Result{}, err
		}
		area[i] = sec.area
		myA[i] = sec.my
		mzA[i] = sec.mz
		wpW[i] = sec.yStb + sec.yPort
		wpC[i] = (cube(sec.yStb) + cube(sec.yPort)) / 3
		wpM[i] = (sec.yStb*sec.yStb - sec.yPort*sec.yPort) / 2
	}

	// Stage 3 - volume and buoyancy.
	res := Result{Draft: draft, Trim: opts.Trim, Heel: opts.Heel}
	vol, err := r.Integrate(xs, area)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: volume integration: %w", err)
	}
	switch {
	case math.IsNaN(vol) || math.IsInf(vol, 0) || vol < 0:
		return Result{}, fmt.Errorf("%w: volume=%g", ErrNumericalInstability, vol)
	case vol == 0:
		return Result{}, fmt.Errorf("%w: zero displaced volume at draft %g", ErrDegenerateGeometry, draft)
	}
	res.Volume = vol

	mLCB, err := integrate.FirstMoment(r, xs, area, mid)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: LCB moment: %w", err)
	}
	mTCB, err := r.Integrate(xs, myA)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: TCB moment: %w", err)
	}
	mKB, err := r.Integrate(xs, mzA)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: KB moment: %w", err)
	}
	res.LCB = mLCB / vol
	res.TCB = mTCB / vol
	res.KB = mKB / vol

	// Stage 4 - waterplane properties.
	awp, err := r.Integrate(xs, wpW)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: waterplane area: %w", err)
	}
	if math.IsNaN(awp) || math.IsInf(awp, 0) {
		return Result{}, fmt.Errorf("%w: waterplane area=%g", ErrNumericalInstability, awp)
	}
	if awp <= 0 {
		return Result{}, fmt.Errorf("%w: waterplane area=%g", ErrDegenerateGeometry, awp)
	}
	res.WaterplaneArea = awp

	mLCF, err := integrate.FirstMoment(r, xs, wpW, mid)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: LCF moment: %w", err)
	}
	res.LCF = mLCF / awp

	itCL, err := r.Integrate(xs, wpC)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: transverse inertia: %w", err)
	}
	mY, err := r.Integrate(xs, wpM)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: waterplane centroid: %w", err)
	}
	yBar := mY / awp
	res.IT = itCL - awp*yBar*yBar // parallel-axis shift to the centroid

	ilMid, err := integrate.SecondMoment(r, xs, wpW, mid)
	if err != nil {
		return Result{}, fmt.Errorf("hydro: longitudinal inertia: %w", err)
	}
	res.IL = ilMid - awp*res.LCF*res.LCF // about the axis through LCF

	// Stage 5 - metacentrics.
	res.BMT = res.IT / vol
	res.BML = res.IL / vol
	if !math.IsNaN(opts.VCG) {
		res.GMT = res.KB + res.BMT - opts.VCG
		res.GML = res.KB + res.BML - opts.VCG
		res.HasGM = true
	}

	// Stage 6 - form coefficients against the principal particulars.
	res.MidshipArea = interpolateAt(xs, area, mid)
	if l, b, t := pp.LengthPP, pp.Breadth, draft; t > 0 {
		res.Cb = vol / (l * b * t)
		res.Cm = res.MidshipArea / (b * t)
		res.Cwp = awp / (l * b)
		if res.Cm > 0 {
			res.Cp = res.Cb / res.Cm
		}
	}

	// Stage 7 - final numeric sweep: any NaN/Inf that slipped through the
	// integrals is an instability, not a value to return.
	for _, v := range [...]float64{
		res.LCB, res.TCB, res.KB, res.LCF, res.IT, res.IL,
		res.BMT, res.BML, res.MidshipArea, res.Cb, res.Cp, res.Cm, res.Cwp,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("%w: non-finite derived property", ErrNumericalInstability)
		}
	}

	return res, nil
}

// cube avoids a math.Pow call on the hot path.
func cube(v float64) float64 { return v * v * v }

// interpolateAt linearly interpolates the sampled curve (xs, ys) at x;
// exact when x coincides with a sample. xs is strictly increasing and
// brackets x (midships always lies within the station range).
func interpolateAt(xs, ys []float64, x float64) float64 {
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			if x == xs[i] {
				return ys[i]
			}
			t := (x - xs[i-1]) / (xs[i] - xs[i-1])

			return ys[i-1]*(1-t) + ys[i]*t
		}
	}

	return ys[len(ys)-1]
}
