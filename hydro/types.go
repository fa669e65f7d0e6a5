// Package hydro: hull capability, options, result value and sentinel errors.
package hydro

import (
	"errors"
	"math"

	"github.com/katalvlaran/hydrostat/integrate"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "hydro: ...". Sentinels are returned
// wrapped with fmt.Errorf("%w: ctx") where station/draft context helps;
// callers match with errors.Is.

var (
	// ErrNilHull indicates a nil HullData was passed to Compute.
	ErrNilHull = errors.New("hydro: hull is nil")
	// ErrOutOfRange indicates the requested draft/trim/heel pushes an
	// effective local waterline outside the measured waterline span of the
	// offsets grid. Offsets are never extrapolated.
	ErrOutOfRange = errors.New("hydro: effective waterline outside measured offsets range")
	// ErrDegenerateGeometry indicates a zero displaced volume or a zero (or
	// negative) waterplane area — nothing meaningful can be derived.
	ErrDegenerateGeometry = errors.New("hydro: degenerate geometry (zero volume or waterplane)")
	// ErrNumericalInstability indicates integration produced NaN, Inf or a
	// negative volume. Surfaced, never substituted with a default.
	ErrNumericalInstability = errors.New("hydro: numerical instability (NaN, Inf or negative volume)")
)

// HullData is the hull-geometry capability Compute consumes. *hull.Geometry
// satisfies it; analytic hull forms or spline surfaces can stand in for the
// offsets grid in tests and experiments.
//
// Contracts: stations strictly increasing along x, waterlines strictly
// increasing along z, HalfBreadthAt interpolates within the measured span
// only and is exact at grid nodes.
type HullData interface {
	NumStations() int
	Station(i int) float64
	NumWaterlines() int
	Waterline(j int) float64
	HalfBreadthAt(i int, z float64) (float64, error)
}

// Options configures a single Compute evaluation.
type Options struct {
	// Trim is the trim angle in radians about midships, positive bow-down:
	// the effective draft at station x is draft + tan(Trim)·(x − midships).
	Trim float64
	// Heel is the heel angle in radians about the centerline, positive
	// increasing immersion on the +y side. Zero for symmetric evaluation.
	Heel float64
	// VCG is the vertical center of gravity above baseline, metres. NaN
	// (the default) leaves the metacentric heights unset (Result.HasGM).
	VCG float64
	// Integrator selects the quadrature rule; nil means integrate.Simpson.
	Integrator integrate.Integrator
}

// DefaultOptions returns Options for an upright, even-keel evaluation with
// no VCG supplied and the default Simpson integrator.
func DefaultOptions() Options {
	return Options{VCG: math.NaN()}
}

// Result is the immutable hydrostatic state computed by one Compute call.
// Lengths in metres, areas in m², volumes in m³, inertias in m⁴; angles in
// radians. Longitudinal coordinates (LCB, LCF) are relative to midships,
// positive forward; vertical coordinates (KB) above baseline.
type Result struct {
	// Echo of the evaluated waterplane attitude.
	Draft, Trim, Heel float64

	// Volume is the displaced volume ∇.
	Volume float64
	// LCB, TCB, KB locate the center of buoyancy.
	LCB, TCB, KB float64

	// WaterplaneArea is Awp; LCF the longitudinal center of flotation.
	WaterplaneArea float64
	LCF            float64
	// IT and IL are the waterplane moments of inertia: transverse about the
	// waterplane centroid axis, longitudinal about the axis through LCF.
	IT, IL float64

	// BMT and BML are the metacentric radii IT/∇ and IL/∇.
	BMT, BML float64
	// GMT and GML are the metacentric heights KB + BM − VCG; valid only
	// when HasGM (a VCG was supplied).
	GMT, GML float64
	HasGM    bool

	// MidshipArea is the submerged sectional area interpolated at midships.
	MidshipArea float64
	// Form coefficients: block, prismatic, midship, waterplane.
	Cb, Cp, Cm, Cwp float64
}
