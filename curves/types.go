// Package curves: batch types, options and sentinel errors.
package curves

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydrostat/hydro"
)

var (
	// ErrBadRange indicates a draft range that is non-finite or has Min ≥ Max.
	ErrBadRange = errors.New("curves: draft range must be finite with Min < Max")
	// ErrTooFewSteps indicates a step count below two; both range ends are
	// always included, so two is the minimum meaningful batch.
	ErrTooFewSteps = errors.New("curves: need at least two steps")
)

// Range is a closed draft interval [Min, Max], metres above baseline.
type Range struct {
	Min, Max float64
}

// Point is one entry of a hydrostatic curve: either a computed Result or an
// explicit failure marker for that draft — never both.
type Point struct {
	Draft  float64
	Result hydro.Result // valid only when Err == nil
	Err    error        // originating hydro sentinel, errors.Is-matchable
}

// Curve is an ordered (by draft, ascending) sequence of curve points mixing
// successes and per-point failures.
type Curve []Point

// BonjeanPoint is one ordinate of a Bonjean curve: the full submerged
// sectional area at a waterline elevation.
type BonjeanPoint struct {
	Draft float64
	Area  float64 // m²; valid only when Err == nil
	Err   error
}

// BonjeanCurve is the sectional-area curve of a single station.
type BonjeanCurve struct {
	Station int     // station index in the offsets grid
	X       float64 // longitudinal coordinate of the station, metres
	Points  []BonjeanPoint
}

// Options configures a batch.
type Options struct {
	// Hydro is applied to every per-draft evaluation (trim, heel, VCG,
	// integrator). The requested draft varies per point.
	Hydro hydro.Options
	// Workers bounds the evaluation pool; values ≤ 0 mean one worker per
	// available CPU. One worker forces strictly sequential evaluation.
	Workers int
	// Logger traces batch progress and per-point failures. Defaults to a
	// no-op logger.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with the default hydro options, a pool
// sized to the machine and discarded logging.
func DefaultOptions() Options {
	return Options{
		Hydro:  hydro.DefaultOptions(),
		Logger: zerolog.Nop(),
	}
}
