// Package hull: core types and sentinel errors for hull geometry.
package hull

import (
	"errors"
	"math"
)

// Sentinel errors for geometry construction and lookup.
var (
	// ErrEmptyGrid indicates fewer than two stations or two waterlines.
	ErrEmptyGrid = errors.New("hull: offsets grid needs at least two stations and two waterlines")
	// ErrNonRectangular indicates the offsets table is ragged or does not
	// match the station/waterline counts.
	ErrNonRectangular = errors.New("hull: offsets grid must be rectangular and fully populated")
	// ErrNotIncreasing indicates stations or waterlines are not strictly increasing.
	ErrNotIncreasing = errors.New("hull: stations and waterlines must be strictly increasing")
	// ErrBadOffset indicates a negative, NaN or infinite half-breadth value.
	ErrBadOffset = errors.New("hull: half-breadths must be finite and non-negative")
	// ErrWaterlineRange indicates an interpolation request outside the
	// measured waterline span. Values there are undefined; the engine
	// never extrapolates.
	ErrWaterlineRange = errors.New("hull: waterline outside measured range")
	// ErrStationIndex indicates a station index outside the grid.
	ErrStationIndex = errors.New("hull: station index out of range")
	// ErrBadParticulars indicates non-positive or non-finite principal particulars.
	ErrBadParticulars = errors.New("hull: principal particulars must be positive and finite")
)

// Geometry is an immutable half-breadth offsets grid.
//
// Stations run along the longitudinal axis (x, metres, positive forward),
// waterlines along the vertical axis (z, metres above baseline). The value
// at (station i, waterline j) is the half-breadth of the symmetric hull at
// that point, in metres. Built via New; never mutated afterwards.
type Geometry struct {
	stations     []float64
	waterlines   []float64
	halfBreadths [][]float64 // [station][waterline]
}

// Particulars holds the principal particulars of the vessel: the fixed
// dimensions used to non-dimensionalize form coefficients and to seed the
// trim solver's initial guess.
type Particulars struct {
	// LengthPP is the length between perpendiculars, metres.
	LengthPP float64
	// Breadth is the moulded breadth, metres.
	Breadth float64
	// DesignDraft is the design mean draft, metres.
	DesignDraft float64
	// BlockCoefficient is the Cb estimate at design draft, dimensionless,
	// in (0, 1].
	BlockCoefficient float64
}

// Validate reports ErrBadParticulars when any particular is non-positive,
// non-finite, or the block coefficient falls outside (0, 1].
func (p Particulars) Validate() error {
	for _, v := range [...]float64{p.LengthPP, p.Breadth, p.DesignDraft} {
		if !(v > 0) || math.IsInf(v, 0) {
			return ErrBadParticulars
		}
	}
	if !(p.BlockCoefficient > 0) || p.BlockCoefficient > 1 {
		return ErrBadParticulars
	}

	return nil
}
