package hull

import (
	"fmt"
	"math"
	"sort"
)

// New validates and deep-copies the offsets grid into an immutable Geometry.
//
// Contracts:
//   - len(stations) ≥ 2, len(waterlines) ≥ 2 (ErrEmptyGrid otherwise);
//   - stations and waterlines strictly increasing (ErrNotIncreasing);
//   - offsets is len(stations) rows of len(waterlines) half-breadths each
//     (ErrNonRectangular);
//   - every half-breadth finite and ≥ 0 (ErrBadOffset).
//
// Complexity: O(S·W) time and memory for S stations, W waterlines.
func New(stations, waterlines []float64, offsets [][]float64) (*Geometry, error) {
	if len(stations) < 2 || len(waterlines) < 2 {
		return nil, ErrEmptyGrid
	}
	if err := strictlyIncreasing(stations); err != nil {
		return nil, fmt.Errorf("%w: stations", err)
	}
	if err := strictlyIncreasing(waterlines); err != nil {
		return nil, fmt.Errorf("%w: waterlines", err)
	}
	if len(offsets) != len(stations) {
		return nil, ErrNonRectangular
	}

	g := &Geometry{
		stations:     append([]float64(nil), stations...),
		waterlines:   append([]float64(nil), waterlines...),
		halfBreadths: make([][]float64, len(stations)),
	}
	for i, row := range offsets {
		if len(row) != len(waterlines) {
			return nil, ErrNonRectangular
		}
		for j, b := range row {
			if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
				return nil, fmt.Errorf("%w: station %d, waterline %d", ErrBadOffset, i, j)
			}
		}
		g.halfBreadths[i] = append([]float64(nil), row...)
	}

	return g, nil
}

// strictlyIncreasing reports ErrNotIncreasing unless each value exceeds its
// predecessor; NaN and ±Inf grid coordinates are rejected through the same
// sentinel since they break ordering.
func strictlyIncreasing(vs []float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotIncreasing
		}
		if i > 0 && v <= vs[i-1] {
			return ErrNotIncreasing
		}
	}

	return nil
}

// NumStations returns the number of stations in the grid.
func (g *Geometry) NumStations() int { return len(g.stations) }

// NumWaterlines returns the number of measured waterlines.
func (g *Geometry) NumWaterlines() int { return len(g.waterlines) }

// Station returns the longitudinal coordinate of station i, metres.
func (g *Geometry) Station(i int) float64 { return g.stations[i] }

// Waterline returns the elevation of waterline j above baseline, metres.
func (g *Geometry) Waterline(j int) float64 { return g.waterlines[j] }

// HalfBreadth returns the measured half-breadth at (station i, waterline j).
func (g *Geometry) HalfBreadth(i, j int) float64 { return g.halfBreadths[i][j] }

// Stations returns a copy of the station coordinates.
func (g *Geometry) Stations() []float64 { return append([]float64(nil), g.stations...) }

// Waterlines returns a copy of the waterline elevations.
func (g *Geometry) Waterlines() []float64 { return append([]float64(nil), g.waterlines...) }

// Span returns the measured waterline range [lo, hi]; interpolation outside
// it is undefined.
func (g *Geometry) Span() (lo, hi float64) {
	return g.waterlines[0], g.waterlines[len(g.waterlines)-1]
}

// Length returns the longitudinal extent covered by the grid, metres.
func (g *Geometry) Length() float64 {
	return g.stations[len(g.stations)-1] - g.stations[0]
}

// Midships returns the longitudinal coordinate halfway between the first and
// last station. Longitudinal centers (LCB, LCF) are reported relative to it.
func (g *Geometry) Midships() float64 {
	return (g.stations[0] + g.stations[len(g.stations)-1]) / 2
}

// HalfBreadthAt interpolates the half-breadth at station i and elevation z,
// linearly between the two bracketing measured waterlines. Exact at grid
// nodes. Returns ErrStationIndex for a bad station, ErrWaterlineRange when z
// lies outside the measured span — the grid is never extrapolated.
//
// Complexity: O(log W) per call (binary search over waterlines).
func (g *Geometry) HalfBreadthAt(i int, z float64) (float64, error) {
	if i < 0 || i >= len(g.stations) {
		return 0, fmt.Errorf("%w: %d", ErrStationIndex, i)
	}
	lo, hi := g.Span()
	if math.IsNaN(z) || z < lo || z > hi {
		return 0, fmt.Errorf("%w: z=%g outside [%g, %g]", ErrWaterlineRange, z, lo, hi)
	}

	// Locate the bracketing pair [j-1, j] with wl[j-1] < z ≤ wl[j].
	wl := g.waterlines
	j := sort.SearchFloat64s(wl, z)
	if j < len(wl) && wl[j] == z {
		return g.halfBreadths[i][j], nil
	}
	t := (z - wl[j-1]) / (wl[j] - wl[j-1])

	return g.halfBreadths[i][j-1]*(1-t) + g.halfBreadths[i][j]*t, nil
}
