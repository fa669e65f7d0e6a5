// Package hull defines the immutable offsets-grid geometry consumed by the
// hydrostatics engine, plus the principal particulars used to
// non-dimensionalize results.
//
// 🚀 What is an offsets grid?
//
//	Naval architects describe a hull as a table of half-breadth
//	measurements: for every station (longitudinal position along the
//	keel) and every waterline (height above the baseline), the grid
//	records the transverse distance from the centerline to the shell
//	plating. One side of a symmetric hull is enough.
//
// ✨ Key guarantees:
//   - Geometry is immutable once built: New deep-copies its inputs and
//     accessors never expose internal slices for mutation.
//   - The grid is validated on construction: rectangular, fully
//     populated, strictly increasing stations and waterlines,
//     non-negative finite offsets.
//   - HalfBreadthAt interpolates linearly between measured waterlines
//     and refuses to extrapolate outside the measured span
//     (ErrWaterlineRange).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydrostat/hull"
//
//	g, err := hull.New(stations, waterlines, offsets)
//	if err != nil {
//	  // ErrEmptyGrid, ErrNonRectangular, ErrNotIncreasing, ...
//	}
//	b, err := g.HalfBreadthAt(3, 1.25) // station 3, 1.25 m above baseline
//
// Geometry satisfies the hull-data capability expected by the hydro
// package, so alternative providers (analytic hull forms, spline
// surfaces) can be swapped in without touching the calculator.
package hull
