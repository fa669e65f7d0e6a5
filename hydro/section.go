package hydro

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hydrostat/integrate"
)

// edgeSolveIterations is the fixed iteration count for the heeled waterline
// edge solve. A fixed count (rather than a tolerance loop) keeps the result
// bit-deterministic across runs and platforms.
const edgeSolveIterations = 8

// section carries the submerged properties of one transverse cut plus the
// waterplane half-breadths at its effective waterline.
type section struct {
	area float64 // full submerged sectional area, m²
	my   float64 // transverse first moment about centerline, m³
	mz   float64 // vertical first moment about baseline, m³

	yStb  float64 // waterplane half-breadth on the +y side, m
	yPort float64 // waterplane half-breadth on the −y side, m
}

// SectionArea returns the full submerged sectional area of station i up to
// the upright waterline z — the Bonjean ordinate. r selects the quadrature
// rule (nil means integrate.Simpson).
//
// Errors: ErrNilHull, ErrOutOfRange when z leaves the measured span or i is
// not a valid station.
func SectionArea(h HullData, i int, z float64, r integrate.Integrator) (float64, error) {
	if h == nil {
		return 0, ErrNilHull
	}
	if i < 0 || i >= h.NumStations() {
		return 0, fmt.Errorf("%w: station %d", ErrOutOfRange, i)
	}
	if r == nil {
		r = integrate.Simpson{}
	}
	lo, hi := h.Waterline(0), h.Waterline(h.NumWaterlines()-1)
	if math.IsNaN(z) || z < lo || z > hi {
		return 0, fmt.Errorf("%w: station %d, z=%g outside [%g, %g]", ErrOutOfRange, i, z, lo, hi)
	}

	sec, err := sectionAt(h, i, z, 0, lo, hi, r)
	if err != nil {
		return 0, err
	}

	return sec.area, nil
}

// sectionAt integrates the submerged strip widths of station i below the
// local waterline. tEff is the effective draft at the station (trim already
// applied); tanHeel tilts the waterline across the beam: the local
// waterplane elevation at transverse position y is tEff + y·tanHeel.
//
// The submerged region at elevation z is the y-interval
//
//	[max(−b(z), (z−tEff)/tanHeel), b(z)]   for tanHeel > 0
//	[−b(z), min(b(z), (z−tEff)/tanHeel)]   for tanHeel < 0
//	[−b(z), b(z)] for z ≤ tEff             when tanHeel = 0
//
// whose width w(z) is integrated over depth together with its transverse
// and vertical first moments. Callers guarantee tEff ∈ [lo, hi]; the heeled
// waterline edges may still leave the span, which is ErrOutOfRange.
func sectionAt(h HullData, i int, tEff, tanHeel, lo, hi float64, r integrate.Integrator) (section, error) {
	if tanHeel == 0 {
		return uprightSection(h, i, tEff, lo, r)
	}

	return heeledSection(h, i, tEff, tanHeel, lo, hi, r)
}

// uprightSection handles the symmetric tanHeel == 0 cut: strip width is
// simply twice the interpolated half-breadth up to tEff.
func uprightSection(h HullData, i int, tEff, lo float64, r integrate.Integrator) (section, error) {
	if tEff <= lo {
		// Station dry (or exactly at the lowest measured waterline).
		return section{}, nil
	}

	zs, err := sampleElevations(h, i, tEff, lo)
	if err != nil {
		return section{}, err
	}
	ws := make([]float64, len(zs))
	for k, z := range zs {
		b, berr := h.HalfBreadthAt(i, z)
		if berr != nil {
			return section{}, fmt.Errorf("%w: station %d: %v", ErrOutOfRange, i, berr)
		}
		ws[k] = 2 * b
	}

	var sec section
	if sec.area, err = r.Integrate(zs, ws); err != nil {
		return section{}, fmt.Errorf("hydro: station %d depth integration: %w", i, err)
	}
	if sec.mz, err = integrate.VerticalMoment(r, zs, ws); err != nil {
		return section{}, fmt.Errorf("hydro: station %d vertical moment: %w", i, err)
	}

	b, berr := h.HalfBreadthAt(i, tEff)
	if berr != nil {
		return section{}, fmt.Errorf("%w: station %d: %v", ErrOutOfRange, i, berr)
	}
	sec.yStb, sec.yPort = b, b

	return sec, nil
}

// heeledSection clips each depth strip against the inclined waterplane and
// integrates width plus both first moments.
func heeledSection(h HullData, i int, tEff, tanHeel, lo, hi float64, r integrate.Integrator) (section, error) {
	var sec section

	// Waterline edge on each side: the +y edge satisfies y = b(tEff + y·t),
	// the −y edge y = b(tEff − y·t). Solved by a fixed-point iteration with
	// a fixed count; either edge leaving the measured span is OutOfRange.
	yStb, zStb, err := waterlineEdge(h, i, tEff, tanHeel, lo, hi)
	if err != nil {
		return sec, err
	}
	yPort, zPort, err := waterlineEdge(h, i, tEff, -tanHeel, lo, hi)
	if err != nil {
		return sec, err
	}
	sec.yStb, sec.yPort = yStb, yPort

	zTop := math.Max(zStb, zPort)
	zLow := math.Min(zStb, zPort) // w(z) has a kink here; sample it exactly
	if zTop <= lo {
		return section{}, nil
	}

	zs, err := sampleElevations(h, i, zTop, lo)
	if err != nil {
		return sec, err
	}
	// The strip width has a slope discontinuity where the inclined waterline
	// first leaves the full section: sample zLow exactly and split every
	// depth integral there, so no quadrature pair ever fits a parabola
	// across the kink. The wedge midpoint guarantees the upper segment
	// carries at least three samples.
	zs = insertElevation(zs, zLow)
	zs = insertElevation(zs, (zLow+zTop)/2)
	kink := kinkIndex(zs, zLow)

	ws := make([]float64, len(zs))  // strip width
	wys := make([]float64, len(zs)) // strip width · strip centroid
	wzs := make([]float64, len(zs)) // strip width · elevation
	for k, z := range zs {
		b, berr := h.HalfBreadthAt(i, z)
		if berr != nil {
			return sec, fmt.Errorf("%w: station %d: %v", ErrOutOfRange, i, berr)
		}
		yLo, yHi := -b, b
		cut := (z - tEff) / tanHeel
		if tanHeel > 0 {
			yLo = math.Max(yLo, cut)
		} else {
			yHi = math.Min(yHi, cut)
		}
		if w := yHi - yLo; w > 0 {
			ws[k] = w
			wys[k] = w * (yHi + yLo) / 2
			wzs[k] = w * z
		}
	}

	if sec.area, err = splitIntegrate(r, zs, ws, kink); err != nil {
		return sec, fmt.Errorf("hydro: station %d depth integration: %w", i, err)
	}
	if sec.my, err = splitIntegrate(r, zs, wys, kink); err != nil {
		return sec, fmt.Errorf("hydro: station %d transverse moment: %w", i, err)
	}
	if sec.mz, err = splitIntegrate(r, zs, wzs, kink); err != nil {
		return sec, fmt.Errorf("hydro: station %d vertical moment: %w", i, err)
	}

	return sec, nil
}

// splitIntegrate integrates (zs, ys) in two runs joined at sample k, so the
// pairing of the quadrature rule restarts there. k < 0 (or an endpoint)
// means no interior breakpoint: one run over the whole curve.
func splitIntegrate(r integrate.Integrator, zs, ys []float64, k int) (float64, error) {
	if k <= 0 || k >= len(zs)-1 {
		return r.Integrate(zs, ys)
	}
	below, err := r.Integrate(zs[:k+1], ys[:k+1])
	if err != nil {
		return 0, err
	}
	above, err := r.Integrate(zs[k:], ys[k:])
	if err != nil {
		return 0, err
	}

	return below + above, nil
}

// kinkIndex locates z in zs, returning -1 unless it is an interior sample.
func kinkIndex(zs []float64, z float64) int {
	k := sort.SearchFloat64s(zs, z)
	if k <= 0 || k >= len(zs)-1 || zs[k] != z {
		return -1
	}

	return k
}

// waterlineEdge solves y = b(tEff + y·t) for the half-breadth y at which the
// inclined waterline exits the hull side of station i, returning y and the
// elevation of the exit point. Runs a fixed number of fixed-point steps
// seeded with b(tEff); converges for wall-sided and flaring sections where
// |∂b/∂z · t| < 1.
func waterlineEdge(h HullData, i int, tEff, t, lo, hi float64) (y, z float64, err error) {
	b, berr := h.HalfBreadthAt(i, tEff)
	if berr != nil {
		return 0, 0, fmt.Errorf("%w: station %d: %v", ErrOutOfRange, i, berr)
	}
	y, z = b, tEff
	for iter := 0; iter < edgeSolveIterations; iter++ {
		z = tEff + y*t
		if z < lo || z > hi {
			return 0, 0, fmt.Errorf("%w: station %d, heeled waterline edge z=%g outside [%g, %g]",
				ErrOutOfRange, i, z, lo, hi)
		}
		if y, berr = h.HalfBreadthAt(i, z); berr != nil {
			return 0, 0, fmt.Errorf("%w: station %d: %v", ErrOutOfRange, i, berr)
		}
	}

	return y, z, nil
}

// sampleElevations returns the measured waterlines of station i strictly
// below top, prefixed with lo and capped with top itself — the depth sample
// set every strip integral runs over.
func sampleElevations(h HullData, i int, top, lo float64) ([]float64, error) {
	zs := make([]float64, 0, h.NumWaterlines()+1)
	zs = append(zs, lo)
	for j := 1; j < h.NumWaterlines(); j++ {
		if z := h.Waterline(j); z < top {
			zs = append(zs, z)
		}
	}
	zs = append(zs, top)
	if len(zs) < 2 {
		return nil, fmt.Errorf("%w: station %d", ErrDegenerateGeometry, i)
	}

	return zs, nil
}

// insertElevation splices z into the sorted sample set unless it falls
// outside the open interval or lands on an existing sample.
func insertElevation(zs []float64, z float64) []float64 {
	if z <= zs[0] || z >= zs[len(zs)-1] {
		return zs
	}
	k := sort.SearchFloat64s(zs, z)
	if k < len(zs) && zs[k] == z {
		return zs
	}
	zs = append(zs, 0)
	copy(zs[k+1:], zs[k:])
	zs[k] = z

	return zs
}
