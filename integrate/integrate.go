package integrate

import (
	"errors"
	"math"
)

var (
	// ErrInsufficientPoints indicates fewer than two samples were supplied.
	ErrInsufficientPoints = errors.New("integrate: need at least two points")
	// ErrUnorderedPoints indicates x values that are not strictly increasing
	// (or contain NaN/Inf, which break ordering).
	ErrUnorderedPoints = errors.New("integrate: x values must be strictly increasing")
	// ErrLengthMismatch indicates xs and ys of different lengths.
	ErrLengthMismatch = errors.New("integrate: x and y slices must have equal length")
)

// uniformRelTol is the relative tolerance under which interval widths are
// considered equal when choosing between the uniform-grid Simpson rules and
// the non-uniform quadratic rule.
const uniformRelTol = 1e-9

// Integrate approximates ∫ f dx over the sampled curve (xs, ys).
//
// Rule selection (see package doc):
//  1. one interval                     → trapezoid;
//  2. uniform grid, even #intervals    → composite Simpson 1/3;
//  3. uniform grid, odd #intervals ≥ 3 → Simpson 1/3 up to the last three
//     intervals, Simpson 3/8 over them;
//  4. non-uniform grid                 → quadratic fit per interval pair,
//     last-three-point parabola over a trailing single interval.
//
// Errors: ErrInsufficientPoints, ErrLengthMismatch, ErrUnorderedPoints.
//
// Complexity: O(n) time, O(1) extra memory. Deterministic: fixed
// left-to-right summation, bit-identical for identical inputs.
func Integrate(xs, ys []float64) (float64, error) {
	if err := validate(xs, ys); err != nil {
		return 0, err
	}

	n := len(xs) - 1 // interval count
	switch {
	case n == 1:
		return trapezoid(xs[0], xs[1], ys[0], ys[1]), nil
	case !uniform(xs):
		return quadraticPairs(xs, ys), nil
	case n%2 == 0:
		return simpson13(xs, ys, 0, n), nil
	default:
		// Odd interval count on a uniform grid: 1/3 rule over the leading
		// even block, 3/8 rule over the final three intervals.
		return simpson13(xs, ys, 0, n-3) + simpson38(xs, ys, n-3), nil
	}
}

// validate enforces the Integrate contract shared by every rule.
func validate(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}
	if len(xs) < 2 {
		return ErrInsufficientPoints
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrUnorderedPoints
		}
		if i > 0 && x <= xs[i-1] {
			return ErrUnorderedPoints
		}
	}

	return nil
}

// uniform reports whether all interval widths match the first within
// uniformRelTol of the total span.
func uniform(xs []float64) bool {
	h := xs[1] - xs[0]
	tol := uniformRelTol * (xs[len(xs)-1] - xs[0])
	for i := 2; i < len(xs); i++ {
		if math.Abs((xs[i]-xs[i-1])-h) > tol {
			return false
		}
	}

	return true
}

// trapezoid integrates a single interval exactly for linear f.
func trapezoid(x0, x1, y0, y1 float64) float64 {
	return (x1 - x0) * (y0 + y1) / 2
}

// simpson13 applies the composite Simpson 1/3 rule over intervals
// [lo, lo+count) of a uniform grid; count must be even (may be zero).
func simpson13(xs, ys []float64, lo, count int) float64 {
	if count == 0 {
		return 0
	}
	var sum float64
	for i := lo; i < lo+count; i += 2 {
		h := (xs[i+2] - xs[i]) / 2
		sum += h / 3 * (ys[i] + 4*ys[i+1] + ys[i+2])
	}

	return sum
}

// simpson38 applies the Simpson 3/8 rule over the three intervals starting
// at index lo of a uniform grid.
func simpson38(xs, ys []float64, lo int) float64 {
	h := (xs[lo+3] - xs[lo]) / 3

	return 3 * h / 8 * (ys[lo] + 3*ys[lo+1] + 3*ys[lo+2] + ys[lo+3])
}

// quadraticPairs integrates a non-uniform grid with the three-point
// quadratic-fit rule per pair of intervals (exact for quadratics on
// arbitrary spacing). A trailing odd interval is finished with the parabola
// through the last three points integrated over that interval alone, so the
// whole rule stays quadratic-exact for any interval count ≥ 2.
func quadraticPairs(xs, ys []float64) float64 {
	var sum float64
	n := len(xs) - 1
	i := 0
	for ; i+2 <= n; i += 2 {
		sum += quadratic3(
			xs[i], xs[i+1], xs[i+2],
			ys[i], ys[i+1], ys[i+2],
		)
	}
	if i < n {
		sum += quadraticTail(
			xs[i-1], xs[i], xs[i+1],
			ys[i-1], ys[i], ys[i+1],
		)
	}

	return sum
}

// quadratic3 integrates the unique parabola through three points over
// [x0, x2]. With h0 = x1−x0 and h1 = x2−x1:
//
//	∫ = (h0+h1)/6 · [ (2 − h1/h0)·f0 + (h0+h1)²/(h0·h1)·f1 + (2 − h0/h1)·f2 ]
//
// which reduces to the classic Simpson 1/3 rule when h0 == h1.
func quadratic3(x0, x1, x2, f0, f1, f2 float64) float64 {
	h0 := x1 - x0
	h1 := x2 - x1
	s := h0 + h1

	return s / 6 * ((2-h1/h0)*f0 + s*s/(h0*h1)*f1 + (2-h0/h1)*f2)
}

// quadraticTail integrates the parabola through three points over the final
// interval [x1, x2] only. With h0 = x1−x0 and h1 = x2−x1 the Lagrange weights
// reduce to
//
//	∫ = −h1³/(6·h0·(h0+h1))·f0 + (h1²/(6·h0) + h1/2)·f1
//	    + h1·(2h1+3h0)/(6·(h0+h1))·f2
//
// which is the classic (h/12)·(−f0 + 8f1 + 5f2) when h0 == h1.
func quadraticTail(x0, x1, x2, f0, f1, f2 float64) float64 {
	h0 := x1 - x0
	h1 := x2 - x1
	s := h0 + h1

	return -h1*h1*h1/(6*h0*s)*f0 + (h1*h1/(6*h0)+h1/2)*f1 + h1*(2*h1+3*h0)/(6*s)*f2
}
