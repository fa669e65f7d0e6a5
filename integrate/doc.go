// Package integrate provides deterministic 1-D composite quadrature over
// sampled curves, the numerical backbone of the hydrostatics engine.
//
// 🚀 What does it do?
//
//	Given samples (x_i, f(x_i)) with strictly increasing x, Integrate
//	approximates ∫ f dx with the highest-order Newton–Cotes rule the
//	sample layout admits:
//	  • uniform spacing, even interval count  → composite Simpson 1/3
//	  • uniform spacing, odd interval count   → Simpson 1/3 over the
//	    leading intervals + Simpson 3/8 over the last three, so no
//	    sample is discarded
//	  • non-uniform spacing                   → exact quadratic fit per
//	    pair of intervals; a leftover single interval is covered by the
//	    parabola through the last three points, keeping the rule
//	    quadratic-exact for any sample count
//	  • two points                            → trapezoid
//
// ✨ Guarantees:
//   - Deterministic: identical inputs produce bit-identical output;
//     summation order is fixed, no concurrency, no global state.
//   - Exact for polynomials up to the local rule order (cubics on
//     uniform even grids, quadratics elsewhere).
//   - Strict validation: ErrInsufficientPoints below two samples,
//     ErrUnorderedPoints on a non-increasing x sequence.
//
// Nested (double) integration is plain composition: integrate breadth
// over depth per section, then section area over length — see
// FirstMoment / SecondMoment / VerticalMoment for the moment integrals
// the hydro calculator layers on top.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydrostat/integrate"
//
//	area, err := integrate.Integrate(xs, ys)
//	mx, err := integrate.FirstMoment(nil, xs, ys, midships) // ∫ (x−x̄)·f dx
//
// The Integrator interface makes the rule swappable (Simpson, Trapezoid)
// without touching callers.
package integrate
