package integrate

// Moment integrals used by the hydro calculator when nesting integrations:
// the inner pass produces per-station scalars (sectional area, waterline
// breadth), the outer pass folds them into volume and moment totals.
// Each helper applies the supplied Integrator so that a swapped quadrature
// rule governs the whole computation; a nil Integrator means Simpson.

// FirstMoment approximates ∫ (x − about)·f dx, the first moment of the
// sampled curve about the axis x = about. Same contract as Integrate.
func FirstMoment(r Integrator, xs, ys []float64, about float64) (float64, error) {
	return weighted(r, xs, ys, func(x, y float64) float64 { return (x - about) * y })
}

// SecondMoment approximates ∫ (x − about)²·f dx, the second moment of the
// sampled curve about the axis x = about. Same contract as Integrate.
func SecondMoment(r Integrator, xs, ys []float64, about float64) (float64, error) {
	return weighted(r, xs, ys, func(x, y float64) float64 {
		d := x - about

		return d * d * y
	})
}

// VerticalMoment approximates ∫ x·f dx with x measured from the origin —
// the form used for the vertical moment of a submerged section about the
// baseline (KB numerator). Equivalent to FirstMoment(r, xs, ys, 0).
func VerticalMoment(r Integrator, xs, ys []float64) (float64, error) {
	return FirstMoment(r, xs, ys, 0)
}

// weighted applies w pointwise and integrates the transformed curve.
func weighted(r Integrator, xs, ys []float64, w func(x, y float64) float64) (float64, error) {
	if r == nil {
		r = Simpson{}
	}
	if err := validate(xs, ys); err != nil {
		return 0, err
	}
	wy := make([]float64, len(ys))
	for i := range ys {
		wy[i] = w(xs[i], ys[i])
	}

	return r.Integrate(xs, wy)
}
