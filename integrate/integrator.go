package integrate

// Integrator is the quadrature capability consumed by the hydro calculator.
// Implementations must be stateless and deterministic so that concurrent
// evaluations never interfere.
type Integrator interface {
	// Integrate approximates ∫ f dx over samples with strictly
	// increasing x. Same contract and sentinels as the package-level
	// Integrate function.
	Integrate(xs, ys []float64) (float64, error)
}

// Simpson is the default Integrator: the adaptive composite rule of the
// package-level Integrate (Simpson 1/3 + 3/8 tail on uniform grids,
// quadratic-fit pairs on non-uniform ones).
type Simpson struct{}

// Integrate implements Integrator.
func (Simpson) Integrate(xs, ys []float64) (float64, error) {
	return Integrate(xs, ys)
}

// Trapezoid is a lower-order Integrator: composite trapezoidal rule on any
// spacing. Useful as a cross-check and for deliberately rough, fast passes.
type Trapezoid struct{}

// Integrate implements Integrator.
func (Trapezoid) Integrate(xs, ys []float64) (float64, error) {
	if err := validate(xs, ys); err != nil {
		return 0, err
	}
	var sum float64
	for i := 1; i < len(xs); i++ {
		sum += trapezoid(xs[i-1], xs[i], ys[i-1], ys[i])
	}

	return sum, nil
}
