// Package hydro computes the hydrostatic properties of a hull at a given
// draft, trim and heel: displaced volume, centers of buoyancy, waterplane
// properties, metacentric radii and heights, and form coefficients.
//
// 🚀 How does it work?
//
//	Compute transforms the reference waterplane for the requested trim
//	(and optional heel), interpolates the half-breadth offsets at the
//	effective local waterline of each station, integrates breadth over
//	depth to get submerged sectional areas, then integrates those areas
//	and their moments over the ship's length:
//
//	  A(x)  = 2·∫ b(x,z) dz            sectional area
//	  ∇     = ∫ A dx                   displaced volume
//	  LCB   = ∫ (x−x̄)·A dx / ∇         longitudinal center of buoyancy
//	  KB    = ∫∫ z·w dz dx / ∇         vertical center of buoyancy
//	  Awp   = ∫ (y⁺+y⁻) dx             waterplane area
//	  It    = ∫ (y⁺³+y⁻³)/3 dx − Awp·ȳ²   transverse waterplane inertia
//	  Il    = ∫ (x−x̄)²·W dx − Awp·(LCF)²  longitudinal inertia about LCF
//	  BMt   = It/∇, BMl = Il/∇, GM = KB + BM − VCG
//
// ✨ Guarantees:
//   - Pure and stateless: the result depends only on the inputs, no
//     caching, no globals — concurrent Compute calls are always safe.
//   - Strict failure surface: ErrOutOfRange when any effective local
//     waterline leaves the measured grid span, ErrDegenerateGeometry on
//     zero volume or waterplane, ErrNumericalInstability on NaN/Inf or
//     negative integrals. No silent defaults.
//   - Longitudinal centers (LCB, LCF) are reported relative to
//     midships, positive forward; trim is an angle in radians, positive
//     bow-down (deeper forward).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydrostat/hydro"
//
//	opts := hydro.DefaultOptions()
//	opts.Trim = 0.005 // rad
//	opts.VCG = 4.2    // m above baseline → GMt/GMl populated
//	res, err := hydro.Compute(g, pp, 3.75, opts)
//
// The hull is consumed through the HullData capability, satisfied by
// *hull.Geometry; the quadrature rule through integrate.Integrator. Both
// are swappable without touching the algorithm.
package hydro
