// Package hydrostat is a ship hydrostatics computation engine: give it a
// hull described as a grid of half-breadth offsets and it computes the
// vessel's hydrostatic properties at any draft, trim and heel, generates
// property-vs-draft curves, and solves the flotation equilibrium for a
// target displacement and center of gravity.
//
// 🚀 What is hydrostat?
//
//	A pure-computation library for naval-architecture numerics:
//		• Offsets grid: immutable, validated hull geometry (hull/)
//		• Quadrature: composite Simpson with 3/8 tail and a quadratic-fit
//		  rule for non-uniform grids (integrate/)
//		• Single evaluation: volume, LCB/TCB/KB, waterplane area and
//		  inertias, BM/GM, form coefficients (hydro/)
//		• Batched evaluation: hydrostatic tables and Bonjean curves with
//		  skip-and-continue failure markers (curves/)
//		• Equilibrium: damped Newton–Raphson draft/trim solver (trim/)
//
// ✨ Why choose hydrostat?
//
//   - Deterministic numerics – identical inputs, bit-identical results
//   - Pure and stateless – concurrent evaluation needs no locking
//   - Strict failure surface – sentinel errors, no silent defaults
//   - Swappable capabilities – hull provider and quadrature rule are
//     interfaces, the algorithms never change
//
// Everything is organized under five subpackages:
//
//	hull/      — offsets grid, principal particulars, interpolation
//	integrate/ — 1-D composite quadrature + moment integrals
//	hydro/     — hydrostatics at one draft/trim/heel
//	curves/    — property curves and Bonjean curves across a draft range
//	trim/      — equilibrium draft/trim solver for a loadcase target
//
// Quick ASCII example — a half-breadth offsets grid:
//
//	          waterlines (z) →
//	stations   0.0   1.0   2.0   3.0
//	(x) ↓    ┌───────────────────────┐
//	  0.0    │ 0.0   1.2   2.6   3.1 │
//	 30.0    │ 0.0   4.0   5.9   6.0 │  half-breadths, metres
//	 60.0    │ 0.0   4.1   6.0   6.0 │
//	 90.0    │ 0.0   1.0   2.2   2.9 │
//	         └───────────────────────┘
//
// Persistence, transport formats and visualization are deliberately out of
// scope: external collaborators supply the geometry and loadcase targets
// and consume the computed values.
//
//	go get github.com/katalvlaran/hydrostat
package hydrostat
