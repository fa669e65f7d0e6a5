// SPDX-License-Identifier: MIT
//
// Package trim solves the flotation equilibrium problem: find the mean
// draft T and trim angle θ at which the hull displaces a target volume with
// its longitudinal center of buoyancy under the target center of gravity.
//
// 🚀 Method
//
//	A damped 2×2 Newton–Raphson iteration on the residual vector
//
//	  R(T, θ) = [ ∇(T, θ) − targetDisplacement,
//	              LCB(T, θ) − targetLCG ]
//
//	with the Jacobian estimated by central finite differences (four extra
//	hydro evaluations per iteration). A full Newton step that leaves the
//	valid waterline range or fails to reduce ‖R‖ is halved a fixed number
//	of times before the damped step is accepted — a deterministic,
//	terminating rule with a bounded worst-case iteration count.
//
// ✨ Failure surface
//
//   - ErrSingularJacobian — |det J| below the numeric threshold; the
//     returned *SolveError carries the last (T, θ), residual and
//     iteration count so the caller can retry from a different guess.
//   - ErrNonConvergence — iteration cap reached; same state payload.
//   - Evaluation failures (hydro.ErrOutOfRange etc.) propagate wrapped in
//     *SolveError when even the most damped step cannot be evaluated.
//
// Iterations within one Solve call are strictly sequential (each step
// depends on the previous residual), but distinct Solve calls share no
// state and may run concurrently.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydrostat/trim"
//
//	sol, err := trim.Solve(g, pp, trim.Target{
//	  Displacement: 5200, // m³
//	  LCG:          -1.8, // m relative midships, positive forward
//	}, trim.DefaultOptions())
//	if err == nil && sol.Converged {
//	  fmt.Println(sol.Draft, sol.Trim)
//	}
//
// Without an explicit initial guess the solver seeds T₀ from the box
// approximation targetDisplacement / (L·B·Cb) and θ₀ = 0.
package trim
