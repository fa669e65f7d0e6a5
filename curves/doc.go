// Package curves batches hydrostatic evaluations across a draft range into
// property curves: the classic hydrostatic table (volume, centers,
// metacentrics, coefficients vs draft) and per-station Bonjean curves
// (sectional area vs waterline).
//
// ✨ Policy:
//   - Skip-and-continue: a failure at one draft never aborts the batch.
//     The failing point carries its error (errors.Is-matchable against the
//     hydro sentinels) and the remaining drafts are still computed. Only
//     argument validation (ErrBadRange, ErrTooFewSteps) fails a call.
//   - Bounded parallelism: independent drafts are dispatched to a worker
//     pool capped at Options.Workers (default: one per CPU). Points are
//     reassembled by draft index, so the curve is bit-identical whether
//     it was computed sequentially or in parallel.
//   - Call-scoped memoization keyed by (draft, trim, heel). The memo dies
//     with the call; nothing is ever cached process-wide, so concurrent
//     batches for unrelated hulls cannot interfere.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hydrostat/curves"
//
//	opts := curves.DefaultOptions()
//	opts.Hydro.VCG = 4.2
//	table, err := curves.Generate(g, pp, curves.Range{Min: 0.5, Max: 6.0}, 23, opts)
//	for _, pt := range table {
//	  if pt.Err != nil { continue } // explicit failure marker
//	  fmt.Println(pt.Draft, pt.Result.Volume)
//	}
//
// An optional zerolog.Logger in Options traces per-point failures and
// batch progress; the default is a no-op logger.
package curves
