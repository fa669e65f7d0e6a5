package curves

import (
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hydrostat/hull"
	"github.com/katalvlaran/hydrostat/hydro"
)

// Generate evaluates the hydrostatics of hull h at steps evenly spaced
// drafts across dr (both ends included) and returns the resulting curve in
// draft order. Per-draft failures become explicit failure markers on their
// points; the batch itself fails only on invalid arguments.
//
// Concurrency: drafts are independent, so they are dispatched to a worker
// pool bounded by opts.Workers. Results land by index — completion order
// never affects the output.
//
// Errors: ErrBadRange, ErrTooFewSteps.
func Generate(h hydro.HullData, pp hull.Particulars, dr Range, steps int, opts Options) (Curve, error) {
	if err := validateRange(dr); err != nil {
		return nil, err
	}
	if steps < 2 {
		return nil, ErrTooFewSteps
	}

	curve := make(Curve, steps)
	memo := newMemo()
	log := opts.Logger

	var g errgroup.Group
	g.SetLimit(workers(opts))
	for idx := 0; idx < steps; idx++ {
		idx := idx
		g.Go(func() error {
			d := draftAt(dr, idx, steps)
			res, err := memo.compute(h, pp, d, opts.Hydro)
			curve[idx] = Point{Draft: d, Result: res, Err: err}
			if err != nil {
				log.Debug().Float64("draft", d).Err(err).Msg("curve point failed")
			}

			return nil
		})
	}
	_ = g.Wait() // workers record failures per point and never return errors

	log.Debug().Int("steps", steps).
		Float64("min", dr.Min).Float64("max", dr.Max).
		Msg("hydrostatic curve generated")

	return curve, nil
}

// Bonjean computes sectional-area curves for every station of h: at steps
// evenly spaced waterline elevations across dr, the full submerged area of
// each section. Follows the same skip-and-continue policy as Generate.
//
// Errors: ErrBadRange, ErrTooFewSteps.
func Bonjean(h hydro.HullData, dr Range, steps int, opts Options) ([]BonjeanCurve, error) {
	if err := validateRange(dr); err != nil {
		return nil, err
	}
	if steps < 2 {
		return nil, ErrTooFewSteps
	}

	out := make([]BonjeanCurve, h.NumStations())

	var g errgroup.Group
	g.SetLimit(workers(opts))
	for i := 0; i < h.NumStations(); i++ {
		i := i
		g.Go(func() error {
			bc := BonjeanCurve{
				Station: i,
				X:       h.Station(i),
				Points:  make([]BonjeanPoint, steps),
			}
			for idx := 0; idx < steps; idx++ {
				z := draftAt(dr, idx, steps)
				area, err := hydro.SectionArea(h, i, z, opts.Hydro.Integrator)
				bc.Points[idx] = BonjeanPoint{Draft: z, Area: area, Err: err}
			}
			out[i] = bc

			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

// draftAt returns the idx-th of steps evenly spaced drafts over dr. The
// endpoints are returned exactly, not via accumulation, so Min and Max are
// always present in the batch.
func draftAt(dr Range, idx, steps int) float64 {
	switch idx {
	case 0:
		return dr.Min
	case steps - 1:
		return dr.Max
	default:
		return dr.Min + (dr.Max-dr.Min)*float64(idx)/float64(steps-1)
	}
}

func validateRange(dr Range) error {
	if math.IsNaN(dr.Min) || math.IsNaN(dr.Max) ||
		math.IsInf(dr.Min, 0) || math.IsInf(dr.Max, 0) || dr.Min >= dr.Max {
		return ErrBadRange
	}

	return nil
}

func workers(opts Options) int {
	if opts.Workers > 0 {
		return opts.Workers
	}

	return runtime.NumCPU()
}

// memo is the call-scoped evaluation cache keyed by (draft, trim, heel).
// It lives exactly as long as one batch: unrelated hulls and batches can
// never observe each other's entries.
type memo struct {
	mu      sync.Mutex
	entries map[memoKey]memoEntry
}

type memoKey struct{ draft, trim, heel float64 }

type memoEntry struct {
	res hydro.Result
	err error
}

func newMemo() *memo {
	return &memo{entries: make(map[memoKey]memoEntry)}
}

func (m *memo) compute(h hydro.HullData, pp hull.Particulars, draft float64, opts hydro.Options) (hydro.Result, error) {
	key := memoKey{draft: draft, trim: opts.Trim, heel: opts.Heel}

	m.mu.Lock()
	e, ok := m.entries[key]
	m.mu.Unlock()
	if ok {
		return e.res, e.err
	}

	res, err := hydro.Compute(h, pp, draft, opts)

	m.mu.Lock()
	m.entries[key] = memoEntry{res: res, err: err}
	m.mu.Unlock()

	return res, err
}
