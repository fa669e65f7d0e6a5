package hydro_test

import (
	"fmt"

	"github.com/katalvlaran/hydrostat/hull"
	"github.com/katalvlaran/hydrostat/hydro"
)

// exampleBarge builds a rectangular barge: L=100 m, B=20 m, depth 10 m.
// Every closed-form value below follows from box geometry.
func exampleBarge() (*hull.Geometry, hull.Particulars) {
	stations := make([]float64, 11)
	for i := range stations {
		stations[i] = -50 + 10*float64(i)
	}
	waterlines := make([]float64, 11)
	for j := range waterlines {
		waterlines[j] = float64(j)
	}
	offsets := make([][]float64, len(stations))
	for i := range offsets {
		row := make([]float64, len(waterlines))
		for j := range row {
			row[j] = 10
		}
		offsets[i] = row
	}
	g, err := hull.New(stations, waterlines, offsets)
	if err != nil {
		panic(err)
	}
	return g, hull.Particulars{LengthPP: 100, Breadth: 20, DesignDraft: 5, BlockCoefficient: 1}
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Upright hydrostatics of a rectangular barge at T = 4 m.
//	Box closed forms: ∇ = L·B·T, KB = T/2, BMt = B²/(12·T).
//
// Options:
//   - VCG = 3 m → GMt = KB + BMt − VCG
//
// Complexity: O(S·W) per evaluation (S stations × W waterline samples)
func ExampleCompute() {
	g, pp := exampleBarge()

	opts := hydro.DefaultOptions()
	opts.VCG = 3

	res, err := hydro.Compute(g, pp, 4, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("volume=%.0f\nKB=%.3f\nBMt=%.3f\nGMt=%.3f\nCb=%.3f\n",
		res.Volume, res.KB, res.BMT, res.GMT, res.Cb)
	// Output:
	// volume=8000
	// KB=2.000
	// BMt=8.333
	// GMt=7.333
	// Cb=1.000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute_trimmed
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same barge trimmed by the stern. For a wall-sided hull the centre
//	of buoyancy shifts by BMl·tan(θ) while the volume stays L·B·Tm.
//
// Options:
//   - Trim = 0.01 rad (bow-down positive)
func ExampleCompute_trimmed() {
	g, pp := exampleBarge()

	opts := hydro.DefaultOptions()
	opts.Trim = 0.01

	res, err := hydro.Compute(g, pp, 5, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("volume=%.0f\nLCB=%.4f\n", res.Volume, res.LCB)
	// Output:
	// volume=10000
	// LCB=1.6667
}
