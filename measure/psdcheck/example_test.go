package psdcheck_test

import (
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/spectrum"
	"github.com/cwbudde/algo-psd/measure/psdcheck"
)

func ExampleCompare() {
	freqs, _ := spectrum.FrequencyGrid(6)
	theory := []float64{1, 1, 1, 1}
	estimate := []float64{1.1, 0.5, 1, 2}

	res, _ := psdcheck.Compare(freqs, estimate, theory, psdcheck.DefaultConfig())
	fmt.Printf("max=%.2f mean=%.2f within=%.2f worst=%d\n",
		res.MaxRelError, res.MeanRelError, res.WithinTolerance, res.WorstBin)
	// Output:
	// max=1.00 mean=0.40 within=0.50 worst=3
}
