package core_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/core"
)

func ExampleFit() {
	padded := make([]float64, 5)
	fmt.Println(core.Fit(padded, []float64{1, 2, 3}), padded)

	truncated := make([]float64, 2)
	fmt.Println(core.Fit(truncated, []float64{1, 2, 3}), truncated)

	// Output:
	// 3 [1 2 3 0 0]
	// 2 [1 2]
}

func ExampleNextPowerOfTwo() {
	fmt.Println(core.NextPowerOfTwo(500), core.IsPowerOfTwo(2048))

	// Output:
	// 512 true
}

func Example_errorKinds() {
	err := fmt.Errorf("estimate: num must be > 0: %d: %w", 0, core.ErrInvalidLength)
	fmt.Println(errors.Is(err, core.ErrInvalidLength))

	// Output:
	// true
}
