package spectrum

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-psd/dsp/window"
)

// Smooth convolves power with a normalized kernel of the given kind and odd
// length, returning a slice of the same length as power.
//
// Out-of-range taps are reflected at both edges without repeating the edge
// sample (p[2], p[1], p[0], p[1], p[2], ...). The reflection is periodic, so
// kernels wider than the input are allowed and a single-bin input maps
// every tap onto that bin.
func Smooth(power []float64, length int, kind window.Type) ([]float64, error) {
	if err := validateWindowLength(length); err != nil {
		return nil, err
	}

	weights, err := window.Kernel(kind, length)
	if err != nil {
		return nil, err
	}

	n := len(power)
	if n == 0 {
		return []float64{}, nil
	}

	half := length / 2
	ext := make([]float64, n+length-1)
	for m := range ext {
		ext[m] = power[mirrorIndex(m-half, n)]
	}

	out := make([]float64, n)
	tmp := make([]float64, n)
	for j, w := range weights {
		if w == 0 {
			continue
		}
		vecmath.ScaleBlock(tmp, ext[j:j+n], w)
		vecmath.AddBlockInPlace(out, tmp)
	}

	return out, nil
}

// mirrorIndex folds i into [0, n) by reflection about 0 and n-1.
func mirrorIndex(i, n int) int {
	if n <= 1 {
		return 0
	}

	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}

	return i
}
