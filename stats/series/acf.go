package series

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-psd/dsp/core"
	"github.com/cwbudde/algo-psd/dsp/spectrum"
)

// Autocovariance returns the biased sample autocovariance
//
//	gamma(k) = (1/n) * sum_{t=k}^{n-1} (x[t]-mean)(x[t-k]-mean)
//
// for lags 0..maxLag, with maxLag clamped to n-1. The sums are formed with a
// zero-padded real FFT, so cost is O(n log n) regardless of maxLag.
func Autocovariance(x []float64, maxLag int) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("autocovariance of empty series: %w", ErrInvalidLength)
	}
	if maxLag < 0 {
		return nil, fmt.Errorf("negative lag %d: %w", maxLag, ErrInvalidLength)
	}
	maxLag = min(maxLag, n-1)

	// Padding to >= 2n keeps the circular correlation from wrapping.
	size := core.NextPowerOfTwo(2 * n)
	seq := make([]float64, size)
	mean := Describe(x).Mean
	for i, v := range x {
		seq[i] = v - mean
	}

	fft := fourier.NewFFT(size)
	coeffs := fft.Coefficients(nil, seq)
	for i, c := range coeffs {
		re, im := real(c), imag(c)
		coeffs[i] = complex(re*re+im*im, 0)
	}
	circ := fft.Sequence(nil, coeffs)

	// Sequence scales by size.
	scale := 1 / (float64(size) * float64(n))
	out := make([]float64, maxLag+1)
	for k := range out {
		out[k] = circ[k] * scale
	}

	return out, nil
}

// ACF returns the sample autocorrelation gamma(k)/gamma(0) for lags
// 0..maxLag. A constant series has no defined autocorrelation and yields
// [ErrSingular].
func ACF(x []float64, maxLag int) ([]float64, error) {
	acov, err := Autocovariance(x, maxLag)
	if err != nil {
		return nil, err
	}
	if acov[0] == 0 {
		return nil, fmt.Errorf("acf of constant series: %w", ErrSingular)
	}

	inv := 1 / acov[0]
	for k := range acov {
		acov[k] *= inv
	}

	return acov, nil
}

// TheoreticalVariance integrates a one-sided density sampled on the grid of
// a length-num transform. For the closed-form AR densities this recovers
// the process variance.
func TheoreticalVariance(density []float64, num int) (float64, error) {
	return spectrum.TotalPower(density, num)
}

// TheoreticalAutocovariance returns gamma(k) = integral S(f) cos(kf) df over
// [-pi, pi] for k = 0..maxLag, evaluated on the grid of a length-num
// transform. Lags near num/2 alias; keep maxLag well below it.
func TheoreticalAutocovariance(density []float64, num, maxLag int) ([]float64, error) {
	if num <= 0 || len(density) != spectrum.BinCount(num) {
		return nil, fmt.Errorf("density has %d bins for num=%d: %w", len(density), num, ErrInvalidLength)
	}
	if maxLag < 0 {
		return nil, fmt.Errorf("negative lag %d: %w", maxLag, ErrInvalidLength)
	}

	freqs, err := spectrum.FrequencyGrid(num)
	if err != nil {
		return nil, err
	}

	out := make([]float64, maxLag+1)
	step := 2 * math.Pi / float64(num)
	for lag := range out {
		var sum float64
		for j, s := range density {
			w := 2.0
			if j == 0 || (num%2 == 0 && j == num/2) {
				w = 1
			}
			sum += w * s * math.Cos(float64(lag)*freqs[j])
		}
		out[lag] = step * sum
	}

	return out, nil
}
