package signal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-psd/internal/polyroot"
)

var defaultGenerator = NewGenerator()

// GenerateAR returns an AR path from the package generator, treating T as the
// total step count including the p burn-in steps: the result has T-p samples.
// Use [Generator.AR] to get exactly T samples.
func GenerateAR(T int, coeffs []float64) ([]float64, error) {
	return defaultGenerator.ARTotal(T, coeffs)
}

// ARTotal returns T-p samples of the AR process, where p = len(coeffs).
// T <= p leaves no sample to return and fails with ErrInvalidLength.
func (g *Generator) ARTotal(T int, coeffs []float64) ([]float64, error) {
	p := len(coeffs)
	if T <= p {
		return nil, fmt.Errorf("ar total length %d must exceed order %d: %w", T, p, ErrInvalidLength)
	}
	return g.AR(T-p, coeffs)
}

// AR returns exactly n samples of the process
//
//	x[t] = c[0]*x[t-1] + ... + c[p-1]*x[t-p] + stdDev*e[t]
//
// started from p zero burn-in samples that are discarded. Coefficients that
// violate stationarity are logged as a warning and generated anyway; a
// diverging path surfaces as huge or non-finite samples, not as an error.
func (g *Generator) AR(n int, coeffs []float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ar samples must be > 0: %d: %w", n, ErrInvalidLength)
	}

	if err := CheckStationary(coeffs); err != nil {
		g.logger.Warn("AR process may diverge",
			zap.Float64s("coefficients", coeffs),
			zap.Error(err))
	}

	p := len(coeffs)
	c := append([]float64(nil), coeffs...)

	eps := make([]float64, n)
	draw(g.src, eps)

	buf := make([]float64, n+p)
	for t := p; t < n+p; t++ {
		acc := g.stdDev * eps[t-p]
		for k := 1; k <= p; k++ {
			acc += c[k-1] * buf[t-k]
		}
		buf[t] = acc
	}

	return buf[p:], nil
}

// CheckStationary reports whether the AR process with the given coefficients
// is stationary. It returns nil when every root of the characteristic
// polynomial lies strictly inside the unit circle, and an error wrapping
// ErrNonStationary otherwise. Zero coefficients (white noise) are stationary.
func CheckStationary(coeffs []float64) error {
	roots, err := polyroot.CharacteristicRoots(coeffs)
	if err != nil {
		return fmt.Errorf("stationarity check: %w", err)
	}

	// Roots found within rounding of the unit circle count as unit roots.
	const tol = 1e-9
	if m := polyroot.MaxModulus(roots); m >= 1-tol {
		return fmt.Errorf("largest characteristic root modulus %.6g >= 1: %w", m, ErrNonStationary)
	}

	return nil
}
