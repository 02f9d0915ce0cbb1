package series

import (
	"fmt"
	"math"
)

// YuleWalker fits an AR(order) model to x by solving the Yule-Walker
// equations with the Durbin-Levinson recursion. It returns coefficients
// ordered most recent lag first, matching x[t] = sum c[k]*x[t-1-k] + e[t],
// and the innovation variance estimate.
func YuleWalker(x []float64, order int) (coeffs []float64, variance float64, err error) {
	if order < 1 || order >= len(x) {
		return nil, 0, fmt.Errorf("order %d for %d samples: %w", order, len(x), ErrInvalidLength)
	}

	acov, err := Autocovariance(x, order)
	if err != nil {
		return nil, 0, err
	}
	if acov[0] == 0 {
		return nil, 0, fmt.Errorf("yule-walker on constant series: %w", ErrSingular)
	}

	phi := make([]float64, order)
	prev := make([]float64, order)
	v := acov[0]

	for k := 1; k <= order; k++ {
		num := acov[k]
		for j := 1; j < k; j++ {
			num -= prev[j-1] * acov[k-j]
		}
		if v <= 0 {
			return nil, 0, fmt.Errorf("non-positive prediction error at order %d: %w", k, ErrSingular)
		}

		kk := num / v
		phi[k-1] = kk
		for j := 1; j < k; j++ {
			phi[j-1] = prev[j-1] - kk*prev[k-j-1]
		}

		v *= 1 - kk*kk
		copy(prev, phi)
	}

	return phi, math.Max(v, 0), nil
}

// PACF returns partial autocorrelations for lags 1..maxLag, the last
// coefficient of each successive Yule-Walker fit.
func PACF(x []float64, maxLag int) ([]float64, error) {
	if maxLag < 1 || maxLag >= len(x) {
		return nil, fmt.Errorf("max lag %d for %d samples: %w", maxLag, len(x), ErrInvalidLength)
	}

	out := make([]float64, maxLag)
	for k := 1; k <= maxLag; k++ {
		phi, _, err := YuleWalker(x, k)
		if err != nil {
			return nil, err
		}
		out[k-1] = phi[k-1]
	}

	return out, nil
}
