// Package series computes time-domain summaries of sampled processes:
// moments, autocovariance, and the Yule-Walker AR fit, plus the variance
// and autocovariance implied by a one-sided spectral density.
package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Summary holds time-domain statistics of a series.
type Summary struct {
	Length     int
	Mean       float64
	Variance   float64 // population
	StdDev     float64
	Skewness   float64
	Kurtosis   float64 // excess
	MeanSquare float64
	Min        float64
	MinPos     int
	Max        float64
	MaxPos     int
}

// Describe computes all statistics in a single pass using Welford's online
// algorithm for the higher-order moments.
func Describe(x []float64) Summary {
	n := len(x)
	if n == 0 {
		return Summary{}
	}

	var (
		mean, m2, m3, m4 float64
		sumSq            float64
		maxVal           = x[0]
		maxPos           int
		minVal           = x[0]
		minPos           int
	)

	for i, v := range x {
		ni := float64(i + 1)
		delta := v - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += v * v

		if v > maxVal {
			maxVal = v
			maxPos = i
		}
		if v < minVal {
			minVal = v
			minPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Summary{
		Length:     n,
		Mean:       mean,
		Variance:   variance,
		StdDev:     math.Sqrt(variance),
		Skewness:   skewness,
		Kurtosis:   kurtosis,
		MeanSquare: sumSq / nf,
		Min:        minVal,
		MinPos:     minPos,
		Max:        maxVal,
		MaxPos:     maxPos,
	}
}

// Moments returns the mean, population variance, skewness, and excess kurtosis
// of the series using Welford's online algorithm for numerical stability.
func Moments(x []float64) (mean, variance, skewness, kurtosis float64) {
	s := Describe(x)
	return s.Mean, s.Variance, s.Skewness, s.Kurtosis
}

// MeanSquare returns (1/n) * sum x[i]^2, the quantity a raw periodogram
// integrates to. Returns 0 for an empty series.
func MeanSquare(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Dot(x, x) / float64(len(x))
}
