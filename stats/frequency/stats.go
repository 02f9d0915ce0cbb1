// Package frequency summarizes one-sided power spectral densities sampled on
// a radial frequency grid.
package frequency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-psd/dsp/core"
)

// Stats holds shape descriptors of a density. Frequencies are in radians
// per sample.
//
//nolint:revive
type Stats struct {
	BinCount  int
	DC        float64 // density at f = 0
	Peak      float64
	Peak_dB   float64
	PeakBin   int
	PeakFreq  float64
	Min       float64
	MinBin    int
	Mean      float64
	Centroid  float64 // sum(f*P) / sum(P)
	Spread    float64 // density-weighted standard deviation around Centroid
	Flatness  float64 // geometric / arithmetic mean, DC excluded, 0..1
	Rolloff   float64 // frequency below which 85% of the density lies
	Bandwidth float64 // half-power width around the peak
}

// Calculate computes all descriptors of density evaluated at freqs.
// The slices must have equal length.
func Calculate(density, freqs []float64) (Stats, error) {
	n := len(density)
	if n != len(freqs) {
		return Stats{}, fmt.Errorf("density has %d bins, grid has %d: %w", n, len(freqs), core.ErrInvalidLength)
	}
	if n == 0 {
		return Stats{Peak_dB: math.Inf(-1)}, nil
	}

	s := Stats{
		BinCount: n,
		DC:       density[0],
		Peak:     density[0],
		Min:      density[0],
	}

	var sum float64
	for i, v := range density {
		sum += v
		if v > s.Peak {
			s.Peak = v
			s.PeakBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}

	s.Peak_dB = core.LinearPowerToDB(s.Peak)
	s.PeakFreq = freqs[s.PeakBin]
	s.Mean = sum / float64(n)
	s.Centroid = centroid(density, freqs, sum)
	s.Spread = spread(density, freqs, s.Centroid, sum)
	s.Flatness = Flatness(density)
	s.Rolloff = rolloff(density, freqs, 0.85, sum)
	s.Bandwidth = Bandwidth(density, freqs)

	return s, nil
}

// Centroid returns the density-weighted mean frequency.
func Centroid(density, freqs []float64) float64 {
	if len(density) != len(freqs) {
		return 0
	}
	var sum float64
	for _, v := range density {
		sum += v
	}
	return centroid(density, freqs, sum)
}

func centroid(density, freqs []float64, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	var weighted float64
	for i, v := range density {
		weighted += freqs[i] * v
	}
	return weighted / sum
}

func spread(density, freqs []float64, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	var weighted float64
	for i, v := range density {
		d := freqs[i] - cent
		weighted += d * d * v
	}
	return math.Sqrt(weighted / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
//	Flatness = exp(mean(log P_i)) / mean(P_i)
//
// The DC bin is excluded. Any zero bin makes the geometric mean, and so the
// flatness, zero.
func Flatness(density []float64) float64 {
	if len(density) < 2 {
		return 0
	}

	bins := density[1:]
	mean := stat.Mean(bins, nil)
	if mean <= 0 {
		return 0
	}
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
	}

	return stat.GeometricMean(bins, nil) / mean
}

// Rolloff returns the frequency below which the given fraction of the summed
// density lies. The fraction is clamped to [0, 1].
func Rolloff(density, freqs []float64, fraction float64) float64 {
	if len(density) != len(freqs) {
		return 0
	}
	var sum float64
	for _, v := range density {
		sum += v
	}
	return rolloff(density, freqs, fraction, sum)
}

func rolloff(density, freqs []float64, fraction, sum float64) float64 {
	n := len(density)
	if n == 0 || sum == 0 {
		return 0
	}
	threshold := core.Clamp(fraction, 0, 1) * sum
	var cum float64
	for i, v := range density {
		cum += v
		if cum >= threshold {
			return freqs[i]
		}
	}
	return freqs[n-1]
}

// Bandwidth returns the width of the region around the peak where the
// density stays above half the peak value, with linear interpolation
// between bins. The region is bounded by the grid ends.
func Bandwidth(density, freqs []float64) float64 {
	n := len(density)
	if n < 2 || n != len(freqs) {
		return 0
	}

	peakBin := 0
	for i, v := range density {
		if v > density[peakBin] {
			peakBin = i
		}
	}
	peak := density[peakBin]
	if peak <= 0 {
		return 0
	}

	threshold := peak / 2

	lower := freqs[0]
	for i := peakBin; i >= 1; i-- {
		if density[i-1] <= threshold && density[i] > threshold {
			lower = interpFreq(freqs[i-1], freqs[i], density[i-1], density[i], threshold)
			break
		}
	}

	upper := freqs[n-1]
	for i := peakBin; i < n-1; i++ {
		if density[i+1] <= threshold && density[i] > threshold {
			upper = interpFreq(freqs[i], freqs[i+1], density[i], density[i+1], threshold)
			break
		}
	}

	return max(upper-lower, 0)
}

func interpFreq(fLow, fHigh, pLow, pHigh, threshold float64) float64 {
	denom := pHigh - pLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - pLow) / denom
	return fLow + t*(fHigh-fLow)
}

// BandPower integrates a one-sided density over lo <= |f| <= hi with the
// rectangle rule on a uniform grid, counting both signs of frequency. Over
// the full band [0, pi] it matches the total power up to the end-bin
// weights.
func BandPower(density, freqs []float64, lo, hi float64) (float64, error) {
	n := len(density)
	if n != len(freqs) || n < 2 {
		return 0, fmt.Errorf("band power needs matching grids of >= 2 bins (%d, %d): %w", n, len(freqs), core.ErrInvalidLength)
	}
	if hi < lo {
		lo, hi = hi, lo
	}

	df := freqs[1] - freqs[0]
	var sum float64
	for i, v := range density {
		if freqs[i] >= lo && freqs[i] <= hi {
			sum += v
		}
	}

	return 2 * df * sum, nil
}
