package window

import "math"

// Analysis holds smoothing figures of merit of a kernel applied across
// periodogram bins.
type Analysis struct {
	// Length is the number of taps.
	Length int
	// VarianceRatio is sum(w^2) for the normalized kernel: the factor by which
	// smoothing shrinks the variance of independent, equal-variance bins.
	VarianceRatio float64
	// EquivalentBins is 1/VarianceRatio, the number of independent bins the
	// kernel effectively averages.
	EquivalentBins float64
	// HalfHeightWidth is the full width at half maximum of the kernel in bins:
	// the width a single-bin spectral line is smeared to.
	HalfHeightWidth float64
}

// Analyze computes smoothing properties of the given weights. The weights
// need not be normalized; a zero-sum kernel yields the zero Analysis.
func Analyze(weights []float64) Analysis {
	n := len(weights)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	if sum == 0 {
		return Analysis{}
	}

	sumSq := 0.0
	for _, w := range weights {
		v := w / sum
		sumSq += v * v
	}

	return Analysis{
		Length:          n,
		VarianceRatio:   sumSq,
		EquivalentBins:  1 / sumSq,
		HalfHeightWidth: halfHeightWidth(weights),
	}
}

// ResolutionRad converts the half-height width to radians per sample on the
// frequency grid of a length-num transform.
func (a Analysis) ResolutionRad(num int) float64 {
	if num <= 0 {
		return math.NaN()
	}

	return a.HalfHeightWidth * 2 * math.Pi / float64(num)
}

// halfHeightWidth measures the distance between the outermost half-maximum
// crossings, interpolating linearly between taps. A kernel that never drops
// below half its peak spans its full length.
func halfHeightWidth(w []float64) float64 {
	peak, peakIdx := w[0], 0
	for i, v := range w {
		if v > peak {
			peak, peakIdx = v, i
		}
	}

	if peak <= 0 {
		return 0
	}

	half := peak / 2

	left, leftFound := 0.0, false
	for i := peakIdx; i > 0; i-- {
		if w[i-1] < half {
			left = float64(i) - (w[i]-half)/(w[i]-w[i-1])
			leftFound = true
			break
		}
	}

	right, rightFound := float64(len(w)-1), false
	for i := peakIdx; i < len(w)-1; i++ {
		if w[i+1] < half {
			right = float64(i) + (w[i]-half)/(w[i]-w[i+1])
			rightFound = true
			break
		}
	}

	// Taps are bin centres, so an edge that never crosses half height extends
	// half a bin past the outermost tap.
	if !leftFound {
		left -= 0.5
	}
	if !rightFound {
		right += 0.5
	}

	return right - left
}
