package spectrum

import "math"

// WhiteNoisePSD returns the density of unit-variance white noise, 1/(2*pi),
// at every frequency.
func WhiteNoisePSD(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	v := 1 / (2 * math.Pi)
	for i := range out {
		out[i] = v
	}
	return out
}

// AR1PSD returns 1/(2*pi) / (1 + a^2 - 2a*cos f) for the process
// x[t] = a*x[t-1] + e[t] with unit-variance innovations.
func AR1PSD(freqs []float64, a float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = 1 / (2 * math.Pi) / (1 + a*a - 2*a*math.Cos(f))
	}
	return out
}

// AR2PSD returns the density of x[t] = b1*x[t-1] + b2*x[t-2] + e[t]:
//
//	1/(2*pi) / (1 + b1^2 + b2^2 - 2*b1*cos f - 2*b2*cos 2f + 2*b1*b2*cos f)
func AR2PSD(freqs []float64, b1, b2 float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		c1 := math.Cos(f)
		den := 1 + b1*b1 + b2*b2 - 2*b1*c1 - 2*b2*math.Cos(2*f) + 2*b1*b2*c1
		out[i] = 1 / (2 * math.Pi) / den
	}
	return out
}

// ARPSD returns variance / (2*pi*|1 - sum c[k] e^{-i(k+1)f}|^2), the density
// of an AR(p) process with coefficients ordered most recent lag first.
// Empty coefficients yield the white-noise level scaled by variance.
func ARPSD(freqs, coeffs []float64, variance float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		re, im := 1.0, 0.0
		for k, c := range coeffs {
			s, co := math.Sincos(float64(k+1) * f)
			re -= c * co
			im += c * s
		}
		out[i] = variance / (2 * math.Pi * (re*re + im*im))
	}
	return out
}
