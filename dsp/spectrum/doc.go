// Package spectrum estimates power spectral densities of real sequences and
// evaluates the closed-form spectra of white noise and AR processes.
//
// Frequencies are radial, in radians per sample over [0, pi]. Densities use
// the 1/(2*pi) convention, so unit-variance white noise has a flat density
// of 1/(2*pi) and integrating a density over [-pi, pi] yields the variance.
//
// The estimator is the periodogram |F(k)|^2 / (2*pi*num) of the input
// zero-padded or truncated to num samples, optionally smoothed across
// frequency bins with a normalized window kernel from package window.
// Dividing by num means zero padding lowers the level by len(x)/num;
// NormalizeSamples divides by the fitted sample count instead.
package spectrum
