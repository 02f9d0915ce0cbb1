// Package psdcheck validates spectral estimates against closed-form AR
// densities.
//
// A [Scenario] names an AR process and the estimator settings used to
// analyse it. [Run] draws one realization, estimates its raw and smoothed
// periodograms, evaluates the theoretical density on the same grid, and
// reports how far the estimates stray from it with [Compare].
package psdcheck
