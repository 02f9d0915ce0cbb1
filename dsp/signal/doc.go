// Package signal generates the synthetic test signals used to validate
// spectral estimators: Gaussian white noise, AR(p) sample paths, and
// deterministic sinusoids.
//
// AR coefficients are ordered most-recent-lag first: c[0] weights x[t-1],
// c[k-1] weights x[t-k]. Every path starts from p zero-valued burn-in samples
// that are never returned.
//
// Two length contracts are offered. [Generator.AR] returns exactly the
// requested number of samples. [Generator.ARTotal] and [GenerateAR] treat the
// requested length as including the p burn-in steps and return T-p samples.
package signal
