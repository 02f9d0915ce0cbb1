package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-psd/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not [core.NearlyEqual] within eps: absolute below
// magnitude 1, relative above. eps <= 0 selects the default of 1e-12.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v, eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireSliceRelative fails t if any element deviates from want by more
// than rel*|want|, or by abs when |want| is tiny.
func RequireSliceRelative(t *testing.T, got, want []float64, rel, abs float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > abs && diff > rel*math.Abs(want[i]) {
			t.Fatalf("index %d: got %v, want %v (rel diff %v > %v)", i, got[i], want[i], diff/math.Abs(want[i]), rel)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MeanSquare returns (1/len(x)) * sum x[i]^2, or 0 for empty input.
func MeanSquare(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var s float64
	for _, v := range x {
		s += v * v
	}
	return s / float64(len(x))
}
