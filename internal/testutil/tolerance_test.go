package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSliceNearlyEqualScalesWithMagnitude(t *testing.T) {
	// 1e6 and 1e6+0.5 differ by 5e-7 relative, far above 1e-6 absolute.
	RequireSliceNearlyEqual(t, []float64{1e6 + 0.5, 0.25}, []float64{1e6, 0.25 + 5e-7}, 1e-6)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2}, 0)
}

func TestRequireSliceRelative(t *testing.T) {
	RequireSliceRelative(t, []float64{100, 1e-20}, []float64{101, 0}, 0.02, 1e-12)
}

func TestMeanSquare(t *testing.T) {
	if got := MeanSquare([]float64{1, -3}); got != 5 {
		t.Fatalf("MeanSquare = %v, want 5", got)
	}
	if got := MeanSquare(nil); got != 0 {
		t.Fatalf("MeanSquare(nil) = %v, want 0", got)
	}
}
