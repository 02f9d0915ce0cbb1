package series

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-psd/dsp/signal"
	"github.com/cwbudde/algo-psd/dsp/spectrum"
	"github.com/cwbudde/algo-psd/internal/testutil"
)

func directAutocovariance(x []float64, maxLag int) []float64 {
	n := len(x)
	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	out := make([]float64, maxLag+1)
	for k := range out {
		var sum float64
		for i := k; i < n; i++ {
			sum += (x[i] - mean) * (x[i-k] - mean)
		}
		out[k] = sum / float64(n)
	}
	return out
}

func TestAutocovarianceMatchesDirect(t *testing.T) {
	for _, n := range []int{1, 2, 7, 37, 128} {
		x := testutil.GaussianNoise(uint64(n), 1, n)
		maxLag := min(10, n-1)

		got, err := Autocovariance(x, maxLag)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		testutil.RequireSliceNearlyEqual(t, got, directAutocovariance(x, maxLag), 1e-12)
	}
}

func TestAutocovarianceClampsLag(t *testing.T) {
	got, err := Autocovariance([]float64{1, 2, 3, 4, 5}, 10)
	if err != nil {
		t.Fatalf("Autocovariance: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len=%d want 5", len(got))
	}
}

func TestAutocovarianceErrors(t *testing.T) {
	if _, err := Autocovariance(nil, 3); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("empty: err=%v", err)
	}
	if _, err := Autocovariance([]float64{1, 2}, -1); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("negative lag: err=%v", err)
	}
}

func TestACF(t *testing.T) {
	x := testutil.GaussianNoise(12, 3, 500)

	acf, err := ACF(x, 5)
	if err != nil {
		t.Fatalf("ACF: %v", err)
	}
	if acf[0] != 1 {
		t.Fatalf("acf[0]=%v want 1", acf[0])
	}
	for k := 1; k < len(acf); k++ {
		if math.Abs(acf[k]) > 0.2 {
			t.Errorf("white noise acf[%d]=%v", k, acf[k])
		}
	}

	if _, err := ACF(testutil.DC(1, 10), 3); !errors.Is(err, ErrSingular) {
		t.Fatalf("constant series: err=%v", err)
	}
}

func TestACFOfAR1(t *testing.T) {
	g := signal.NewGenerator(signal.WithSeed(3))
	x, err := g.AR(50000, []float64{0.7})
	if err != nil {
		t.Fatalf("AR: %v", err)
	}

	acf, err := ACF(x, 3)
	if err != nil {
		t.Fatalf("ACF: %v", err)
	}
	for k := 1; k <= 3; k++ {
		want := math.Pow(0.7, float64(k))
		if math.Abs(acf[k]-want) > 0.03 {
			t.Errorf("acf[%d]=%v want %v", k, acf[k], want)
		}
	}
}

func TestTheoreticalVariance(t *testing.T) {
	const num = 2048

	freqs, err := spectrum.FrequencyGrid(num)
	if err != nil {
		t.Fatalf("FrequencyGrid: %v", err)
	}

	got, err := TheoreticalVariance(spectrum.AR1PSD(freqs, 0.7), num)
	if err != nil {
		t.Fatalf("TheoreticalVariance: %v", err)
	}
	if want := 1 / 0.51; !almostEqual(got, want, 1e-9) {
		t.Fatalf("variance %v want %v", got, want)
	}
}

func TestTheoreticalAutocovariance(t *testing.T) {
	const num = 4096

	freqs, err := spectrum.FrequencyGrid(num)
	if err != nil {
		t.Fatalf("FrequencyGrid: %v", err)
	}

	got, err := TheoreticalAutocovariance(spectrum.AR1PSD(freqs, 0.7), num, 5)
	if err != nil {
		t.Fatalf("TheoreticalAutocovariance: %v", err)
	}
	for k, v := range got {
		want := math.Pow(0.7, float64(k)) / 0.51
		if !almostEqual(v, want, 1e-9) {
			t.Errorf("gamma(%d)=%v want %v", k, v, want)
		}
	}

	if _, err := TheoreticalAutocovariance(make([]float64, 3), num, 2); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("bin mismatch: err=%v", err)
	}
}
