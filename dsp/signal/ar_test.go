package signal

import (
	"errors"
	"math"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/stat"
)

func TestGenerateARLengthContract(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		coeffs []float64
		want   int
	}{
		{name: "white", total: 500, coeffs: nil, want: 500},
		{name: "ar1", total: 500, coeffs: []float64{0.7}, want: 499},
		{name: "ar2", total: 500, coeffs: []float64{0.3, -0.6}, want: 498},
		{name: "minimal", total: 3, coeffs: []float64{0.3, -0.6}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := GenerateAR(tt.total, tt.coeffs)
			if err != nil {
				t.Fatalf("GenerateAR() error = %v", err)
			}
			if len(x) != tt.want {
				t.Fatalf("len = %d, want %d", len(x), tt.want)
			}
		})
	}
}

func TestARExactLength(t *testing.T) {
	g := NewGenerator(WithSeed(3))
	x, err := g.AR(500, []float64{0.3, -0.6})
	if err != nil {
		t.Fatalf("AR() error = %v", err)
	}
	if len(x) != 500 {
		t.Fatalf("len = %d, want 500", len(x))
	}
}

func TestARInvalidLength(t *testing.T) {
	g := NewGenerator()

	if _, err := g.ARTotal(2, []float64{0.3, -0.6}); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("ARTotal(T=p) error = %v, want ErrInvalidLength", err)
	}
	if _, err := g.ARTotal(1, []float64{0.3, -0.6}); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("ARTotal(T<p) error = %v, want ErrInvalidLength", err)
	}
	if _, err := g.AR(0, []float64{0.5}); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("AR(0) error = %v, want ErrInvalidLength", err)
	}
	if _, err := g.GaussianNoise(-1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("GaussianNoise(-1) error = %v, want ErrInvalidLength", err)
	}
}

// fixedSource replays a fixed innovation sequence.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) NormFloat64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func TestARRecursion(t *testing.T) {
	eps := []float64{1, 0.5, -1, 2, 0}
	g := NewGenerator(WithSource(&fixedSource{vals: eps}))

	x, err := g.AR(5, []float64{0.5, -0.25})
	if err != nil {
		t.Fatal(err)
	}

	// Burn-in is zero, so the path starts directly from the innovations.
	want := make([]float64, 5)
	for n := range want {
		v := eps[n]
		if n >= 1 {
			v += 0.5 * want[n-1]
		}
		if n >= 2 {
			v -= 0.25 * want[n-2]
		}
		want[n] = v
	}

	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-15 {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestARStdDevScalesInnovations(t *testing.T) {
	g := NewGenerator(WithSource(&fixedSource{vals: []float64{1, 1, 1}}), WithStdDev(2))

	x, err := g.AR(3, []float64{0.5})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{2, 3, 3.5}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestARDeterministicSeed(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).AR(64, []float64{0.7})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(WithSeed(42)).AR(64, []float64{0.7})
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("mismatch at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestARSuccessiveCallsDiffer(t *testing.T) {
	g := NewGenerator(WithSeed(7))
	a, _ := g.AR(16, []float64{0.7})
	b, _ := g.AR(16, []float64{0.7})

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("successive paths should be independent")
	}
}

func TestAR1SampleVariance(t *testing.T) {
	// Var x = 1/(1-a^2) for unit innovations.
	const a = 0.7
	g := NewGenerator(WithSeed(11))
	x, err := g.AR(200000, []float64{a})
	if err != nil {
		t.Fatal(err)
	}

	want := 1 / (1 - a*a)
	if got := stat.Variance(x, nil); math.Abs(got-want)/want > 0.05 {
		t.Fatalf("variance = %v, want ~%v", got, want)
	}

	// Lag-one autocorrelation of AR(1) equals a.
	if got := stat.Correlation(x[1:], x[:len(x)-1], nil); math.Abs(got-a) > 0.02 {
		t.Fatalf("lag-1 correlation = %v, want ~%v", got, a)
	}
}

func TestCheckStationary(t *testing.T) {
	tests := []struct {
		name       string
		coeffs     []float64
		stationary bool
	}{
		{name: "white", coeffs: nil, stationary: true},
		{name: "ar1", coeffs: []float64{0.7}, stationary: true},
		{name: "ar2", coeffs: []float64{0.3, -0.6}, stationary: true},
		{name: "random-walk", coeffs: []float64{1}, stationary: false},
		{name: "explosive", coeffs: []float64{1.1}, stationary: false},
		{name: "ar2-unit-root", coeffs: []float64{0.5, 0.5}, stationary: false},
		{name: "ar2-outside", coeffs: []float64{0.2, 1.1}, stationary: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStationary(tt.coeffs)
			if tt.stationary && err != nil {
				t.Fatalf("CheckStationary() = %v, want nil", err)
			}
			if !tt.stationary && !errors.Is(err, ErrNonStationary) {
				t.Fatalf("CheckStationary() = %v, want ErrNonStationary", err)
			}
		})
	}
}

func TestNonStationaryWarnsButGenerates(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	g := NewGenerator(WithLogger(zap.New(core)))

	x, err := g.AR(2000, []float64{1.05})
	if err != nil {
		t.Fatalf("AR() error = %v, want generation to proceed", err)
	}
	if len(x) != 2000 {
		t.Fatalf("len = %d, want 2000", len(x))
	}

	if logs.Len() != 1 {
		t.Fatalf("warnings = %d, want 1", logs.Len())
	}

	if math.Abs(x[len(x)-1]) < 1e6 {
		t.Fatalf("explosive path stayed small: %v", x[len(x)-1])
	}

	if _, err := g.AR(10, []float64{0.5}); err != nil {
		t.Fatal(err)
	}
	if logs.Len() != 1 {
		t.Fatal("stationary coefficients must not warn")
	}
}

func TestNormalSourceConcurrentFill(t *testing.T) {
	src := NewNormalSource(5)

	const workers, block = 8, 256
	out := make([][]float64, workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[w] = make([]float64, block)
			src.Fill(out[w])
		}()
	}
	wg.Wait()

	// Blocks are disjoint runs of one stream: together they reproduce it.
	ref := NewNormalSource(5)
	all := make([]float64, workers*block)
	ref.Fill(all)

	seen := make(map[float64]int, len(all))
	for _, v := range all {
		seen[v]++
	}
	for w := range out {
		for _, v := range out[w] {
			if seen[v] == 0 {
				t.Fatalf("draw %v not in reference stream", v)
			}
			seen[v]--
		}
	}
}
