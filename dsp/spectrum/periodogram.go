package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-psd/dsp/core"
	"github.com/cwbudde/algo-psd/dsp/window"
)

// Normalization selects the divisor of the raw periodogram.
type Normalization int

const (
	// NormalizeTransform divides |F(k)|^2 by 2*pi*num.
	NormalizeTransform Normalization = iota
	// NormalizeSamples divides by 2*pi*m, where m = min(len(x), num) is the
	// number of input samples that reach the transform. Zero padding then
	// leaves the density level unchanged.
	NormalizeSamples
)

// String returns "transform" or "samples".
func (n Normalization) String() string {
	switch n {
	case NormalizeTransform:
		return "transform"
	case NormalizeSamples:
		return "samples"
	default:
		return fmt.Sprintf("spectrum.Normalization(%d)", int(n))
	}
}

// ParseNormalization is the inverse of [Normalization.String].
func ParseNormalization(name string) (Normalization, error) {
	switch name {
	case "", "transform":
		return NormalizeTransform, nil
	case "samples":
		return NormalizeSamples, nil
	default:
		return 0, fmt.Errorf("unknown normalization %q", name)
	}
}

const minPlanLen = 16

// Periodogram computes raw and smoothed periodograms for a fixed transform
// length. It owns its FFT plan and scratch buffers and is not safe for
// concurrent use; create one per goroutine.
//
// Power-of-two lengths of at least 16 run on a complex algo-fft plan; other
// lengths use gonum's real FFT. Both produce the same bins.
type Periodogram struct {
	num  int
	bins int
	norm Normalization

	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128

	real   *fourier.FFT
	seq    []float64
	coeffs []complex128
}

// NewPeriodogram prepares an estimator for transforms of length num.
func NewPeriodogram(num int) (*Periodogram, error) {
	if err := validateNum(num); err != nil {
		return nil, err
	}

	p := &Periodogram{num: num, bins: BinCount(num)}

	if num >= minPlanLen && core.IsPowerOfTwo(num) {
		plan, err := algofft.NewPlan64(num)
		if err == nil {
			p.plan = plan
			p.in = make([]complex128, num)
			p.out = make([]complex128, num)
			return p, nil
		}
	}

	p.real = fourier.NewFFT(num)
	p.seq = make([]float64, num)
	p.coeffs = make([]complex128, p.bins)

	return p, nil
}

// Num returns the transform length.
func (p *Periodogram) Num() int { return p.num }

// Bins returns the output length, num/2 + 1.
func (p *Periodogram) Bins() int { return p.bins }

// SetNormalization changes the divisor used by Raw and Estimate.
func (p *Periodogram) SetNormalization(n Normalization) { p.norm = n }

// Normalization returns the divisor mode.
func (p *Periodogram) Normalization() Normalization { return p.norm }

// Raw returns |F(k)|^2 / (2*pi*num) for k = 0..num/2, where F is the DFT of
// x zero-padded or truncated to num samples. With [NormalizeSamples] the
// divisor uses the fitted sample count instead. The result does not alias
// internal buffers.
func (p *Periodogram) Raw(x []float64) ([]float64, error) {
	bins, err := p.transform(x)
	if err != nil {
		return nil, err
	}

	out := Power(bins)
	m := p.num
	if p.norm == NormalizeSamples && len(x) > 0 && len(x) < p.num {
		m = len(x)
	}
	vecmath.ScaleBlock(out, out, 1/(2*math.Pi*float64(m)))

	return out, nil
}

// Estimate returns the raw periodogram, smoothed across bins when
// cfg.Smooth is set. Invalid configurations fail before any work is done.
func (p *Periodogram) Estimate(x []float64, cfg SmoothingConfig) ([]float64, error) {
	if err := cfg.Validate(p.num); err != nil {
		return nil, err
	}

	raw, err := p.Raw(x)
	if err != nil {
		return nil, err
	}

	if !cfg.Smooth {
		return raw, nil
	}

	return Smooth(raw, cfg.Window, cfg.Method)
}

func (p *Periodogram) transform(x []float64) ([]complex128, error) {
	if p.plan != nil {
		n := min(len(x), p.num)
		for i := 0; i < n; i++ {
			p.in[i] = complex(x[i], 0)
		}
		for i := n; i < p.num; i++ {
			p.in[i] = 0
		}

		if err := p.plan.Forward(p.out, p.in); err != nil {
			return nil, fmt.Errorf("periodogram: forward FFT failed: %w", err)
		}

		return p.out[:p.bins], nil
	}

	core.Fit(p.seq, x)
	p.coeffs = p.real.Coefficients(p.coeffs, p.seq)

	return p.coeffs, nil
}

// Estimate is the one-shot form of [Periodogram.Estimate].
func Estimate(x []float64, num int, cfg SmoothingConfig) ([]float64, error) {
	if err := validateNum(num); err != nil {
		return nil, err
	}
	if err := cfg.Validate(num); err != nil {
		return nil, err
	}

	p, err := NewPeriodogram(num)
	if err != nil {
		return nil, err
	}

	return p.Estimate(x, cfg)
}

func estimateWith(x []float64, num int, cfg estimateConfig) ([]float64, error) {
	if err := cfg.smoothing.Validate(num); err != nil {
		return nil, err
	}

	p, err := NewPeriodogram(num)
	if err != nil {
		return nil, err
	}
	p.SetNormalization(cfg.norm)

	return p.Estimate(x, cfg.smoothing)
}

// EstimateSpectrum estimates the density of signal on [FrequencyGrid](num).
// Without options it returns the raw periodogram; [WithSmoothing] selects a
// kernel by name.
func EstimateSpectrum(signal []float64, num int, opts ...Option) ([]float64, error) {
	cfg := defaultEstimateConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateNum(num); err != nil {
		return nil, err
	}

	if cfg.smoothing.Smooth {
		if err := validateWindowLength(cfg.smoothing.Window); err != nil {
			return nil, err
		}
		if cfg.named {
			t, err := window.ParseType(cfg.method)
			if err != nil {
				return nil, err
			}
			cfg.smoothing.Method = t
		}
	}

	return estimateWith(signal, num, cfg)
}

// TotalPower integrates a one-sided density over [-pi, pi] on the grid of a
// length-num transform:
//
//	(2*pi/num) * (P[0] + 2*sum P[k] + P[num/2])
//
// with the Nyquist bin counted once for even num. For a raw periodogram this
// equals the mean square (1/num)*sum x[n]^2 of the padded or truncated input,
// or (1/m)*sum x[n]^2 under [NormalizeSamples].
func TotalPower(density []float64, num int) (float64, error) {
	if err := validateNum(num); err != nil {
		return 0, err
	}
	if len(density) != BinCount(num) {
		return 0, fmt.Errorf("density has %d bins, want %d for num=%d: %w",
			len(density), BinCount(num), num, ErrInvalidLength)
	}

	sum := density[0]
	for k := 1; k < len(density); k++ {
		if num%2 == 0 && k == num/2 {
			sum += density[k]
			continue
		}
		sum += 2 * density[k]
	}

	return 2 * math.Pi / float64(num) * sum, nil
}
