package psdcheck

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-psd/dsp/signal"
	"github.com/cwbudde/algo-psd/dsp/spectrum"
	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/stats/frequency"
	"github.com/cwbudde/algo-psd/stats/series"
)

const (
	defaultSamples = 500
	defaultNum     = 2048
	defaultWindow  = 201
)

// Scenario describes one AR process and how to estimate its spectrum.
type Scenario struct {
	Name          string
	Coefficients  []float64 // most recent lag first; empty for white noise
	Samples       int
	Num           int
	Smoothing     spectrum.SmoothingConfig
	Normalization spectrum.Normalization
	Check         Config
}

// DefaultScenarios returns white noise, AR(1) with a=0.7 and AR(2) with
// (0.3, -0.6), each with 500 samples on a 2048-point grid smoothed by a
// 201-bin Hamming kernel.
func DefaultScenarios() []Scenario {
	smoothing := spectrum.SmoothingConfig{Smooth: true, Window: defaultWindow, Method: window.TypeHamming}

	base := func(name string, coeffs ...float64) Scenario {
		return Scenario{
			Name:          name,
			Coefficients:  coeffs,
			Samples:       defaultSamples,
			Num:           defaultNum,
			Smoothing:     smoothing,
			Normalization: spectrum.NormalizeSamples,
			Check:         DefaultConfig(),
		}
	}

	return []Scenario{
		base("white noise"),
		base("AR(1)", 0.7),
		base("AR(2)", 0.3, -0.6),
	}
}

// Outcome holds everything computed for one scenario.
type Outcome struct {
	Scenario Scenario
	Series   []float64
	Freqs    []float64
	Raw      []float64
	Smoothed []float64 // nil when smoothing is disabled
	Theory   []float64

	RawResult      Result
	SmoothedResult Result
	Shape          frequency.Stats // of Smoothed, or Raw when unsmoothed

	SampleVariance      float64
	TheoreticalVariance float64
	Fitted              []float64 // Yule-Walker coefficients of the same order
	Stationary          error     // nil, or wraps signal.ErrNonStationary
}

// Best returns the smoothed result when available, else the raw one.
func (o Outcome) Best() Result {
	if o.Smoothed != nil {
		return o.SmoothedResult
	}
	return o.RawResult
}

// Run draws one realization from g and evaluates the scenario.
// Non-stationary coefficients are reported in Outcome.Stationary and do not
// fail the run.
func Run(g *signal.Generator, sc Scenario) (Outcome, error) {
	if err := sc.Smoothing.Validate(sc.Num); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
	}

	p, err := spectrum.NewPeriodogram(sc.Num)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
	}
	p.SetNormalization(sc.Normalization)

	x, err := g.AR(sc.Samples, sc.Coefficients)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
	}

	out := Outcome{
		Scenario:   sc,
		Series:     x,
		Stationary: signal.CheckStationary(sc.Coefficients),
	}

	if out.Raw, err = p.Raw(x); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
	}
	if sc.Smoothing.Smooth {
		out.Smoothed, err = spectrum.Smooth(out.Raw, sc.Smoothing.Window, sc.Smoothing.Method)
		if err != nil {
			return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
		}
	}

	if out.Freqs, err = spectrum.FrequencyGrid(sc.Num); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
	}
	sigma := g.StdDev()
	out.Theory = spectrum.ARPSD(out.Freqs, sc.Coefficients, sigma*sigma)

	if out.RawResult, err = Compare(out.Freqs, out.Raw, out.Theory, sc.Check); err != nil {
		return Outcome{}, fmt.Errorf("%s raw: %w", sc.Name, err)
	}

	shapeOf := out.Raw
	if out.Smoothed != nil {
		if out.SmoothedResult, err = Compare(out.Freqs, out.Smoothed, out.Theory, sc.Check); err != nil {
			return Outcome{}, fmt.Errorf("%s smoothed: %w", sc.Name, err)
		}
		shapeOf = out.Smoothed
	}
	if out.Shape, err = frequency.Calculate(shapeOf, out.Freqs); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
	}

	out.SampleVariance = series.Describe(x).Variance
	if out.TheoreticalVariance, err = series.TheoreticalVariance(out.Theory, sc.Num); err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", sc.Name, err)
	}

	if order := len(sc.Coefficients); order > 0 && order < len(x) {
		// A singular fit (e.g. a zero series) leaves Fitted nil.
		out.Fitted, _, _ = series.YuleWalker(x, order)
	}

	return out, nil
}

// RunAll evaluates each scenario in order with a shared generator, logging a
// one-line summary per scenario.
func RunAll(g *signal.Generator, scenarios []Scenario, logger *zap.Logger) ([]Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]Outcome, 0, len(scenarios))
	for _, sc := range scenarios {
		o, err := Run(g, sc)
		if err != nil {
			return out, err
		}

		best := o.Best()
		logger.Debug("scenario evaluated",
			zap.String("name", sc.Name),
			zap.Float64s("coefficients", sc.Coefficients),
			zap.Int("bins", best.Bins),
			zap.Float64("mean_rel_error", best.MeanRelError),
			zap.Float64("within_tolerance", best.WithinTolerance))
		if o.Stationary != nil {
			logger.Warn("scenario is not stationary",
				zap.String("name", sc.Name),
				zap.Error(o.Stationary))
		}

		out = append(out, o)
	}

	return out, nil
}
