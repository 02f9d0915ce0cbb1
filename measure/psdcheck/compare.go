package psdcheck

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-psd/dsp/core"
)

const defaultTolerance = 0.2

// ErrNoBins is returned when the configured band selects no grid points.
var ErrNoBins = errors.New("no bins in comparison band")

// Config selects the band and tolerance of a comparison. Zero fields take
// defaults: Tolerance 0.2 and the band [0, pi].
type Config struct {
	Tolerance float64 // relative error counted as a match
	LowerFreq float64 // radians per sample
	UpperFreq float64
}

// DefaultConfig returns the defaults applied to zero fields.
func DefaultConfig() Config {
	return Config{Tolerance: defaultTolerance, UpperFreq: math.Pi}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = defaultTolerance
	}

	if cfg.LowerFreq < 0 {
		cfg.LowerFreq = 0
	}

	if cfg.UpperFreq <= 0 {
		cfg.UpperFreq = math.Pi
	}

	if cfg.UpperFreq < cfg.LowerFreq {
		cfg.UpperFreq = cfg.LowerFreq
	}

	return cfg
}

// Result summarizes the deviation of an estimate from theory over the
// bins inside the configured band.
//
//nolint:revive
type Result struct {
	Bins            int
	MaxRelError     float64
	MeanRelError    float64
	LogRatioRMS_dB  float64 // RMS of 10*log10(estimate/theory)
	WorstBin        int
	WorstFreq       float64
	WithinTolerance float64 // fraction of bins with relative error <= Tolerance
	Tolerance       float64
}

// Passed reports whether at least the given fraction of bins matched.
func (r Result) Passed(fraction float64) bool {
	return r.Bins > 0 && r.WithinTolerance >= fraction
}

// Compare measures estimate against theory on the shared grid freqs.
// Bins where the theoretical density is not positive are skipped.
func Compare(freqs, estimate, theory []float64, cfg Config) (Result, error) {
	if len(estimate) != len(freqs) || len(theory) != len(freqs) {
		return Result{}, fmt.Errorf("grid %d, estimate %d, theory %d bins: %w",
			len(freqs), len(estimate), len(theory), core.ErrInvalidLength)
	}

	cfg = normalizeConfig(cfg)

	var (
		rel   []float64
		logs  []float64
		index []int
	)
	for k, f := range freqs {
		if f < cfg.LowerFreq || f > cfg.UpperFreq || theory[k] <= 0 {
			continue
		}

		rel = append(rel, math.Abs(estimate[k]-theory[k])/theory[k])
		logs = append(logs, 10*math.Log10(math.Max(estimate[k], math.SmallestNonzeroFloat64)/theory[k]))
		index = append(index, k)
	}

	if len(rel) == 0 {
		return Result{}, fmt.Errorf("band [%g, %g]: %w", cfg.LowerFreq, cfg.UpperFreq, ErrNoBins)
	}

	worst := floats.MaxIdx(rel)

	within := 0
	for _, e := range rel {
		if e <= cfg.Tolerance {
			within++
		}
	}

	return Result{
		Bins:            len(rel),
		MaxRelError:     rel[worst],
		MeanRelError:    stat.Mean(rel, nil),
		LogRatioRMS_dB:  math.Sqrt(floats.Dot(logs, logs) / float64(len(logs))),
		WorstBin:        index[worst],
		WorstFreq:       freqs[index[worst]],
		WithinTolerance: float64(within) / float64(len(rel)),
		Tolerance:       cfg.Tolerance,
	}, nil
}
