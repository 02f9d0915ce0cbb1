package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/window"
)

// SmoothingConfig selects optional smoothing of the raw periodogram.
//
// Window and Method are only consulted when Smooth is true. Window is the
// kernel length in bins; it must be odd, positive, and no longer than the
// transform length.
type SmoothingConfig struct {
	Smooth bool
	Window int
	Method window.Type
}

// DefaultSmoothingConfig returns the unsmoothed configuration with the
// Hamming kernel preselected.
func DefaultSmoothingConfig() SmoothingConfig {
	return SmoothingConfig{Method: window.TypeHamming}
}

// NewSmoothingConfig returns an enabled smoothing configuration for a kernel
// given by name, validating both fields.
func NewSmoothingConfig(length int, method string) (SmoothingConfig, error) {
	if err := validateWindowLength(length); err != nil {
		return SmoothingConfig{}, err
	}

	t, err := window.ParseType(method)
	if err != nil {
		return SmoothingConfig{}, err
	}

	return SmoothingConfig{Smooth: true, Window: length, Method: t}, nil
}

// Validate checks the configuration against a transform length.
func (c SmoothingConfig) Validate(num int) error {
	if !c.Smooth {
		return nil
	}
	if err := validateWindowLength(c.Window); err != nil {
		return err
	}
	if c.Window > num {
		return fmt.Errorf("smoothing window %d exceeds transform length %d: %w", c.Window, num, ErrInvalidWindow)
	}
	if !c.Method.Valid() {
		return fmt.Errorf("smoothing method %v: %w", c.Method, ErrUnsupportedWindow)
	}
	return nil
}

// String describes the configuration, e.g. "hamming/201" or "raw".
func (c SmoothingConfig) String() string {
	if !c.Smooth {
		return "raw"
	}
	return fmt.Sprintf("%v/%d", c.Method, c.Window)
}

func validateWindowLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("smoothing window must be > 0: %d: %w", length, ErrInvalidWindow)
	}
	if length%2 == 0 {
		return fmt.Errorf("smoothing window must be odd: %d: %w", length, ErrInvalidWindow)
	}
	return nil
}

// Option configures [EstimateSpectrum].
type Option func(*estimateConfig)

type estimateConfig struct {
	smoothing SmoothingConfig
	method    string
	named     bool // method came from WithSmoothing and must parse
	norm      Normalization
}

func defaultEstimateConfig() estimateConfig {
	return estimateConfig{smoothing: DefaultSmoothingConfig()}
}

// WithSmoothing enables smoothing with a kernel of the given length and name
// (e.g. "hamming"). Validation happens when the estimate is computed; an
// empty or unknown name fails with [ErrUnsupportedWindow].
func WithSmoothing(length int, method string) Option {
	return func(c *estimateConfig) {
		c.smoothing.Smooth = true
		c.smoothing.Window = length
		c.method = method
		c.named = true
	}
}

// WithSmoothingConfig uses a prebuilt configuration.
func WithSmoothingConfig(cfg SmoothingConfig) Option {
	return func(c *estimateConfig) {
		c.smoothing = cfg
		c.method = ""
		c.named = false
	}
}

// WithNormalization selects the periodogram divisor.
func WithNormalization(n Normalization) Option {
	return func(c *estimateConfig) {
		c.norm = n
	}
}
