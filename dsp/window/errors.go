package window

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/core"
)

var (
	// ErrInvalidWindow is [core.ErrInvalidWindow].
	ErrInvalidWindow = core.ErrInvalidWindow
	// ErrUnsupportedWindow is [core.ErrUnsupportedWindow].
	ErrUnsupportedWindow = core.ErrUnsupportedWindow

	errZeroSum = errors.New("window weights sum to zero")
)

func validateLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("window length must be > 0: %d: %w", length, ErrInvalidWindow)
	}
	if length%2 == 0 {
		return fmt.Errorf("window length must be odd: %d: %w", length, ErrInvalidWindow)
	}
	return nil
}
