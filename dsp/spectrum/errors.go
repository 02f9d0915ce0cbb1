package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-psd/dsp/core"
)

var (
	// ErrInvalidLength is [core.ErrInvalidLength].
	ErrInvalidLength = core.ErrInvalidLength
	// ErrInvalidWindow is [core.ErrInvalidWindow].
	ErrInvalidWindow = core.ErrInvalidWindow
	// ErrUnsupportedWindow is [core.ErrUnsupportedWindow].
	ErrUnsupportedWindow = core.ErrUnsupportedWindow
)

func validateNum(num int) error {
	if num <= 0 {
		return fmt.Errorf("transform length must be > 0: %d: %w", num, ErrInvalidLength)
	}
	return nil
}
