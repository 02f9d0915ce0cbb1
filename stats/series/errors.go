package series

import (
	"errors"

	"github.com/cwbudde/algo-psd/dsp/core"
)

// ErrInvalidLength is [core.ErrInvalidLength].
var ErrInvalidLength = core.ErrInvalidLength

// ErrSingular is returned when a Yule-Walker system has no solution, such as
// for a constant series.
var ErrSingular = errors.New("singular autocovariance")
