package signal

import "github.com/cwbudde/algo-psd/dsp/core"

var (
	// ErrInvalidLength is [core.ErrInvalidLength].
	ErrInvalidLength = core.ErrInvalidLength
	// ErrNonStationary is [core.ErrNonStationary]. It is advisory only.
	ErrNonStationary = core.ErrNonStationary
)
