package core

import "errors"

// Error kinds shared by the generator, estimator, and smoother packages.
// Packages re-export them so callers can test with errors.Is against either
// name.
var (
	// ErrInvalidLength reports a non-positive transform length or a sample
	// count too short for the requested AR order.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidWindow reports a smoothing window length that is even,
	// non-positive, or longer than the transform.
	ErrInvalidWindow = errors.New("invalid smoothing window")

	// ErrUnsupportedWindow reports a window kind outside the known set.
	ErrUnsupportedWindow = errors.New("unsupported window")

	// ErrNonStationary is advisory: the AR coefficients have a characteristic
	// root on or outside the unit circle and generated paths may diverge.
	ErrNonStationary = errors.New("non-stationary AR coefficients")
)
