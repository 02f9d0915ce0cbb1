// Package window generates the weighting kernels used to smooth periodogram
// estimates.
//
// The set of kernels is closed: every [Type] maps to one weight function and
// lookup by name goes through [ParseType]. All kernels are the symmetric forms
// (sample position n/(L-1)), non-negative, and peak at the centre tap for odd
// lengths.
package window

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Type identifies a smoothing kernel.
type Type int

const (
	// TypeHamming is the zero value and the default smoothing kernel.
	TypeHamming Type = iota
	TypeHanning
	TypeBartlett
	TypeBlackman
	TypeFlat

	numTypes
)

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Metadata holds asymptotic spectral properties of a window type.
type Metadata struct {
	Name            string
	ENBW            float64 // bins
	HighestSidelobe float64 // dB
	CoherentGain    float64
}

var metadataByType = map[Type]Metadata{
	TypeHamming:  {Name: "hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeHanning:  {Name: "hanning", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeBartlett: {Name: "bartlett", ENBW: 1.33, HighestSidelobe: -26.5, CoherentGain: 0.5},
	TypeBlackman: {Name: "blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42},
	TypeFlat:     {Name: "flat", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1},
}

var typesByName = map[string]Type{
	"hamming":     TypeHamming,
	"hanning":     TypeHanning,
	"hann":        TypeHanning,
	"bartlett":    TypeBartlett,
	"triangle":    TypeBartlett,
	"blackman":    TypeBlackman,
	"flat":        TypeFlat,
	"rectangular": TypeFlat,
	"boxcar":      TypeFlat,
}

// ParseType resolves a kernel name (case-insensitive, aliases accepted).
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := typesByName[key]; ok {
		return t, nil
	}

	return 0, fmt.Errorf("window %q: %w", name, ErrUnsupportedWindow)
}

// Types returns all known kernel types in declaration order.
func Types() []Type {
	out := make([]Type, 0, numTypes)
	for t := Type(0); t < numTypes; t++ {
		out = append(out, t)
	}

	return out
}

// Valid reports whether t is a known kernel type.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// String returns the canonical kernel name.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}

	return fmt.Sprintf("window.Type(%d)", int(t))
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Generate returns the raw (unnormalized) weights of the given length.
// It returns nil for non-positive lengths and unknown types. A length of one
// yields the identity kernel [1] for every type.
func Generate(t Type, length int) []float64 {
	if length <= 0 || !t.Valid() {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	den := float64(length - 1)
	for i := range out {
		out[i] = evalWindow(t, float64(i)/den)
	}

	return out
}

type kernelKey struct {
	t      Type
	length int
}

var kernelCache sync.Map // kernelKey -> []float64

// Kernel returns weights of the given kind and length normalized to sum to
// one. The length must be odd and positive. Results are cached by
// (kind, length); the returned slice is a private copy.
func Kernel(t Type, length int) ([]float64, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%v: %w", t, ErrUnsupportedWindow)
	}
	if err := validateLength(length); err != nil {
		return nil, err
	}

	key := kernelKey{t: t, length: length}
	if cached, ok := kernelCache.Load(key); ok {
		return append([]float64(nil), cached.([]float64)...), nil
	}

	w := Generate(t, length)

	sum := 0.0
	for _, v := range w {
		sum += v
	}

	if sum <= 0 {
		return nil, fmt.Errorf("%v length %d: %w", t, length, errZeroSum)
	}

	inv := 1 / sum
	for i := range w {
		w[i] *= inv
	}

	kernelCache.Store(key, w)

	return append([]float64(nil), w...), nil
}

func evalWindow(t Type, x float64) float64 {
	if x < 0 {
		x = 0
	}

	if x > 1 {
		x = 1
	}

	switch t {
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeHanning:
		return clampNonNegative(cosineFromCoeffs(x, hannCoeffs))
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeBlackman:
		return clampNonNegative(cosineFromCoeffs(x, blackmanCoeffs))
	default:
		return 1
	}
}

// clampNonNegative removes the -1e-17 rounding residue at the tapered ends.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
