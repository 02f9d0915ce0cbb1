package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT term at a radial frequency.
//
// The analyzer is stateful: Power reflects every sample processed since the
// last Reset. It serves as an independent check on individual periodogram
// bins and as a way to probe frequencies between grid points.
type Goertzel struct {
	omega  float64
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an analyzer for omega in [0, pi].
func NewGoertzel(omega float64) (*Goertzel, error) {
	g := &Goertzel{}
	if err := g.SetOmega(omega); err != nil {
		return nil, err
	}
	return g, nil
}

// SetOmega changes the target frequency and resets state.
func (g *Goertzel) SetOmega(omega float64) error {
	if omega < 0 || omega > math.Pi || math.IsNaN(omega) {
		return fmt.Errorf("goertzel: frequency must be in [0, pi]: %v", omega)
	}

	g.omega = omega
	g.coeff = 2 * math.Cos(omega)
	g.Reset()

	return nil
}

// Omega returns the target radial frequency.
func (g *Goertzel) Omega() float64 { return g.omega }

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns |X(omega)|^2 over the processed samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// PeriodogramAt returns the periodogram value at omega for x fitted to num
// samples, using the same 1/(2*pi*num) scaling as [Periodogram.Raw].
func PeriodogramAt(x []float64, num int, omega float64) (float64, error) {
	if err := validateNum(num); err != nil {
		return 0, err
	}

	g, err := NewGoertzel(omega)
	if err != nil {
		return 0, err
	}

	if len(x) > num {
		x = x[:num]
	}
	g.ProcessBlock(x)

	return g.Power() / (2 * math.Pi * float64(num)), nil
}
