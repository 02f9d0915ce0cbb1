package signal

import (
	"math/rand/v2"
	"sync"
)

// Innovations yields independent standard-normal draws. *rand.Rand from
// math/rand/v2 satisfies it.
type Innovations interface {
	NormFloat64() float64
}

// blockFiller is implemented by sources that can hand out a contiguous block
// of draws atomically.
type blockFiller interface {
	Fill(dst []float64)
}

// NormalSource is a seeded standard-normal source safe for concurrent use.
type NormalSource struct {
	mu  sync.Mutex
	pcg *rand.PCG
	rng *rand.Rand
}

// NewNormalSource returns a PCG-backed source with the given seed.
func NewNormalSource(seed uint64) *NormalSource {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &NormalSource{pcg: pcg, rng: rand.New(pcg)}
}

// NormFloat64 returns one standard-normal draw.
func (s *NormalSource) NormFloat64() float64 {
	s.mu.Lock()
	v := s.rng.NormFloat64()
	s.mu.Unlock()
	return v
}

// Fill overwrites dst with consecutive draws under a single lock, so
// concurrent callers each receive an unbroken run of the stream.
func (s *NormalSource) Fill(dst []float64) {
	s.mu.Lock()
	for i := range dst {
		dst[i] = s.rng.NormFloat64()
	}
	s.mu.Unlock()
}

// Seed restarts the stream from seed.
func (s *NormalSource) Seed(seed uint64) {
	s.mu.Lock()
	s.pcg.Seed(seed, seed^0x9e3779b97f4a7c15)
	s.mu.Unlock()
}

func draw(src Innovations, dst []float64) {
	if f, ok := src.(blockFiller); ok {
		f.Fill(dst)
		return
	}
	for i := range dst {
		dst[i] = src.NormFloat64()
	}
}
