// Package rng is the injectable random source used by every calculation that
// rolls. Production code wraps an rpg-toolkit dice roller; tests script the
// exact draws they need.
package rng

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Source produces uniform random values
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n). It returns 0 when n <= 0.
	IntN(n int) int
}

// resolution is the die size used to derive floats from a roller
const resolution = 1 << 24

// New returns a source backed by the toolkit's default roller
func New() Source {
	return FromRoller(dice.DefaultRoller)
}

// FromRoller adapts a dice roller into a Source
func FromRoller(roller dice.Roller) Source {
	return &rollerSource{roller: roller}
}

type rollerSource struct {
	roller dice.Roller
}

func (s *rollerSource) Float64() float64 {
	v, err := s.roller.Roll(resolution)
	if err != nil {
		return rand.Float64()
	}
	return float64(v-1) / resolution
}

func (s *rollerSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := s.roller.Roll(n)
	if err != nil {
		return rand.IntN(n)
	}
	return v - 1
}

// NewSeeded returns a reproducible pseudo-random source
func NewSeeded(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
