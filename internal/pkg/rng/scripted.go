package rng

import "sync"

// Scripted replays a fixed sequence of draws. Once the sequence is
// exhausted the last value repeats. IntN scales the next draw into [0, n).
type Scripted struct {
	mu     sync.Mutex
	values []float64
	next   int
	calls  int
}

// NewScripted returns a source that yields values in order
func NewScripted(values ...float64) *Scripted {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &Scripted{values: values}
}

// Fixed returns a source that always yields v
func Fixed(v float64) *Scripted {
	return NewScripted(v)
}

// Float64 returns the next scripted value
func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	s.calls++
	return v
}

// IntN maps the next scripted value into [0, n)
func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Calls returns how many draws have been taken
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
