package rng

import (
	"fmt"
	"sync"
)

// Scripted replays a predetermined sequence of draws. It is the test
// seam for forcing game outcomes: queue the exact values a resolution
// will consume and assert on the result.
type Scripted struct {
	mu    sync.Mutex
	ints  []int
	bools []bool
}

// Script builds a scripted provider from integer draws. Boolean draws
// can be queued afterwards with WillFlip.
func Script(ints ...int) *Scripted {
	return &Scripted{ints: ints}
}

// WillFlip queues results for upcoming DrawBoolean calls.
func (s *Scripted) WillFlip(results ...bool) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bools = append(s.bools, results...)
	return s
}

func (s *Scripted) DrawUniform(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		panic("scripted rng: no integer draws left")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted rng: draw %d out of range [0,%d)", v, n))
	}
	return v
}

func (s *Scripted) DrawBoolean(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bools) == 0 {
		panic("scripted rng: no boolean draws left")
	}
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v
}
