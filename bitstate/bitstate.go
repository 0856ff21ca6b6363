// Package bitstate provides a packed, word-aligned bit vector storing two
// planes per node: its current boolean value and whether that value was
// written during the current tick. The dirty plane lets the propagation
// engine distinguish "this gate settled to its old value" from "this gate
// has not been touched yet this tick" without a separate visited set.
package bitstate

import "fmt"

const wordBits = 64

// BitState is a fixed-capacity pair of bit planes, value and updated,
// indexed by gate.Index (accepted here as a plain int to avoid an import
// of the gate package from this leaf package).
type BitState struct {
	values  []uint64
	updated []uint64
	n       int
}

// New allocates a BitState able to address n indices, rounded up to a
// whole number of 64-bit words.
func New(n int) *BitState {
	words := (n + wordBits - 1) / wordBits
	if words == 0 {
		words = 0
	}
	return &BitState{
		values:  make([]uint64, words),
		updated: make([]uint64, words),
		n:       words * wordBits,
	}
}

func (s *BitState) checkBounds(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("bitstate: index %d out of bounds [0,%d)", i, s.n))
	}
}

func wordAndBit(i int) (word int, mask uint64) {
	return i / wordBits, 1 << uint(i%wordBits)
}

// GetValue returns the current value bit at i.
func (s *BitState) GetValue(i int) bool {
	s.checkBounds(i)
	w, m := wordAndBit(i)
	return s.values[w]&m != 0
}

// GetUpdated returns whether i was written during the current tick.
func (s *BitState) GetUpdated(i int) bool {
	s.checkBounds(i)
	w, m := wordAndBit(i)
	return s.updated[w]&m != 0
}

// GetIfUpdated returns the value at i and ok=true if i was written this
// tick, or ok=false if it has not been touched yet.
func (s *BitState) GetIfUpdated(i int) (value bool, ok bool) {
	if !s.GetUpdated(i) {
		return false, false
	}
	return s.GetValue(i), true
}

// Set writes the value bit at i and marks it updated for this tick.
func (s *BitState) Set(i int, v bool) {
	s.checkBounds(i)
	w, m := wordAndBit(i)
	if v {
		s.values[w] |= m
	} else {
		s.values[w] &^= m
	}
	s.updated[w] |= m
}

// MarkUpdated marks i as written this tick without changing its value.
func (s *BitState) MarkUpdated(i int) {
	s.checkBounds(i)
	w, m := wordAndBit(i)
	s.updated[w] |= m
}

// Tick clears every updated bit, starting a new tick.
func (s *BitState) Tick() {
	for i := range s.updated {
		s.updated[i] = 0
	}
}

// Len returns the addressable capacity in bits, rounded up to a word.
func (s *BitState) Len() int { return s.n }
