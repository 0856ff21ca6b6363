// Package handle defines the small, comparable token types returned by the
// builder and consumed by the simulator: LeverHandle, OutputHandle and
// Probe. They live in their own package, separate from both core and sim,
// so that neither of those packages needs to import the other.
package handle

import (
	"errors"

	"github.com/katalvlaran/gatesim/gate"
)

// ErrUnknownHandle is returned (or, where the API only panics, wrapped
// into the panic value) when a LeverHandle or OutputHandle does not
// belong to the Graph or Builder it was presented to — for example, a
// handle minted by one Builder used against a Graph compiled from a
// different one.
var ErrUnknownHandle = errors.New("handle: unknown handle")

// LeverHandle identifies one lever declared on a Builder. id is the
// lever's position in the builder's lever table; bit is the gate index the
// lever was wired to at declaration time, used before initialization to
// reference the lever as a normal dependency.
type LeverHandle struct {
	id  int
	bit gate.Index
}

// NewLeverHandle constructs a LeverHandle. It is exported for use by the
// core package's Builder; callers outside core should treat the result as
// opaque.
func NewLeverHandle(id int, bit gate.Index) LeverHandle {
	return LeverHandle{id: id, bit: bit}
}

// ID returns the lever's position in its graph's lever table.
func (h LeverHandle) ID() int { return h.id }

// Bit returns the gate index the lever was wired to at declaration time.
func (h LeverHandle) Bit() gate.Index { return h.bit }

// OutputHandle identifies one named output declared on a Builder.
type OutputHandle struct {
	id int
}

// NewOutputHandle constructs an OutputHandle.
func NewOutputHandle(id int) OutputHandle {
	return OutputHandle{id: id}
}

// ID returns the output's position in its graph's output table.
func (h OutputHandle) ID() int { return h.id }

// Probe names a bus of gates for diagnostic emission whenever any of its
// bits change value.
type Probe struct {
	Name string
	Bits []gate.Index
}
