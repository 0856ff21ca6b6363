// Package sim implements the compiled, immutable-shape gate graph: the
// compacted node table, the packed simulation state, and the two-phase
// tick engine that propagates lever changes to fixpoint, one unit delay
// per gate per tick. This is the only package in the module that actually
// evaluates a circuit; core only builds and optimizes one.
package sim

import (
	"errors"
	"io"

	"github.com/katalvlaran/gatesim/bitstate"
	"github.com/katalvlaran/gatesim/dstack"
	"github.com/katalvlaran/gatesim/gate"
	"github.com/katalvlaran/gatesim/handle"
)

// Node is one compacted, runtime gate: its kind, the gates it reads (in
// the order GVN and the other optimizer passes last left them), and the
// gates that read it, used to re-enqueue downstream work when its value
// changes.
type Node struct {
	Kind       gate.Kind
	Deps       []gate.Index
	Dependents []gate.Index
}

// ErrNonConvergent is returned by RunUntilStable when the graph has not
// reached a fixed point within the given number of ticks: always for a
// circuit with an odd combinational feedback loop (an inverting cycle with
// no latch to break it), and for any other circuit that needs more ticks
// than were allowed.
var ErrNonConvergent = errors.New("sim: graph did not stabilize")

// Graph is a compiled, runnable gate circuit. It is produced by
// core.Builder.Initialize and cannot be edited; only its levers can be
// driven and its outputs read.
type Graph struct {
	nodes       []Node
	state       *bitstate.BitState
	propagation *dstack.DoubleStack[gate.Index]
	pending     *dstack.DoubleStack[gate.Index]
	levers      []gate.Index
	outputs     [][]gate.Index
	probes      map[gate.Index]handle.Probe
	probeW      io.Writer
}

// New compiles a compacted node table into a runnable Graph and performs
// its initial settling pass: every gate is evaluated once, in index
// order, exactly as if each had just received its first input, so the
// graph starts in a fully determined, consistent state before any lever
// is touched.
func New(nodes []Node, leverGates []gate.Index, outputBits [][]gate.Index, probes map[gate.Index]handle.Probe, probeW io.Writer) *Graph {
	if probeW == nil {
		probeW = io.Discard
	}
	g := &Graph{
		nodes:       nodes,
		state:       bitstate.New(len(nodes)),
		propagation: dstack.New[gate.Index](),
		pending:     dstack.New[gate.Index](),
		levers:      leverGates,
		outputs:     outputBits,
		probes:      probes,
		probeW:      probeW,
	}

	for i := range nodes {
		gi := gate.Index(i)
		if g.state.GetUpdated(int(gi)) {
			continue
		}
		g.propagation.Push(gi)
		g.tickInner()
	}
	// tickInner pushed onto pending's write side every gate whose
	// re-evaluation disagreed with the value it was first given during the
	// loop above; swap once so the first external Tick/lever operation
	// can drain them.
	g.pending.Swap()

	return g
}

// Len returns the number of gates in the compiled graph.
func (g *Graph) Len() int { return len(g.nodes) }

// IsEmpty reports whether the graph has no gates at all (impossible in
// practice, since Off and On always survive, but mirrored from the
// reference API for parity).
func (g *Graph) IsEmpty() bool { return len(g.nodes) == 0 }

func (g *Graph) value(i gate.Index) bool {
	return g.state.GetValue(int(i))
}
