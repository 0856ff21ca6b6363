package sim

import (
	"fmt"

	"github.com/katalvlaran/gatesim/gate"
	"github.com/katalvlaran/gatesim/handle"
)

func (g *Graph) leverGate(h handle.LeverHandle) int {
	id := h.ID()
	if id < 0 || id >= len(g.levers) {
		panic(fmt.Errorf("%w: lever %d", handle.ErrUnknownHandle, id))
	}
	return int(g.levers[id])
}

func (g *Graph) updateLeverInner(h handle.LeverHandle, value bool) {
	idx := g.leverGate(h)
	if g.state.GetValue(idx) != value {
		g.state.Set(idx, value)
		g.pending.Push(gate.Index(idx))
	}
}

// UpdateLever drives lever to value and runs exactly one Tick.
func (g *Graph) UpdateLever(h handle.LeverHandle, value bool) {
	g.updateLeverInner(h, value)
	g.Tick()
}

// UpdateLevers drives every lever in hs to the matching value in values
// and runs exactly one Tick afterward. Extra values beyond len(hs), or
// extra handles beyond len(values), are ignored.
func (g *Graph) UpdateLevers(hs []handle.LeverHandle, values []bool) {
	n := len(hs)
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		g.updateLeverInner(hs[i], values[i])
	}
	g.Tick()
}

// SetLever drives lever high and ticks once.
func (g *Graph) SetLever(h handle.LeverHandle) { g.UpdateLever(h, true) }

// ResetLever drives lever low and ticks once.
func (g *Graph) ResetLever(h handle.LeverHandle) { g.UpdateLever(h, false) }

// FlipLever toggles lever's current value, unconditionally (even if the
// new value happens to equal the old one after external interference,
// which cannot happen here but mirrors the reference semantics) and ticks
// once.
func (g *Graph) FlipLever(h handle.LeverHandle) {
	idx := g.leverGate(h)
	g.state.Set(idx, !g.state.GetValue(idx))
	g.pending.Push(gate.Index(idx))
	g.Tick()
}

// PulseLever sets then immediately resets lever, without stabilizing in
// between. Use PulseLeverStable if the circuit needs to fully settle
// after the rising edge before the falling edge is applied.
func (g *Graph) PulseLever(h handle.LeverHandle) {
	g.SetLever(h)
	g.ResetLever(h)
}

// SetLeverStable drives lever high, then runs up to 10 ticks to settle.
func (g *Graph) SetLeverStable(h handle.LeverHandle) error {
	g.SetLever(h)
	_, err := g.RunUntilStable(10)
	return err
}

// ResetLeverStable drives lever low, then runs up to 10 ticks to settle.
func (g *Graph) ResetLeverStable(h handle.LeverHandle) error {
	g.ResetLever(h)
	_, err := g.RunUntilStable(10)
	return err
}

// FlipLeverStable toggles lever, then runs up to 10 ticks to settle.
func (g *Graph) FlipLeverStable(h handle.LeverHandle) error {
	g.FlipLever(h)
	_, err := g.RunUntilStable(10)
	return err
}

// PulseLeverStable sets lever, settles (up to 10 ticks), resets it, then
// settles again. Unlike PulseLever, the circuit is given a chance to
// react to the rising edge before the falling edge arrives, which matters
// for edge-triggered circuits such as a flip-flop's clock input.
func (g *Graph) PulseLeverStable(h handle.LeverHandle) error {
	g.SetLever(h)
	if _, err := g.RunUntilStable(10); err != nil {
		return err
	}
	g.ResetLever(h)
	_, err := g.RunUntilStable(10)
	return err
}
