package sim

import "github.com/katalvlaran/gatesim/gate"

// foldShort evaluates a short-circuiting fold (And, Nand, Or, Nor) by
// scanning dependencies until one forces the result, or Kind.Init if none
// do.
func (g *Graph) foldShort(k gate.Kind, deps []gate.Index) bool {
	init := k.Init()
	short := !init
	for _, d := range deps {
		if k.Accumulate(init, g.value(d)) == short {
			return short
		}
	}
	return init
}

func (g *Graph) evaluate(i gate.Index, node *Node) bool {
	switch node.Kind {
	case gate.KindOn:
		return true
	case gate.KindOff:
		return false
	case gate.KindLever:
		return g.value(i)
	case gate.KindNot:
		return !g.value(node.Deps[0])
	default:
		var result bool
		if len(node.Deps) == 0 {
			result = false
		} else if node.Kind.ShortCircuits() {
			result = g.foldShort(node.Kind, node.Deps)
		} else {
			result = node.Kind.Init()
			for _, d := range node.Deps {
				result = node.Kind.Accumulate(result, g.value(d))
			}
		}
		if node.Kind.IsNegated() {
			result = !result
		}
		return result
	}
}

// tickInner drains the propagation queue to a fixpoint within the current
// tick: every gate popped is evaluated once; if it has already been
// written this tick and the new value disagrees with what was written,
// the conflict is deferred to the next tick via pending instead of
// applied immediately, which is what lets a feedback circuit (a latch, a
// flip-flop, a counter) settle without looping forever within one tick.
func (g *Graph) tickInner() {
	for !g.propagation.IsEmpty() {
		g.propagation.Swap()
		for {
			i, ok := g.propagation.Pop()
			if !ok {
				break
			}
			node := &g.nodes[i]
			newState := g.evaluate(i, node)

			if oldState, wasUpdated := g.state.GetIfUpdated(int(i)); wasUpdated {
				if oldState != newState {
					g.pending.Push(i)
				}
				continue
			}

			oldState := g.state.GetValue(int(i))
			g.state.Set(int(i), newState)

			if oldState != newState {
				g.emitProbe(i)
			}
			if node.Kind == gate.KindLever || oldState != newState {
				g.propagation.PushAll(node.Dependents)
			}
		}
	}
}

// Tick drains every currently pending update, one at a time: each pending
// gate starts a fresh tick (clearing every gate's updated flag), is
// re-enqueued, and is propagated to fixpoint via tickInner before the next
// pending gate is considered. The updates drained are those deferred by the
// previous call together with any lever edits made since; updates deferred
// during this call wait for the next one. This is what gives the engine its
// unit-delay-per-tick semantics even though many gates may be touched
// within a single call.
func (g *Graph) Tick() {
	// Deferred updates sit on pending's read side, lever edits on its
	// write side; collect both before tickInner pushes new deferrals.
	var due []gate.Index
	for {
		p, ok := g.pending.Pop()
		if !ok {
			break
		}
		due = append(due, p)
	}
	g.pending.Swap()
	for {
		p, ok := g.pending.Pop()
		if !ok {
			break
		}
		due = append(due, p)
	}
	for _, p := range due {
		g.state.Tick()
		g.propagation.Push(p)
		g.tickInner()
	}
	g.pending.Swap()
}

// RunUntilStable calls Tick repeatedly, up to max times, stopping as soon
// as no pending updates remain. It returns the number of ticks actually
// run, or ErrNonConvergent if the graph still had pending updates after
// max ticks (a circuit with an inverting feedback loop and no latch to
// break it never settles; any other circuit reports it only when max is
// too small for it to settle).
func (g *Graph) RunUntilStable(max int) (int, error) {
	for i := 0; i < max; i++ {
		if g.pending.IsEmpty() {
			return i, nil
		}
		g.Tick()
	}
	if g.pending.IsEmpty() {
		return max, nil
	}
	return max, ErrNonConvergent
}
