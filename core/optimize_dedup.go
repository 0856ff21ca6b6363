package core

import "github.com/katalvlaran/gatesim/gate"

// duplicateDependencyPass collapses repeated dependencies within a single
// gate's dependency list. And, Nand, Or and Nor keep exactly one copy of
// each distinct dependency (x op x == x for all four). Xor and Xnor cancel
// pairs (x xor x == false), so a dependency repeated an odd number of
// times is kept once and one repeated an even number of times is kept as
// a single cancelling pair (two copies), matching the grounded original's
// normalized form rather than dropping it to zero copies (both fold to
// the same value; this keeps the intermediate shape identical).
//
// This pass never folds a gate down to zero or one dependency itself;
// constPropagationPass, run again immediately afterward in Initialize,
// picks up any gate this pass leaves with at most one dependency.
func (b *Builder) duplicateDependencyPass() {
	b.nodes.All(func(i int, g *Gate) bool {
		gi := idx(i)
		switch g.Kind {
		case gate.KindOff, gate.KindOn, gate.KindLever, gate.KindNot:
			return true
		}
		if len(g.Deps) < 2 {
			return true
		}

		counts := make(map[gate.Index]int, len(g.Deps))
		order := make([]gate.Index, 0, len(g.Deps))
		for _, d := range g.Deps {
			if counts[d] == 0 {
				order = append(order, d)
			}
			counts[d]++
		}

		var newDeps []gate.Index
		switch g.Kind {
		case gate.KindXor, gate.KindXnor:
			for _, d := range order {
				if counts[d]%2 == 1 {
					newDeps = append(newDeps, d)
				} else {
					newDeps = append(newDeps, d, d)
				}
			}
		default:
			newDeps = order
		}

		if len(newDeps) == len(g.Deps) {
			return true
		}

		newCounts := make(map[gate.Index]int, len(newDeps))
		for _, d := range newDeps {
			newCounts[d]++
		}
		for d, c := range counts {
			if c != newCounts[d] {
				dg := b.get(d)
				if newCounts[d] == 0 {
					delete(dg.Dependents, gi)
				} else {
					dg.Dependents[gi] = newCounts[d]
				}
			}
		}
		g.Deps = newDeps
		return true
	})
}
