package core

import "github.com/katalvlaran/gatesim/gate"

// constPropagationPass folds gates whose output is fully determined by
// constant dependencies, seeded from the dependents of Off and On and from
// every gate that already has a single dependency, then following the
// worklist as folds expose further constant gates downstream.
func (b *Builder) constPropagationPass(queue *worklist) {
	queue.pushAll(b.dependentsOf(gate.Off))
	queue.pushAll(b.dependentsOf(gate.On))
	b.nodes.All(func(i int, g *Gate) bool {
		gi := idx(i)
		if gi.IsConst() || g.Kind == gate.KindLever {
			return true
		}
		if len(g.Deps) <= 1 {
			queue.push(gi)
		}
		return true
	})

	for {
		i, ok := queue.pop()
		if !ok {
			break
		}
		b.foldConstant(i, queue)
	}
}

// foldConstant applies one step of constant propagation to gate i: direct
// negation of a constant, short-circuit collapse, stripping of neutral
// constant dependencies (toggling Xor<->Xnor as constant-true dependencies
// are absorbed), and finally collapsing to Not or to a bare dependency
// once at most one non-constant dependency remains.
func (b *Builder) foldConstant(i gate.Index, queue *worklist) {
	g, ok := b.nodes.Get(pos(i))
	if !ok {
		return
	}
	switch g.Kind {
	case gate.KindOff, gate.KindOn, gate.KindLever:
		return
	case gate.KindNot:
		if dep := g.Deps[0]; dep.IsConst() {
			opp, _ := dep.OppositeIfConst()
			b.replaceAllRefs(i, opp, queue)
		}
		return
	}

	k := g.Kind
	var triggerConst gate.Index
	var triggerFolds bool
	switch k {
	case gate.KindAnd, gate.KindNand:
		triggerConst, triggerFolds = gate.Off, false
	case gate.KindOr, gate.KindNor:
		triggerConst, triggerFolds = gate.On, true
	case gate.KindXor, gate.KindXnor:
		// no short circuit; handled by the stripping loop below.
	}

	if k.ShortCircuits() {
		for _, d := range g.Deps {
			if d == triggerConst {
				folded := triggerFolds
				if k.IsNegated() {
					folded = !folded
				}
				target := gate.Off
				if folded {
					target = gate.On
				}
				b.replaceAllRefs(i, target, queue)
				return
			}
		}
	}

	// Strip neutral constants, toggling kind for Xor/Xnor as On deps are
	// absorbed.
	var kept []gate.Index
	for _, d := range g.Deps {
		if !d.IsConst() {
			kept = append(kept, d)
			continue
		}
		b.get(d).Dependents[i]--
		if b.get(d).Dependents[i] <= 0 {
			delete(b.get(d).Dependents, i)
		}
		if (k == gate.KindXor || k == gate.KindXnor) && d.IsOn() {
			k = k.NegatedPeer()
		}
	}
	if len(kept) != len(g.Deps) {
		g.Deps = kept
		g.Kind = k
	}

	switch len(g.Deps) {
	case 0:
		result := k.Init()
		if k.IsNegated() {
			result = !result
		}
		target := gate.Off
		if result {
			target = gate.On
		}
		b.replaceAllRefs(i, target, queue)
	case 1:
		dep := g.Deps[0]
		if k.IsNegated() {
			b.mutateToNot(i, dep, queue)
		} else {
			b.replaceAllRefs(i, dep, queue)
		}
	default:
		// More than one dependency remains and no fold applies yet; leave
		// i in place. It may still become foldable once a currently
		// non-constant dependency is folded elsewhere, which requeues i
		// via its presence in that dependency's Dependents set.
	}
}
