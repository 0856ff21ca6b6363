package core

import "github.com/katalvlaran/gatesim/gate"

// singleDependencyCollapsingPass cleans up gates that still have exactly
// one dependency once the fixed pipeline and the earlier optional passes
// have run.
//
// A non-negated single-dependency gate (And, Or, Xor) is simply an alias
// for its dependency and is replaced by it outright. A negated
// single-dependency gate (Nand, Nor, Xnor) over a dependency that itself
// folds (And, Or, Xor, Nand, Nor, Xnor) is rewritten, by De Morgan's law,
// to fold directly over that dependency's own dependencies instead, with
// its kind flipped to cancel or compound the two negations; this grafts
// in place regardless of whether the inlined dependency has other
// dependents, since dep's own edges are untouched; the only output that
// changes is g's. A negated single-dependency gate over a Not or Lever
// (neither of which folds) simply becomes Not.
func (b *Builder) singleDependencyCollapsingPass(queue *worklist) {
	var targets []gate.Index
	b.nodes.All(func(i int, g *Gate) bool {
		switch g.Kind {
		case gate.KindAnd, gate.KindNand, gate.KindOr, gate.KindNor, gate.KindXor, gate.KindXnor:
			if len(g.Deps) == 1 {
				targets = append(targets, idx(i))
			}
		}
		return true
	})

	for _, i := range targets {
		g, exists := b.nodes.Get(pos(i))
		if !exists || len(g.Deps) != 1 {
			continue
		}
		dep := g.Deps[0]
		if dep == i {
			continue
		}

		dg, ok := b.nodes.Get(pos(dep))
		if !ok {
			continue
		}
		// dep depending back on g would make the collapse fold g into
		// its own dependency set (graftNegated) or leave a dangling
		// reference behind (replaceAllRefs removes g while dep still
		// depends on it): skip, leaving the feedback edge intact.
		if dependsOn(dg, i) {
			continue
		}

		if !g.Kind.IsNegated() {
			b.replaceAllRefs(i, dep, queue)
			continue
		}

		switch dg.Kind {
		case gate.KindAnd, gate.KindOr, gate.KindXor:
			b.graftNegated(i, dep, dg.Kind.NegatedPeer(), queue)
		case gate.KindNand, gate.KindNor, gate.KindXnor:
			base, _ := baseFamily(dg.Kind)
			b.graftNegated(i, dep, base, queue)
		default:
			b.mutateToNot(i, dep, queue)
		}
	}
}

// dependsOn reports whether g directly lists target among its
// dependencies.
func dependsOn(g *Gate, target gate.Index) bool {
	for _, d := range g.Deps {
		if d == target {
			return true
		}
	}
	return false
}

// graftNegated rewires g to fold with newKind directly over dep's own
// dependencies, removing the edge from g to dep.
func (b *Builder) graftNegated(g, dep gate.Index, newKind gate.Kind, queue *worklist) {
	b.removeOneDep(g, dep)
	gg := b.get(g)
	gg.Kind = newKind
	for _, dd := range b.get(dep).Deps {
		b.dpush(g, dd)
	}
	queue.push(g)
	queue.pushAll(b.dependentsOf(g))
}
