package core

import "github.com/katalvlaran/gatesim/gate"

// baseFamily maps a gate kind to the non-negated member of its fold
// family: And and Nand both fold with And's accumulate rule, Or and Nor
// with Or's, Xor and Xnor with Xor's.
func baseFamily(k gate.Kind) (gate.Kind, bool) {
	switch k {
	case gate.KindAnd, gate.KindNand:
		return gate.KindAnd, true
	case gate.KindOr, gate.KindNor:
		return gate.KindOr, true
	case gate.KindXor, gate.KindXnor:
		return gate.KindXor, true
	default:
		return 0, false
	}
}

// equalGateMergingPass flattens associative chains: if gate g depends on
// gate dep and both share a fold family (e.g. g is And or Nand and dep is
// exactly And), dep's own dependencies are inlined directly into g in
// place of the edge to dep, since folding is associative within a family
// and only g's own negation, not dep's, would ever apply an extra
// inversion. dep is only inlined when it is the plain, non-negated member
// of the family: inlining a Nand's dependencies directly would silently
// drop the negation Nand applies before folding resumes.
//
// Before inlining, every one of dep's dependencies is checked against g
// and dep themselves; if inlining would wire g to depend on itself, or
// dep to depend on itself, that dependency is left untouched and the
// merge for this (g, dep) pair is abandoned, since flattening it would
// introduce a cycle the tick engine cannot evaluate in one pass.
func (b *Builder) equalGateMergingPass() {
	queue := newWorklist()
	b.nodes.All(func(i int, g *Gate) bool {
		if _, ok := baseFamily(g.Kind); ok {
			queue.push(idx(i))
		}
		return true
	})

	for {
		i, ok := queue.pop()
		if !ok {
			break
		}
		if b.tryMergeOnce(i, queue) {
			queue.push(i)
		}
	}
}

func (b *Builder) tryMergeOnce(i gate.Index, queue *worklist) bool {
	g, exists := b.nodes.Get(pos(i))
	if !exists {
		return false
	}
	gFam, ok := baseFamily(g.Kind)
	if !ok {
		return false
	}

	for _, dep := range g.Deps {
		if dep == i || dep.IsConst() {
			continue
		}
		dg, ok := b.nodes.Get(pos(dep))
		if !ok {
			continue
		}
		if dg.Kind != gFam {
			continue
		}
		cyclic := false
		for _, dd := range dg.Deps {
			if dd == dep || dd == i {
				cyclic = true
				break
			}
		}
		if cyclic {
			continue
		}

		b.removeOneDep(i, dep)
		for _, dd := range dg.Deps {
			b.dpush(i, dd)
		}
		queue.pushAll(b.dependentsOf(i))
		return true
	}
	return false
}

// removeOneDep removes the first occurrence of dep from g's dependency
// list and decrements the corresponding Dependents bookkeeping by one.
func (b *Builder) removeOneDep(g, dep gate.Index) {
	gg := b.get(g)
	for i, d := range gg.Deps {
		if d == dep {
			gg.Deps = append(gg.Deps[:i], gg.Deps[i+1:]...)
			break
		}
	}
	dg := b.get(dep)
	dg.Dependents[g]--
	if dg.Dependents[g] <= 0 {
		delete(dg.Dependents, g)
	}
}
