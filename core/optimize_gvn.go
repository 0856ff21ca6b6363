package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gatesim/gate"
)

// globalValueNumberingPass merges gates that are provably equivalent
// because they share a kind and, transitively, the same set of
// dependencies, even if they were never produced by the same constructor
// call. Two gates are assigned the same value number when their kind and
// their dependencies' value numbers (taken as a sorted set, since And, Or
// and Xor-family folds do not care about dependency order) match; every
// gate but one representative per class is then eliminated in favor of
// that representative.
//
// Each round can only ever reduce the gate count, so the pass runs to a
// fixpoint in at most Len() rounds.
//
// Sorting a gate's dependency list is done in place, matching the
// reference behavior this pass is grounded on. Because of this,
// Builder.ReplaceDepAt's position argument is only meaningful for edits
// made before Initialize runs the optimizer; once this pass has run,
// position no longer reflects build order.
func (b *Builder) globalValueNumberingPass(queue *worklist) {
	for round, limit := 0, b.nodes.Len()+1; round < limit; round++ {
		classes := make(map[string]gate.Index)
		merged := false

		b.nodes.All(func(i int, g *Gate) bool {
			gi := idx(i)
			if gi.IsConst() || g.Kind == gate.KindLever {
				return true
			}
			sort.Slice(g.Deps, func(a, c int) bool { return g.Deps[a] < g.Deps[c] })
			key := valueNumberKey(g)
			if rep, ok := classes[key]; ok {
				b.replaceAllRefs(gi, rep, queue)
				merged = true
				return true
			}
			classes[key] = gi
			return true
		})

		if !merged {
			return
		}
	}
}

func valueNumberKey(g *Gate) string {
	return fmt.Sprintf("%d:%v", g.Kind, g.Deps)
}
