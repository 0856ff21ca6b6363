package core

import "github.com/katalvlaran/gatesim/gate"

// notDeduplicationPass fuses every Not gate sharing the same input into a
// single representative: the first Not found for a given dependency
// survives, and every later duplicate is eliminated with every reference
// to it (dependents, outputs, probes) redirected to the representative.
func (b *Builder) notDeduplicationPass(queue *worklist) {
	var nots []gate.Index
	b.nodes.All(func(i int, g *Gate) bool {
		if g.Kind == gate.KindNot {
			nots = append(nots, idx(i))
		}
		return true
	})

	seen := make(map[gate.Index]gate.Index, len(nots))
	for _, i := range nots {
		g, exists := b.nodes.Get(pos(i))
		if !exists {
			continue
		}
		dep := g.Deps[0]
		if rep, ok := seen[dep]; ok {
			if rep != i {
				b.replaceAllRefs(i, rep, queue)
			}
			continue
		}
		seen[dep] = i
	}
}
