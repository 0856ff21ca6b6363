package core

// deadCodeEliminationPass removes every gate with no dependents that is
// not itself observable (a declared output, probe, or lever), then walks
// backward through the dependencies exposed by each removal, in case
// eliminating a gate leaves one of its own dependencies unreferenced.
func (b *Builder) deadCodeEliminationPass() {
	queue := newWorklist()
	b.nodes.All(func(i int, g *Gate) bool {
		gi := idx(i)
		if len(g.Dependents) == 0 && !b.isObservable(gi) {
			queue.push(gi)
		}
		return true
	})

	for {
		i, ok := queue.pop()
		if !ok {
			break
		}
		g, exists := b.nodes.Get(pos(i))
		if !exists {
			continue
		}
		if len(g.Dependents) != 0 || b.isObservable(i) {
			continue
		}
		deps := g.Deps
		b.nodes.Remove(pos(i))
		for _, d := range deps {
			if d.IsConst() || d == i {
				continue
			}
			dg := b.get(d)
			delete(dg.Dependents, i)
			if len(dg.Dependents) == 0 && !b.isObservable(d) {
				queue.push(d)
			}
		}
	}
}
