package core

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gatesim/gate"
)

// worklist is a FIFO queue of gate indices with membership deduplication,
// used by every optimizer pass below to avoid re-examining a gate already
// scheduled.
type worklist struct {
	queue  []gate.Index
	queued map[gate.Index]bool
}

func newWorklist() *worklist {
	return &worklist{queued: make(map[gate.Index]bool)}
}

func (w *worklist) push(i gate.Index) {
	if w.queued[i] {
		return
	}
	w.queued[i] = true
	w.queue = append(w.queue, i)
}

func (w *worklist) pushAll(is []gate.Index) {
	for _, i := range is {
		w.push(i)
	}
}

func (w *worklist) pop() (gate.Index, bool) {
	if len(w.queue) == 0 {
		return 0, false
	}
	i := w.queue[0]
	w.queue = w.queue[1:]
	delete(w.queued, i)
	return i, true
}

// dependentsOf returns the dependent set of i as a slice, safe to iterate
// while the underlying map is mutated by the caller.
func (b *Builder) dependentsOf(i gate.Index) []gate.Index {
	g := b.get(i)
	out := make([]gate.Index, 0, len(g.Dependents))
	for d := range g.Dependents {
		out = append(out, d)
	}
	return out
}

// swapDependency rewrites every occurrence of oldDep in g's dependency
// list to newDep, and updates both gates' Dependents bookkeeping to match.
func (b *Builder) swapDependency(g, oldDep, newDep gate.Index) {
	gg := b.get(g)
	n := 0
	for i, d := range gg.Deps {
		if d == oldDep {
			gg.Deps[i] = newDep
			n++
		}
	}
	if n == 0 {
		return
	}
	og := b.get(oldDep)
	og.Dependents[g] -= n
	if og.Dependents[g] <= 0 {
		delete(og.Dependents, g)
	}
	b.get(newDep).Dependents[g] += n
}

// replaceAllRefs eliminates gate old, rewiring every dependent, every
// output bus, and every probe bus that referenced it to reference target
// instead, then removes old from the arena. Every rewired dependent is
// pushed onto queue for re-examination, since its dependency set changed.
func (b *Builder) replaceAllRefs(old, target gate.Index, queue *worklist) {
	if old == target {
		return
	}
	for _, dep := range b.dependentsOf(old) {
		b.swapDependency(dep, old, target)
		queue.push(dep)
	}
	for i, bits := range b.outputs {
		for j, bit := range bits {
			if bit == old {
				b.outputs[i][j] = target
			}
		}
	}
	for i, p := range b.probes {
		for j, bit := range p.Bits {
			if bit == old {
				b.probes[i].Bits[j] = target
			}
		}
	}
	if _, ok := b.observ[old]; ok {
		delete(b.observ, old)
		b.observ[target] = struct{}{}
	}
	b.nodes.Remove(pos(old))
}

// mutateToNot turns g in place into a Not gate over dep, preserving g's
// own index (and therefore every reference to it) since only its kind and
// dependency list change, not its identity.
func (b *Builder) mutateToNot(g, dep gate.Index, queue *worklist) {
	gg := b.get(g)
	for _, d := range gg.Deps {
		if d == dep {
			continue
		}
		od := b.get(d)
		od.Dependents[g]--
		if od.Dependents[g] <= 0 {
			delete(od.Dependents, g)
		}
	}
	gg.Kind = gate.KindNot
	gg.Deps = []gate.Index{dep}
	b.get(dep).Dependents[g] = 1
	queue.pushAll(b.dependentsOf(g))
}

func reportPass(w io.Writer, name string, before, after int) {
	if before == 0 {
		fmt.Fprintf(w, "%s: %d -> %d gates\n", name, before, after)
		return
	}
	pct := 100.0 * float64(before-after) / float64(before)
	fmt.Fprintf(w, "%s: %d -> %d gates (%.1f%% reduction)\n", name, before, after, pct)
}
