package core

import (
	"github.com/katalvlaran/gatesim/gate"
	"github.com/katalvlaran/gatesim/handle"
	"github.com/katalvlaran/gatesim/sim"
)

// compact renumbers the builder's arena into a dense range starting at 0,
// visiting live gates in ascending index order so that gate.Off and
// gate.On, which are never removed by any optimizer pass, always land at
// their reserved positions 0 and 1. It returns everything sim.New needs
// to build the runtime graph.
func (b *Builder) compact() ([]sim.Node, []gate.Index, [][]gate.Index, map[gate.Index]handle.Probe) {
	var order []gate.Index
	b.nodes.All(func(i int, g *Gate) bool {
		order = append(order, idx(i))
		return true
	})

	remap := make(map[gate.Index]gate.Index, len(order))
	for newIdx, old := range order {
		remap[old] = idx(newIdx)
	}

	nodes := make([]sim.Node, len(order))
	for newIdx, old := range order {
		g := b.get(old)
		deps := make([]gate.Index, len(g.Deps))
		for k, d := range g.Deps {
			deps[k] = remap[d]
		}
		var dependents []gate.Index
		for dep, count := range g.Dependents {
			nd := remap[dep]
			for c := 0; c < count; c++ {
				dependents = append(dependents, nd)
			}
		}
		nodes[newIdx] = sim.Node{Kind: g.Kind, Deps: deps, Dependents: dependents}
	}

	leverGates := make([]gate.Index, len(b.levers))
	for i, l := range b.levers {
		leverGates[i] = remap[l]
	}

	outputBits := make([][]gate.Index, len(b.outputs))
	for i, bits := range b.outputs {
		nb := make([]gate.Index, len(bits))
		for j, bit := range bits {
			nb[j] = remap[bit]
		}
		outputBits[i] = nb
	}

	probes := make(map[gate.Index]handle.Probe)
	for _, p := range b.probes {
		nb := make([]gate.Index, len(p.Bits))
		for j, bit := range p.Bits {
			nb[j] = remap[bit]
		}
		remapped := handle.Probe{Name: p.Name, Bits: nb}
		for _, bit := range nb {
			probes[bit] = remapped
		}
	}

	return nodes, leverGates, outputBits, probes
}
