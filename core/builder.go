// Package core implements the mutable, build-time gate graph: Builder, the
// gate constructors, dependency editing, the optimizer pipeline, and
// Initialize, which compiles a Builder into an immutable *sim.Graph.
package core

import (
	"fmt"

	"github.com/katalvlaran/gatesim/gate"
	"github.com/katalvlaran/gatesim/handle"
	"github.com/katalvlaran/gatesim/slab"
)

// Gate is one node of the build-time graph: its kind, the ordered list of
// gates it depends on, and the multiset of gates that depend on it (a
// dependent may appear more than once, if it lists the same dependency
// twice).
type Gate struct {
	Kind       gate.Kind
	Deps       []gate.Index
	Dependents map[gate.Index]int
	Name       string
}

func newGate(k gate.Kind) Gate {
	return Gate{Kind: k, Dependents: make(map[gate.Index]int)}
}

func idx(i int) gate.Index { return gate.Index(i) }
func pos(i gate.Index) int { return int(i) }

// Builder is the mutable, build-time representation of a gate graph.
// Construct one with NewBuilder, wire it up with the gate constructors and
// dependency-editing methods below, then call Initialize to compile it
// into a runnable *sim.Graph.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	nodes   *slab.Arena[Gate]
	levers  []gate.Index
	outputs [][]gate.Index
	probes  []handle.Probe
	observ  map[gate.Index]struct{}
	names   bool
}

// NewBuilder returns a Builder pre-seeded with the two reserved constant
// gates: gate.Off at index 0 and gate.On at index 1.
func NewBuilder(opts ...BuilderOption) *Builder {
	cfg := newBuilderConfig(opts...)
	b := &Builder{
		nodes:  slab.New[Gate](),
		observ: make(map[gate.Index]struct{}),
		names:  cfg.trackNames,
	}
	off := b.nodes.Insert(newGate(gate.KindOff))
	on := b.nodes.Insert(newGate(gate.KindOn))
	if idx(off) != gate.Off || idx(on) != gate.On {
		panic("core: builder did not allocate Off/On at reserved positions")
	}
	return b
}

func (b *Builder) name(n string) string {
	if !b.names {
		return ""
	}
	return n
}

// Len returns the number of live gates, including Off and On.
func (b *Builder) Len() int { return b.nodes.Len() }

// IsEmpty reports whether the graph holds only Off and On.
func (b *Builder) IsEmpty() bool { return b.Len() == 2 }

func (b *Builder) get(i gate.Index) *Gate {
	g, ok := b.nodes.Get(pos(i))
	if !ok {
		panic(fmt.Sprintf("core: gate %d does not exist", i))
	}
	return g
}

// dpush appends dep to g's dependency list and records g as one of dep's
// dependents. It is the only place new edges are created.
func (b *Builder) dpush(g gate.Index, dep gate.Index) {
	gg := b.get(g)
	gg.Deps = append(gg.Deps, dep)
	b.get(dep).Dependents[g]++
}

func (b *Builder) create(k gate.Kind, name string, deps ...gate.Index) gate.Index {
	i := idx(b.nodes.Insert(newGate(k)))
	b.get(i).Name = b.name(name)
	for _, d := range deps {
		b.dpush(i, d)
	}
	return i
}

// Not returns a gate computing the logical negation of dep.
func (b *Builder) Not(dep gate.Index, name string) gate.Index {
	return b.create(gate.KindNot, name, dep)
}

// Or2 returns a gate computing a || b.
func (b *Builder) Or2(a, c gate.Index, name string) gate.Index {
	return b.create(gate.KindOr, name, a, c)
}

// Nor1 returns a gate computing !dep, expressed as a Nor with a single
// dependency. Present for parity with the reference implementation, where
// single-input Nor nodes appear as an intermediate shape before
// optimization rewrites them to Not.
func (b *Builder) Nor1(dep gate.Index, name string) gate.Index {
	return b.create(gate.KindNor, name, dep)
}

// Nor2 returns a gate computing !(a || c).
func (b *Builder) Nor2(a, c gate.Index, name string) gate.Index {
	return b.create(gate.KindNor, name, a, c)
}

// And2 returns a gate computing a && c.
func (b *Builder) And2(a, c gate.Index, name string) gate.Index {
	return b.create(gate.KindAnd, name, a, c)
}

// Nand2 returns a gate computing !(a && c).
func (b *Builder) Nand2(a, c gate.Index, name string) gate.Index {
	return b.create(gate.KindNand, name, a, c)
}

// Xor2 returns a gate computing a != c.
func (b *Builder) Xor2(a, c gate.Index, name string) gate.Index {
	return b.create(gate.KindXor, name, a, c)
}

// Xnor2 returns a gate computing a == c.
func (b *Builder) Xnor2(a, c gate.Index, name string) gate.Index {
	return b.create(gate.KindXnor, name, a, c)
}

// And returns a gate computing the conjunction of every dep. An empty deps
// list is legal and folds to And's init value, true, though such a gate
// is pointless and will be constant-folded away by the optimizer.
func (b *Builder) And(name string, deps ...gate.Index) gate.Index {
	return b.create(gate.KindAnd, name, deps...)
}

// Nand returns a gate computing the negated conjunction of every dep.
func (b *Builder) Nand(name string, deps ...gate.Index) gate.Index {
	return b.create(gate.KindNand, name, deps...)
}

// Or returns a gate computing the disjunction of every dep.
func (b *Builder) Or(name string, deps ...gate.Index) gate.Index {
	return b.create(gate.KindOr, name, deps...)
}

// Nor returns a gate computing the negated disjunction of every dep.
func (b *Builder) Nor(name string, deps ...gate.Index) gate.Index {
	return b.create(gate.KindNor, name, deps...)
}

// Xor returns a gate computing the parity (odd number of true inputs) of
// every dep.
func (b *Builder) Xor(name string, deps ...gate.Index) gate.Index {
	return b.create(gate.KindXor, name, deps...)
}

// Xnor returns a gate computing the negated parity of every dep.
func (b *Builder) Xnor(name string, deps ...gate.Index) gate.Index {
	return b.create(gate.KindXnor, name, deps...)
}

// Lever declares an externally driven input bit and returns a handle used
// to read or write it later, both as a wiring source now (via Bit) and as
// a runtime input after Initialize.
func (b *Builder) Lever(name string) handle.LeverHandle {
	i := idx(b.nodes.Insert(newGate(gate.KindLever)))
	b.get(i).Name = b.name(name)
	h := handle.NewLeverHandle(len(b.levers), i)
	b.levers = append(b.levers, i)
	return h
}

// AppendDep adds dep as one more dependency of g. It returns
// ErrStructureViolation if g is Off, On, or a Lever (none of which accept
// dependencies) or if dep equals g, and ErrIndexBounds if either index is
// out of range.
func (b *Builder) AppendDep(g, dep gate.Index) error {
	if err := b.checkEditable(g); err != nil {
		return err
	}
	if _, ok := b.nodes.Get(pos(dep)); !ok {
		return fmt.Errorf("%w: dependency %d", ErrIndexBounds, dep)
	}
	if dep == g {
		return fmt.Errorf("%w: gate %d cannot depend on itself", ErrStructureViolation, g)
	}
	b.dpush(g, dep)
	return nil
}

// ReplaceDepAt rewrites the dependency at position pos of g's dependency
// list to dep. Dependency order is only meaningful, and therefore only
// safe to address positionally, for edits issued before Initialize runs
// the optimizer: global value numbering sorts each gate's dependency list
// in place, after which position no longer corresponds to build order.
func (b *Builder) ReplaceDepAt(g gate.Index, pos int, dep gate.Index) error {
	if err := b.checkEditable(g); err != nil {
		return err
	}
	gg := b.get(g)
	if pos < 0 || pos >= len(gg.Deps) {
		return fmt.Errorf("%w: position %d", ErrIndexBounds, pos)
	}
	if _, ok := b.nodes.Get(int(dep)); !ok {
		return fmt.Errorf("%w: dependency %d", ErrIndexBounds, dep)
	}
	if dep == g {
		return fmt.Errorf("%w: gate %d cannot depend on itself", ErrStructureViolation, g)
	}
	old := gg.Deps[pos]
	gg.Deps[pos] = dep
	b.get(old).Dependents[g]--
	if b.get(old).Dependents[g] <= 0 {
		delete(b.get(old).Dependents, g)
	}
	b.get(dep).Dependents[g]++
	return nil
}

func (b *Builder) checkEditable(g gate.Index) error {
	gg, ok := b.nodes.Get(pos(g))
	if !ok {
		return fmt.Errorf("%w: gate %d", ErrIndexBounds, g)
	}
	switch gg.Kind {
	case gate.KindOff, gate.KindOn, gate.KindLever:
		return fmt.Errorf("%w: gate %d of kind %s cannot be edited", ErrStructureViolation, g, gg.Kind)
	}
	return nil
}

// Output declares a named multi-bit output bus over bits, in LSB-first
// order, and returns a handle used to read it after Initialize.
func (b *Builder) Output(name string, bits []gate.Index) handle.OutputHandle {
	cp := append([]gate.Index(nil), bits...)
	for _, bit := range cp {
		b.observ[bit] = struct{}{}
	}
	h := handle.NewOutputHandle(len(b.outputs))
	b.outputs = append(b.outputs, cp)
	_ = name
	return h
}

// Probe registers a named bus for diagnostic emission: whenever any bit of
// bits changes value, the simulator writes the probe's new value to its
// configured writer. Probes never affect circuit semantics.
func (b *Builder) Probe(name string, bits []gate.Index) {
	cp := append([]gate.Index(nil), bits...)
	for _, bit := range cp {
		b.observ[bit] = struct{}{}
	}
	b.probes = append(b.probes, handle.Probe{Name: name, Bits: cp})
}

func (b *Builder) isObservable(i gate.Index) bool {
	if i.IsConst() {
		return true
	}
	if _, ok := b.observ[i]; ok {
		return true
	}
	for _, l := range b.levers {
		if l == i {
			return true
		}
	}
	return false
}
