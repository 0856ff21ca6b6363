package core

import "github.com/katalvlaran/gatesim/sim"

// Initialize runs the optimizer pipeline (unless WithSkipOptimization was
// given), compacts the graph, and compiles it into a runnable *sim.Graph.
// The Builder remains usable afterward but any further edits have no
// effect on the returned Graph, which is a snapshot.
func (b *Builder) Initialize(opts ...InitOption) (*sim.Graph, error) {
	cfg := newBuilderConfig(opts...)

	if !cfg.skipOptimize {
		b.optimize(cfg)
	}

	nodes, levers, outputs, probes := b.compact()
	return sim.New(nodes, levers, outputs, probes, cfg.verboseOptWrit), nil
}

// optimize runs the fixed pipeline (constant propagation, dead code
// elimination, duplicate dependency removal, constant propagation again)
// followed by the richer optional passes (equal-gate merging, not
// deduplication, single-dependency collapsing, global value numbering),
// reporting each pass's effect on the gate count to cfg's writer.
func (b *Builder) optimize(cfg *builderConfig) {
	run := func(name string, fn func()) {
		before := b.nodes.Len()
		fn()
		reportPass(cfg.verboseOptWrit, name, before, b.nodes.Len())
	}

	run("const_propagation", func() { b.constPropagationPass(newWorklist()) })
	run("dead_code_elimination", func() { b.deadCodeEliminationPass() })
	run("duplicate_dependency", func() { b.duplicateDependencyPass() })
	run("const_propagation", func() { b.constPropagationPass(newWorklist()) })

	run("equal_gate_merging", func() { b.equalGateMergingPass() })
	run("not_deduplication", func() { b.notDeduplicationPass(newWorklist()) })
	run("single_dependency_collapsing", func() { b.singleDependencyCollapsingPass(newWorklist()) })
	run("global_value_numbering", func() { b.globalValueNumberingPass(newWorklist()) })
	run("dead_code_elimination", func() { b.deadCodeEliminationPass() })
}
