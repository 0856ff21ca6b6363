// Package gatesim (gatesim) is your in-memory workbench for building and
// simulating gate-level digital circuits in Go.
//
// 🚀 What is gatesim?
//
//	A modern, pure-Go library that brings together:
//
//	  • Gate primitives: And, Or, Xor (and their negations), Not, levers
//	  • A mutable builder for wiring gates, including feedback loops
//	  • An optimizer that shrinks a built graph before it ever runs
//	  • An event-driven simulator with unit-delay-per-tick semantics
//
// ✨ Why choose gatesim?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Correct on cycles — the tick engine settles latches, flip-flops,
//     and counters without any special-casing at the wiring layer
//   - Inspectable       — name your gates, probe a bus mid-simulation,
//     dump any graph as GraphViz DOT
//   - Pure Go           — no cgo, only testify in tests
//
// Under the hood, the public surface lives in four subpackages, backed by
// three small internal-flavored building blocks:
//
//	gate/  — the Index and Kind primitives and their combinational algebra
//	core/  — Builder: construction, dependency editing, the optimizer
//	sim/   — Graph: the compiled, runnable circuit and its tick engine
//	handle/ — LeverHandle, OutputHandle and Probe, shared by core and sim
//
//	bitstate/ — the packed value/updated bit-plane pair backing a Graph
//	dstack/   — the write/read double-buffer driving tick-by-tick propagation
//	slab/     — the index-stable arena backing Builder's gate storage
//
// Quick example: an inverter wired to a lever and an output.
//
//	b := core.NewBuilder()
//	in := b.Lever("in")
//	out := b.Output("out", []gate.Index{b.Not(in.Bit(), "inv")})
//	g, _ := b.Initialize()
//	g.SetLever(in)
//	g.ReadBit(out, 0) // false
//
// See SPEC_FULL.md in the module root for the full component-by-component
// design, and core's and sim's package docs for the builder and
// simulator APIs in full.
package gatesim
