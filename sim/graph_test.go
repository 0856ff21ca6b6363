package sim_test

import (
	"testing"

	"github.com/katalvlaran/gatesim/gate"
	"github.com/katalvlaran/gatesim/handle"
	"github.com/katalvlaran/gatesim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNot returns a compiled 4-gate graph: Off, On, Lever(2), Not(3) of
// the lever, with the lever exposed as lv and the inverter's output as
// output 0.
func buildNot() (*sim.Graph, handle.LeverHandle, handle.OutputHandle) {
	nodes := []sim.Node{
		{Kind: gate.KindOff},
		{Kind: gate.KindOn},
		{Kind: gate.KindLever, Dependents: []gate.Index{3}},
		{Kind: gate.KindNot, Deps: []gate.Index{2}},
	}
	lv := handle.NewLeverHandle(0, 2)
	out := handle.NewOutputHandle(0)
	g := sim.New(nodes, []gate.Index{2}, [][]gate.Index{{3}}, nil, nil)
	return g, lv, out
}

func TestNotGateInitialAndToggle(t *testing.T) {
	g, lv, out := buildNot()
	assert.True(t, g.ReadBit(out, 0))

	g.SetLever(lv)
	assert.False(t, g.ReadBit(out, 0))

	g.ResetLever(lv)
	assert.True(t, g.ReadBit(out, 0))
}

func TestFlipAndPulseLever(t *testing.T) {
	g, lv, out := buildNot()
	g.FlipLever(lv)
	assert.False(t, g.ReadBit(out, 0))

	g.PulseLever(lv)
	assert.True(t, g.ReadBit(out, 0))
}

// buildSRLatch wires a cross-coupled Nor latch: two Nor2 gates each
// feeding the other, driven by set/reset levers.
func buildSRLatch() (*sim.Graph, handle.LeverHandle, handle.LeverHandle, handle.OutputHandle) {
	// indices: 0 Off, 1 On, 2 setLever, 3 resetLever, 4 q = Nor2(3,5), 5 nq = Nor2(2,4)
	nodes := []sim.Node{
		{Kind: gate.KindOff},
		{Kind: gate.KindOn},
		{Kind: gate.KindLever, Dependents: []gate.Index{5}},
		{Kind: gate.KindLever, Dependents: []gate.Index{4}},
		{Kind: gate.KindNor, Deps: []gate.Index{3, 5}, Dependents: []gate.Index{5}},
		{Kind: gate.KindNor, Deps: []gate.Index{2, 4}, Dependents: []gate.Index{4}},
	}
	set := handle.NewLeverHandle(0, 2)
	reset := handle.NewLeverHandle(1, 3)
	q := handle.NewOutputHandle(0)
	g := sim.New(nodes, []gate.Index{2, 3}, [][]gate.Index{{4}}, nil, nil)
	return g, set, reset, q
}

func TestSRLatchSetReset(t *testing.T) {
	g, set, reset, q := buildSRLatch()

	require.NoError(t, g.SetLeverStable(set))
	assert.True(t, g.ReadBit(q, 0))

	require.NoError(t, g.ResetLeverStable(reset))
	assert.True(t, g.ReadBit(q, 0))

	require.NoError(t, g.SetLeverStable(reset))
	assert.False(t, g.ReadBit(q, 0))

	require.NoError(t, g.ResetLeverStable(reset))
	require.NoError(t, g.SetLeverStable(set))
	assert.True(t, g.ReadBit(q, 0))
}

func TestReadBits64AndBig(t *testing.T) {
	nodes := []sim.Node{
		{Kind: gate.KindOff},
		{Kind: gate.KindOn},
	}
	g := sim.New(nodes, nil, [][]gate.Index{{gate.On, gate.Off, gate.On}}, nil, nil)
	out := handle.NewOutputHandle(0)
	assert.Equal(t, uint64(0b101), g.ReadBits64(out))
	assert.Equal(t, int64(0b101), g.ReadBigBits(out).Int64())
}
