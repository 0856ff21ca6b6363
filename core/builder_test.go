package core_test

import (
	"testing"

	"github.com/katalvlaran/gatesim/core"
	"github.com/katalvlaran/gatesim/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderSeedsConstants(t *testing.T) {
	b := core.NewBuilder()
	assert.Equal(t, 2, b.Len())
	assert.True(t, b.IsEmpty())
}

func TestBasicGateConstruction(t *testing.T) {
	b := core.NewBuilder()
	lv := b.Lever("in")
	n := b.Not(lv.Bit(), "not_in")
	assert.NotEqual(t, lv.Bit(), n)
	assert.Equal(t, 4, b.Len())
}

func TestAppendDepRejectsSelfAndConstants(t *testing.T) {
	b := core.NewBuilder()
	lv := b.Lever("x")
	and := b.And("and1", lv.Bit())

	err := b.AppendDep(and, and)
	require.Error(t, err)

	err = b.AppendDep(gate.Off, lv.Bit())
	require.Error(t, err)

	err = b.AppendDep(and, lv.Bit())
	require.NoError(t, err)
}

func TestInitializeProducesGraph(t *testing.T) {
	b := core.NewBuilder()
	lv := b.Lever("in")
	not := b.Not(lv.Bit(), "not_in")
	out := b.Output("out", []gate.Index{not})

	g, err := b.Initialize()
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.True(t, g.ReadBit(out, 0))
	g.SetLever(lv)
	assert.False(t, g.ReadBit(out, 0))
}

func TestConstantFoldingRemovesDeadAndGate(t *testing.T) {
	b := core.NewBuilder()
	lv := b.Lever("x")
	off := b.And("dead", gate.Off, lv.Bit())
	out := b.Output("out", []gate.Index{off})

	g, err := b.Initialize()
	require.NoError(t, err)
	assert.False(t, g.ReadBit(out, 0))
}

func TestSkipOptimizationPreservesGateCount(t *testing.T) {
	b := core.NewBuilder()
	lv := b.Lever("x")
	b.And("id", lv.Bit())

	g, err := b.Initialize(core.WithSkipOptimization())
	require.NoError(t, err)
	assert.Equal(t, b.Len(), g.Len())
}
