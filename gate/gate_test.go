package gate_test

import (
	"testing"

	"github.com/katalvlaran/gatesim/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexConsts(t *testing.T) {
	assert.True(t, gate.Off.IsOff())
	assert.True(t, gate.On.IsOn())
	assert.True(t, gate.Off.IsConst())
	assert.True(t, gate.On.IsConst())
	assert.False(t, gate.Index(2).IsConst())

	opp, ok := gate.Off.OppositeIfConst()
	require.True(t, ok)
	assert.Equal(t, gate.On, opp)

	opp, ok = gate.On.OppositeIfConst()
	require.True(t, ok)
	assert.Equal(t, gate.Off, opp)

	_, ok = gate.Index(5).OppositeIfConst()
	assert.False(t, ok)
}

func TestNegatedPeers(t *testing.T) {
	pairs := []struct{ k, peer gate.Kind }{
		{gate.KindAnd, gate.KindNand},
		{gate.KindOr, gate.KindNor},
		{gate.KindXor, gate.KindXnor},
	}
	for _, p := range pairs {
		require.True(t, p.k.HasNegatedPeer())
		assert.Equal(t, p.peer, p.k.NegatedPeer())
		assert.Equal(t, p.k, p.peer.NegatedPeer())
	}

	for _, k := range []gate.Kind{gate.KindOff, gate.KindOn, gate.KindLever, gate.KindNot} {
		assert.False(t, k.HasNegatedPeer())
	}
}

func TestAccumulate(t *testing.T) {
	t.Run("and", func(t *testing.T) {
		assert.True(t, gate.KindAnd.Init())
		assert.True(t, gate.KindAnd.ShortCircuits())
		assert.True(t, gate.KindAnd.Accumulate(true, true))
		assert.False(t, gate.KindAnd.Accumulate(true, false))
	})
	t.Run("or", func(t *testing.T) {
		assert.False(t, gate.KindOr.Init())
		assert.True(t, gate.KindOr.ShortCircuits())
		assert.True(t, gate.KindOr.Accumulate(false, true))
		assert.False(t, gate.KindOr.Accumulate(false, false))
	})
	t.Run("xor", func(t *testing.T) {
		assert.False(t, gate.KindXor.Init())
		assert.False(t, gate.KindXor.ShortCircuits())
		assert.True(t, gate.KindXor.Accumulate(false, true))
		assert.False(t, gate.KindXor.Accumulate(true, true))
	})
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "And", gate.KindAnd.String())
	assert.Equal(t, "Xnor", gate.KindXnor.String())
}

func TestAccumulatePanicsOnNonFolding(t *testing.T) {
	assert.Panics(t, func() { gate.KindNot.Init() })
	assert.Panics(t, func() { gate.KindLever.Accumulate(true, true) })
}
