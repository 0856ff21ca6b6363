package bitstate_test

import (
	"testing"

	"github.com/katalvlaran/gatesim/bitstate"
	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	s := bitstate.New(10)
	assert.False(t, s.GetValue(3))
	assert.False(t, s.GetUpdated(3))

	s.Set(3, true)
	assert.True(t, s.GetValue(3))
	assert.True(t, s.GetUpdated(3))

	v, ok := s.GetIfUpdated(3)
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = s.GetIfUpdated(4)
	assert.False(t, ok)
}

func TestTickClearsUpdated(t *testing.T) {
	s := bitstate.New(65)
	s.Set(0, true)
	s.Set(64, true)
	assert.True(t, s.GetUpdated(0))
	assert.True(t, s.GetUpdated(64))

	s.Tick()
	assert.False(t, s.GetUpdated(0))
	assert.False(t, s.GetUpdated(64))
	assert.True(t, s.GetValue(0))
	assert.True(t, s.GetValue(64))
}

func TestLenRounding(t *testing.T) {
	assert.Equal(t, 64, bitstate.New(1).Len())
	assert.Equal(t, 64, bitstate.New(64).Len())
	assert.Equal(t, 128, bitstate.New(65).Len())
}

func TestOutOfBoundsPanics(t *testing.T) {
	s := bitstate.New(4)
	assert.Panics(t, func() { s.GetValue(100) })
	assert.Panics(t, func() { s.Set(-1, true) })
}
