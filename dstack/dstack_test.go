package dstack_test

import (
	"testing"

	"github.com/katalvlaran/gatesim/dstack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopSwap(t *testing.T) {
	s := dstack.New[int]()
	_, ok := s.Pop()
	assert.False(t, ok)

	for i := 0; i < 10; i++ {
		s.Push(i)
		_, ok = s.Pop()
		assert.False(t, ok)
	}

	s.Swap()
	for i := 9; i >= 0; i-- {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestPushAll(t *testing.T) {
	s := dstack.New[int]()
	s.PushAll([]int{0, 1, 2, 3})
	s.Swap()
	for i := 3; i >= 0; i-- {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestSwapPanicsWhenReadNonEmpty(t *testing.T) {
	s := dstack.New[int]()
	s.Push(1)
	s.Swap()
	assert.Panics(t, func() { s.Swap() })
}

func TestLenIsEmpty(t *testing.T) {
	s := dstack.New[int]()
	assert.True(t, s.IsEmpty())
	s.Push(1)
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.IsEmpty())
}
