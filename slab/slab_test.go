package slab_test

import (
	"testing"

	"github.com/katalvlaran/gatesim/slab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertGet(t *testing.T) {
	a := slab.New[string]()
	i := a.Insert("x")
	v, ok := a.Get(i)
	require.True(t, ok)
	assert.Equal(t, "x", *v)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, a.TotalLen())
}

func TestRemoveReusesIndex(t *testing.T) {
	a := slab.New[int]()
	i0 := a.Insert(1)
	i1 := a.Insert(2)

	v, ok := a.Remove(i0)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, a.TotalLen())

	i2 := a.Insert(3)
	assert.Equal(t, i0, i2)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, a.TotalLen())

	_, ok = a.Get(i0)
	assert.True(t, ok)
	_, ok = a.Get(i1)
	assert.True(t, ok)
}

func TestRemoveMissingReturnsFalse(t *testing.T) {
	a := slab.New[int]()
	i := a.Insert(5)
	_, ok := a.Remove(i)
	require.True(t, ok)
	_, ok = a.Remove(i)
	assert.False(t, ok)
	_, ok = a.Remove(999)
	assert.False(t, ok)
}

func TestAllSkipsHoles(t *testing.T) {
	a := slab.New[int]()
	a.Insert(1)
	mid := a.Insert(2)
	a.Insert(3)
	a.Remove(mid)

	var seen []int
	a.All(func(i int, v *int) bool {
		seen = append(seen, *v)
		return true
	})
	assert.Equal(t, []int{1, 3}, seen)
}
