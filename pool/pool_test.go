package pool_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/pool"
)

func TestNew_MinimumCapacity(t *testing.T) {
	p := pool.New(0)
	assert.Equal(t, 1, p.Capacity())
	assert.Equal(t, 0, p.Len())

	p = pool.New(8)
	assert.Equal(t, 8, p.Capacity())
}

func TestAdd_GrowsByDoubling(t *testing.T) {
	p := pool.New(1)
	for want := 0; want < 5; want++ {
		got := p.Add()
		assert.Equal(t, pool.Index(want), got)
	}
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 8, p.Capacity(), "1 → 2 → 4 → 8")
}

func TestRemove_ReusesLowestFreeIndex(t *testing.T) {
	p := pool.New(4)
	for i := 0; i < 6; i++ {
		p.Add()
	}
	require.NoError(t, p.Remove(4))
	require.NoError(t, p.Remove(1))
	assert.Equal(t, 4, p.Len())

	// The cursor drops to 1; the next two adds take 1 then 4.
	assert.Equal(t, pool.Index(1), p.Add())
	assert.Equal(t, pool.Index(4), p.Add())
	assert.Equal(t, pool.Index(6), p.Add())
}

func TestRemove_Inactive(t *testing.T) {
	p := pool.New(2)
	i := p.Add()
	require.NoError(t, p.Remove(i))

	err := p.Remove(i)
	assert.ErrorIs(t, err, pool.ErrInactiveIndex)
	assert.ErrorIs(t, p.Remove(100), pool.ErrInactiveIndex)
	assert.ErrorIs(t, p.Remove(pool.NullIndex), pool.ErrInactiveIndex)
	assert.Equal(t, 0, p.Len())
}

func TestRemove_KeepsOtherIndicesStable(t *testing.T) {
	p := pool.New(1)
	tags := pool.NewAttachment[string](p)
	for _, s := range []string{"a", "b", "c", "d"} {
		tags.Set(p.Add(), s)
	}
	require.NoError(t, p.Remove(1))

	assert.Equal(t, "a", tags.Get(0))
	assert.Equal(t, "c", tags.Get(2))
	assert.Equal(t, "d", tags.Get(3))
	assert.Equal(t, "", tags.Get(1), "destroy resets the slot")
}

func TestAll_AscendingAndRestartable(t *testing.T) {
	p := pool.New(1)
	for i := 0; i < 6; i++ {
		p.Add()
	}
	require.NoError(t, p.Remove(0))
	require.NoError(t, p.Remove(3))

	first := slices.Collect(p.All())
	second := slices.Collect(p.All())
	assert.Equal(t, []pool.Index{1, 2, 4, 5}, first)
	assert.Equal(t, first, second)

	// Early break is honoured.
	var seen []pool.Index
	for i := range p.All() {
		seen = append(seen, i)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []pool.Index{1, 2}, seen)
}

func TestClear(t *testing.T) {
	p := pool.New(2)
	a := pool.NewAttachment[int](p)
	for i := 0; i < 3; i++ {
		a.Set(p.Add(), 7)
	}
	capBefore := p.Capacity()
	p.Clear()

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, capBefore, p.Capacity())
	assert.Empty(t, slices.Collect(p.All()))
	assert.Equal(t, 0, a.Get(0))
	assert.Equal(t, pool.Index(0), p.Add())
}

func TestString(t *testing.T) {
	p := pool.New(4)
	p.Add()
	p.Add()
	require.NoError(t, p.Remove(0))
	assert.Equal(t, "0100 (4)", p.String())
}
