package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/pool"
)

type link struct {
	next pool.Index
	prev pool.Index
}

func TestAttachment_LengthTracksCapacity(t *testing.T) {
	p := pool.New(1)
	a := pool.NewAttachment[float64](p)
	b := pool.NewAttachment[bool](p)
	assert.Equal(t, 1, a.Len())

	for i := 0; i < 9; i++ {
		p.Add()
		assert.Equal(t, p.Capacity(), a.Len())
		assert.Equal(t, p.Capacity(), b.Len())
	}
	assert.Equal(t, 16, a.Len())
}

func TestAttachment_BindAfterPopulate(t *testing.T) {
	p := pool.New(1)
	for i := 0; i < 3; i++ {
		p.Add()
	}
	a := pool.NewAttachment[int](p)
	assert.Equal(t, p.Capacity(), a.Len())
	for i := range p.All() {
		assert.Zero(t, a.Get(i), "existing elements see the zero value")
	}

	a.Fill(-1)
	for i := range p.All() {
		assert.Equal(t, -1, a.Get(i))
	}
}

func TestAttachment_InitHook(t *testing.T) {
	p := pool.New(1)
	links := pool.NewAttachment(p, pool.WithInit(func(l *link) {
		l.next, l.prev = pool.NullIndex, pool.NullIndex
	}))

	i := p.Add()
	assert.Equal(t, link{pool.NullIndex, pool.NullIndex}, links.Get(i))

	links.Ptr(i).next = 5
	assert.Equal(t, pool.Index(5), links.Get(i).next)

	require.NoError(t, p.Remove(i))
	assert.Equal(t, link{}, links.Get(i))

	j := p.Add()
	require.Equal(t, i, j)
	assert.Equal(t, link{pool.NullIndex, pool.NullIndex}, links.Get(j), "init runs again on reuse")
}

func TestAttachment_Release(t *testing.T) {
	p := pool.New(1)
	kept := pool.NewAttachment[int](p)
	tmp := pool.NewAttachment[int](p)
	tmp.Release()
	tmp.Release()

	for i := 0; i < 4; i++ {
		p.Add()
	}
	assert.Equal(t, p.Capacity(), kept.Len())
	assert.Equal(t, 0, tmp.Len())
}

func TestWithInit_NilPanics(t *testing.T) {
	assert.Panics(t, func() { pool.WithInit[int](nil) })
}
