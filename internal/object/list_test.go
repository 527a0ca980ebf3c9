package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPushAndGet(t *testing.T) {
	l := NewList(NewInteger(1), NewInteger(2), NewInteger(3))
	require.Equal(t, 3, l.Len())
	v, ok := l.Get(1)
	require.True(t, ok)
	assert.Equal(t, "2", v.Inspect())
	_, ok = l.Get(3)
	assert.False(t, ok)
}

func TestListPushIsStructurallyShared(t *testing.T) {
	base := NewList(NewInteger(1))
	grown := base.Push(NewInteger(2))
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())
	v, _ := base.Get(0)
	assert.Equal(t, "1", v.Inspect())
}

func TestListGrowsAcrossMultipleTrieLevels(t *testing.T) {
	l := EmptyList
	for i := 0; i < 1000; i++ {
		l = l.Push(NewInteger(int64(i)))
	}
	require.Equal(t, 1000, l.Len())
	for _, i := range []int{0, 31, 32, 33, 500, 999} {
		v, ok := l.Get(i)
		require.True(t, ok)
		assert.Equal(t, NewInteger(int64(i)).Inspect(), v.Inspect())
	}
}

func TestListSetPathCopies(t *testing.T) {
	l := NewList(NewInteger(1), NewInteger(2), NewInteger(3))
	updated, err := l.Set(1, NewInteger(99))
	require.Nil(t, err)
	orig, _ := l.Get(1)
	assert.Equal(t, "2", orig.Inspect())
	upd, _ := updated.Get(1)
	assert.Equal(t, "99", upd.Inspect())
}

func TestListSetOutOfRange(t *testing.T) {
	l := NewList(NewInteger(1))
	_, err := l.Set(5, NewInteger(2))
	require.NotNil(t, err)
	assert.Equal(t, DomainErrorKind, err.Kind)
}

func TestListSlice(t *testing.T) {
	l := NewList(NewInteger(1), NewInteger(2), NewInteger(3), NewInteger(4))
	sl, err := l.Slice(1, 3)
	require.Nil(t, err)
	assert.Equal(t, 2, sl.Len())
	v0, _ := sl.Get(0)
	v1, _ := sl.Get(1)
	assert.Equal(t, "2", v0.Inspect())
	assert.Equal(t, "3", v1.Inspect())
}

func TestListEqualsAndHash(t *testing.T) {
	a := NewList(NewInteger(1), NewInteger(2))
	b := NewList(NewInteger(1), NewInteger(2))
	c := NewList(NewInteger(2), NewInteger(1))
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c), "List equality is order-sensitive")
}

func TestTransientListBatchMutation(t *testing.T) {
	base := NewList(NewInteger(1), NewInteger(2))
	tl := base.AsMutable()
	tl.Push(NewInteger(3))
	require.Nil(t, tl.Set(0, NewInteger(100)))
	out := tl.AsImmutable()
	assert.Equal(t, 3, out.Len())
	v0, _ := out.Get(0)
	assert.Equal(t, "100", v0.Inspect())
	assert.Equal(t, 2, base.Len(), "converting to mutable must not touch the source List")
}
