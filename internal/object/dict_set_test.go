package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictSetAndGet(t *testing.T) {
	d := NewDict().Set(NewString("a"), NewInteger(1)).Set(NewString("b"), NewInteger(2))
	v, ok := d.Get(NewString("a"))
	require.True(t, ok)
	assert.Equal(t, "1", v.Inspect())
	assert.Equal(t, 2, d.Len())
}

func TestDictOverwriteDoesNotGrow(t *testing.T) {
	d := NewDict().Set(NewString("a"), NewInteger(1)).Set(NewString("a"), NewInteger(2))
	assert.Equal(t, 1, d.Len())
	v, _ := d.Get(NewString("a"))
	assert.Equal(t, "2", v.Inspect())
}

func TestDictIterationOrderIsInsertionOrder(t *testing.T) {
	d := NewDict().Set(NewString("z"), NewInteger(1)).Set(NewString("a"), NewInteger(2)).Set(NewString("m"), NewInteger(3))
	var keys []string
	d.ForEach(func(k Value, v Object) bool {
		keys = append(keys, k.Inspect())
		return true
	})
	assert.Equal(t, []string{`"z"`, `"a"`, `"m"`}, keys)
}

func TestDictDelete(t *testing.T) {
	d := NewDict().Set(NewString("a"), NewInteger(1)).Set(NewString("b"), NewInteger(2))
	d2 := d.Delete(NewString("a"))
	_, ok := d2.Get(NewString("a"))
	assert.False(t, ok)
	assert.Equal(t, 1, d2.Len())
	_, ok = d.Get(NewString("a"))
	assert.True(t, ok, "delete must not mutate the source Dict")
}

func TestDictEqualsIgnoresInsertionOrder(t *testing.T) {
	a := NewDict().Set(NewString("x"), NewInteger(1)).Set(NewString("y"), NewInteger(2))
	b := NewDict().Set(NewString("y"), NewInteger(2)).Set(NewString("x"), NewInteger(1))
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestSetAddHasRemove(t *testing.T) {
	s := NewSet(NewInteger(1), NewInteger(2), NewInteger(1))
	assert.Equal(t, 2, s.Len(), "duplicate Add is a no-op")
	assert.True(t, s.Has(NewInteger(1)))
	s2 := s.Remove(NewInteger(1))
	assert.False(t, s2.Has(NewInteger(1)))
	assert.True(t, s.Has(NewInteger(1)), "remove must not mutate the source Set")
}

func TestSetEqualsIgnoresOrder(t *testing.T) {
	a := NewSet(NewInteger(1), NewInteger(2), NewInteger(3))
	b := NewSet(NewInteger(3), NewInteger(2), NewInteger(1))
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashCollisionsChainCorrectly(t *testing.T) {
	// Many keys forces the trie past its first couple of levels; every
	// key must still resolve independently.
	d := NewDict()
	for i := 0; i < 200; i++ {
		d = d.Set(NewInteger(int64(i)), NewInteger(int64(i*i)))
	}
	require.Equal(t, 200, d.Len())
	for _, i := range []int{0, 1, 63, 64, 199} {
		v, ok := d.Get(NewInteger(int64(i)))
		require.True(t, ok)
		assert.Equal(t, NewInteger(int64(i*i)).Inspect(), v.Inspect())
	}
}
