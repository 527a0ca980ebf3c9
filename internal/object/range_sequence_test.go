package object

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeBoundedContains(t *testing.T) {
	r := NewRange(big.NewInt(1), big.NewInt(5), false)
	assert.True(t, r.Contains(big.NewInt(1)))
	assert.True(t, r.Contains(big.NewInt(4)))
	assert.False(t, r.Contains(big.NewInt(5)), "exclusive end is not contained")

	incl := NewRange(big.NewInt(1), big.NewInt(5), true)
	assert.True(t, incl.Contains(big.NewInt(5)))
}

func TestRangeUnboundedHasNoEnd(t *testing.T) {
	r := NewRange(big.NewInt(1), nil, false)
	assert.False(t, r.Bounded())
	assert.True(t, r.Contains(big.NewInt(1000000)))
}

func TestRangeEqualsByParametersNotEnumeration(t *testing.T) {
	a := NewRange(big.NewInt(1), big.NewInt(10), false)
	b := NewRange(big.NewInt(1), big.NewInt(10), false)
	c := NewRange(big.NewInt(1), big.NewInt(10), true)
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
}

func TestSequenceMemoizesProducedElements(t *testing.T) {
	calls := 0
	seq := NewSequence(NewInteger(1), func(prev Object) Object {
		calls++
		i := prev.(*Integer)
		return NewInteger(i.Val.Int64() * 2)
	})
	first := seq.Take(5)
	assert.Equal(t, []string{"1", "2", "4", "8", "16"}, inspectAll(first))
	assert.Equal(t, 4, calls, "seed doesn't invoke gen")

	seq.Take(5)
	assert.Equal(t, 4, calls, "re-reading already-produced elements must not re-invoke gen")
}

func TestSequenceDropContinuesFromOffset(t *testing.T) {
	seq := NewSequence(NewInteger(0), func(prev Object) Object {
		i := prev.(*Integer)
		return NewInteger(i.Val.Int64() + 1)
	})
	dropped := seq.Drop(3)
	assert.Equal(t, []string{"3", "4", "5"}, inspectAll(dropped.Take(3)))
}

func inspectAll(objs []Object) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.Inspect()
	}
	return out
}
