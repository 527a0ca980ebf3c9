package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerEqualsAndHash(t *testing.T) {
	a := NewInteger(42)
	b := NewInteger(42)
	c := NewInteger(7)
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
}

func TestIntegerZeroIsFalsy(t *testing.T) {
	assert.False(t, NewInteger(0).IsTruthy())
	assert.True(t, NewInteger(1).IsTruthy())
	assert.True(t, NewInteger(-1).IsTruthy())
}

func TestDecimalZeroIsFalsy(t *testing.T) {
	assert.False(t, NewDecimal(0.0).IsTruthy())
	assert.True(t, NewDecimal(0.1).IsTruthy())
}

func TestIntegerNeverEqualsDecimal(t *testing.T) {
	// Equality is type-strict: no cross-type Integer/Decimal equality,
	// so equals ⇒ equal-hash never has to reconcile two different hash
	// schemes for "the same" number.
	i := NewInteger(2)
	d := NewDecimal(2.0)
	assert.False(t, i.Equals(d))
	var dv Value = d
	assert.False(t, i.Equals(dv))
}

func TestDecimalInspectKeepsDecimalPoint(t *testing.T) {
	assert.Equal(t, "2.0", NewDecimal(2).Inspect())
	assert.Equal(t, "2.5", NewDecimal(2.5).Inspect())
}
