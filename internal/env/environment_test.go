package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embertide/ember/internal/object"
)

func TestDefineAndGet(t *testing.T) {
	e := New(nil)
	require.Nil(t, e.Define("x", object.NewInteger(1), false))
	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", v.Inspect())
}

func TestGetFallsThroughToParent(t *testing.T) {
	parent := New(nil)
	require.Nil(t, parent.Define("x", object.NewInteger(5), false))
	child := parent.Child()
	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, "5", v.Inspect())
}

func TestChildShadowsParent(t *testing.T) {
	parent := New(nil)
	require.Nil(t, parent.Define("x", object.NewInteger(1), false))
	child := parent.Child()
	require.Nil(t, child.Define("x", object.NewInteger(2), false))

	v, _ := child.Get("x")
	assert.Equal(t, "2", v.Inspect())
	pv, _ := parent.Get("x")
	assert.Equal(t, "1", pv.Inspect(), "shadowing in a child scope must not affect the parent")
}

func TestRedeclarationInSameScopeIsNameError(t *testing.T) {
	e := New(nil)
	require.Nil(t, e.Define("x", object.NewInteger(1), false))
	err := e.Define("x", object.NewInteger(2), false)
	require.NotNil(t, err)
	assert.Equal(t, object.NameErrorKind, err.Kind)
}

func TestAssignRequiresMutable(t *testing.T) {
	e := New(nil)
	require.Nil(t, e.Define("x", object.NewInteger(1), false))
	err := e.Assign("x", object.NewInteger(2))
	require.NotNil(t, err)
	assert.Equal(t, object.TypeErrorKind, err.Kind)
}

func TestAssignUpdatesMutableBindingInDefiningScope(t *testing.T) {
	parent := New(nil)
	require.Nil(t, parent.Define("count", object.NewInteger(0), true))
	child := parent.Child()

	require.Nil(t, child.Assign("count", object.NewInteger(1)))
	v, _ := parent.Get("count")
	assert.Equal(t, "1", v.Inspect(), "assign must update the scope where the binding lives, not create a new one")
}

func TestAssignUndefinedNameIsNameError(t *testing.T) {
	e := New(nil)
	err := e.Assign("missing", object.NewInteger(1))
	require.NotNil(t, err)
	assert.Equal(t, object.NameErrorKind, err.Kind)
}

func TestSectionsAppendAndLastWins(t *testing.T) {
	e := New(nil)
	sec1 := &object.Section{Name: "part_one"}
	sec2 := &object.Section{Name: "part_one"}
	e.AddSection("part_one", sec1)
	e.AddSection("part_one", sec2)

	assert.Len(t, e.Sections("part_one"), 2)
	assert.Same(t, sec2, e.LastSection("part_one"))
}

func TestEnvironmentsHaveDistinctIDs(t *testing.T) {
	a := New(nil)
	b := New(nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ShortID(), b.ShortID())
	assert.Len(t, a.ShortID(), 8)
}
