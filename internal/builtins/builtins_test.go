// Package builtins_test drives the registered builtins through real
// source, exactly as a caller would invoke them, rather than reaching
// into the unexported def tables directly — this also sidesteps the
// import cycle between internal/eval and internal/builtins (Install
// needs an eval.Evaluator.Apply, so a same-package test can't import
// eval to build one).
package builtins_test

import (
	"testing"

	"github.com/embertide/ember/internal/eval"
	"github.com/embertide/ember/internal/object"
	"github.com/embertide/ember/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) object.Object {
	t.Helper()
	p := parser.New(src)
	prog, errs := p.Parse()
	require.Empty(t, errs, "unexpected parse errors for %q", src)
	ev := eval.New()
	root := ev.NewRootEnv()
	return ev.Eval(prog, root)
}

func TestArithmeticBuiltinsCoverTheFourOperators(t *testing.T) {
	assert.Equal(t, "5", run(t, `2 + 3`).Inspect())
	assert.Equal(t, "-1", run(t, `2 - 3`).Inspect())
	assert.Equal(t, "6", run(t, `2 * 3`).Inspect())
	assert.Equal(t, "2", run(t, `4 / 2`).Inspect())
}

func TestComparisonBuiltinsCoverOrdering(t *testing.T) {
	assert.Equal(t, "true", run(t, `1 < 2`).Inspect())
	assert.Equal(t, "false", run(t, `1 > 2`).Inspect())
	assert.Equal(t, "true", run(t, `3 == 3`).Inspect())
	assert.Equal(t, "true", run(t, `3 != 4`).Inspect())
}

func TestFilterKeepsOnlyTruthyResults(t *testing.T) {
	result := run(t, `filter(|x| x % 2 == 0, [1, 2, 3, 4, 5, 6])`)
	assert.Equal(t, "[2, 4, 6]", result.Inspect())
}

func TestSizeAcrossCollectionTypes(t *testing.T) {
	assert.Equal(t, "3", run(t, `size([1, 2, 3])`).Inspect())
	assert.Equal(t, "5", run(t, `size("hello")`).Inspect())
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, `["a", "b", "c"]`, run(t, `split(",", "a,b,c")`).Inspect())
	assert.Equal(t, `"hi"`, run(t, `trim("  hi  ")`).Inspect())
}

func TestIntParsesStringsAndTruncatesDecimals(t *testing.T) {
	assert.Equal(t, "42", run(t, `int("42")`).Inspect())
	assert.Equal(t, "3", run(t, `int(3.9)`).Inspect())
}

func TestIntRejectsUnparsableStrings(t *testing.T) {
	result := run(t, `int("not a number")`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.DomainErrorKind, errObj.Kind)
}

func TestStrRoundTripsAndFormatsNonStrings(t *testing.T) {
	assert.Equal(t, `"7"`, run(t, `str(7)`).Inspect())
	assert.Equal(t, `"hi"`, run(t, `str("hi")`).Inspect())
}

func TestTypeReportsTheRuntimeKindName(t *testing.T) {
	assert.Equal(t, `"Integer"`, run(t, `type(5)`).Inspect())
	assert.Equal(t, `"List"`, run(t, `type([1])`).Inspect())
}

func TestAssertPassesOnTruthyAndFailsWithMessageOtherwise(t *testing.T) {
	assert.Equal(t, "nil", run(t, `assert(true, "unused")`).Inspect())

	result := run(t, `assert(false, "must hold")`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.DomainErrorKind, errObj.Kind)
	assert.Contains(t, errObj.Message, "must hold")
}

func TestAsMutableAndAsImmutableRoundTrip(t *testing.T) {
	result := run(t, `type(asMutable([1, 2, 3]))`)
	assert.Equal(t, `"TransientList"`, result.Inspect())

	result = run(t, `type(asImmutable(asMutable([1, 2, 3])))`)
	assert.Equal(t, `"List"`, result.Inspect())
}

func TestAsImmutableRejectsNonTransientArgument(t *testing.T) {
	result := run(t, `asImmutable([1, 2, 3])`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.TypeErrorKind, errObj.Kind)
}

func TestIterateTakeAndDropOverASequence(t *testing.T) {
	src := `take(5, iterate(|x| x * 2, 1))`
	assert.Equal(t, "[1, 2, 4, 8, 16]", run(t, src).Inspect())

	src2 := `take(3, drop(2, iterate(|x| x + 1, 0)))`
	assert.Equal(t, "[2, 3, 4]", run(t, src2).Inspect())
}

func TestTakeAndDropOverARange(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", run(t, `take(3, 1..=10)`).Inspect())
	assert.Equal(t, "8..=10", run(t, `drop(7, 1..=10)`).Inspect())
}

func TestCycleRepeatsItsSourceIndefinitely(t *testing.T) {
	assert.Equal(t, "[1, 2, 3, 1, 2]", run(t, `take(5, cycle([1, 2, 3]))`).Inspect())
}

func TestCycleRejectsAnEmptyCollection(t *testing.T) {
	result := run(t, `cycle([])`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.DomainErrorKind, errObj.Kind)
}

func TestPutsWithNoArgumentsProducesNoOutputEvent(t *testing.T) {
	// puts() with zero arguments must be a true no-op; here we only
	// confirm it evaluates to nil without an I/O handle configured,
	// since reaching Handle.Output at all with no handle would be an
	// IOError rather than a silent nil.
	result := run(t, `puts()`)
	assert.Equal(t, "nil", result.Inspect())
}

func TestPutsWithoutAnIOHandleIsAnIOError(t *testing.T) {
	result := run(t, `puts("hi")`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.IOErrorKind, errObj.Kind)
}
