package eval

import (
	"testing"

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
	ev := New()
	root := ev.NewRootEnv()
	return ev.Eval(prog, root)
}

func TestArithmeticDesugarsThroughOperatorIdentifiers(t *testing.T) {
	result := run(t, `1 + 2 * 3`)
	assert.Equal(t, "7", result.Inspect())
}

func TestIntegerDivisionPromotesOnlyWhenUneven(t *testing.T) {
	assert.Equal(t, "3", run(t, `6 / 2`).Inspect())
	assert.Equal(t, "2.5", run(t, `5 / 2`).Inspect())
}

func TestModuloSignMatchesDivisor(t *testing.T) {
	assert.Equal(t, "2", run(t, `-7 % 3`).Inspect())
	assert.Equal(t, "-2", run(t, `7 % -3`).Inspect())
}

func TestShortCircuitAndOr(t *testing.T) {
	src := `
let mut calls = 0
let bump = || { calls = calls + 1; true }
false && bump()
calls
`
	assert.Equal(t, "0", run(t, src).Inspect())

	src2 := `
let mut calls = 0
let bump = || { calls = calls + 1; true }
true || bump()
calls
`
	assert.Equal(t, "0", run(t, src2).Inspect())
}

func TestPipeAndCompose(t *testing.T) {
	assert.Equal(t, "6", run(t, `3 |> (|x| x * 2)`).Inspect())
	assert.Equal(t, "14", run(t, `((|x| x + 1) >> (|x| x * 2))(6)`).Inspect())
}

func TestPartialApplicationFillsPlaceholder(t *testing.T) {
	src := `
let addTen = 10 + _
addTen(5)
`
	assert.Equal(t, "15", run(t, src).Inspect())
}

func TestMapOverListUsesValueArityCallback(t *testing.T) {
	assert.Equal(t, "[2, 4, 6]", run(t, `map(|x| x * 2, [1, 2, 3])`).Inspect())
}

func TestMapOverListUsesIndexArityCallback(t *testing.T) {
	assert.Equal(t, "[0, 5, 10]", run(t, `map(|x, i| x * i, [5, 5, 5])`).Inspect())
}

func TestFoldBreaksEarlyWithoutPropagatingPastTheCallback(t *testing.T) {
	src := `
let result = fold(0, |acc, x| { if x > 3 { break acc } else { acc + x } }, [1, 2, 3, 4, 5])
result
`
	assert.Equal(t, "6", run(t, src).Inspect())
}

func TestMatchFallsThroughToDomainErrorWhenNoArmMatches(t *testing.T) {
	result := run(t, `match 5 { 1 -> "one" }`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.DomainErrorKind, errObj.Kind)
}

func TestMatchListPatternDestructures(t *testing.T) {
	src := `
match [1, 2, 3] {
  [first, ..rest] -> first
}
`
	assert.Equal(t, "1", run(t, src).Inspect())
}

func TestTailRecursionDoesNotGrowGoStack(t *testing.T) {
	src := `
let loop = |n, acc| if n == 0 { acc } else { loop(n - 1, acc + 1) }
loop(200000, 0)
`
	assert.Equal(t, "200000", run(t, src).Inspect())
}

func TestStringInterpolationUsesInspectForEmbeddedExpressions(t *testing.T) {
	result := run(t, `let name = "world"; "hello, {name}!"`)
	assert.Equal(t, `"hello, \"world\"!"`, result.Inspect())
}

func TestAssignToImmutableBindingIsTypeError(t *testing.T) {
	result := run(t, `let x = 1; x = 2`)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, object.TypeErrorKind, errObj.Kind)
}
