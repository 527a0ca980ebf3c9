package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScriptMode(t *testing.T) {
	r := New()
	out := r.Run(`let x = 2; x + 3`, nil)
	require.Empty(t, out.ParseErrors)
	require.Nil(t, out.RuntimeErr)
	require.Contains(t, out.Parts, "script")
	assert.Equal(t, "5", out.Parts["script"].Value)
}

func TestRunSolveModeWithParts(t *testing.T) {
	src := `
input: { "6" }
part_one: { int(input) * 7 }
part_two: { int(input) + 1 }
`
	r := New()
	out := r.Run(src, nil)
	require.Empty(t, out.ParseErrors)
	require.Nil(t, out.RuntimeErr)
	require.Contains(t, out.Parts, "part_one")
	require.Contains(t, out.Parts, "part_two")
	assert.Equal(t, "42", out.Parts["part_one"].Value)
	assert.Equal(t, "7", out.Parts["part_two"].Value)
}

func TestRunReportsParseErrors(t *testing.T) {
	r := New()
	out := r.Run(`let = ;`, nil)
	assert.NotEmpty(t, out.ParseErrors)
}

func TestRunReportsRuntimeError(t *testing.T) {
	r := New()
	out := r.Run(`1 / 0`, nil)
	require.NotNil(t, out.RuntimeErr)
}

func TestRunTestsPassAndFail(t *testing.T) {
	src := `
part_one: { input * 2 }
test: { #{"input": 3, "part_one": 6} }
test: { #{"input": 3, "part_one": 7} }
`
	r := New()
	out := r.RunTests(src, nil, false)
	require.Empty(t, out.ParseErrors)
	require.Nil(t, out.RuntimeErr)
	require.Len(t, out.Tests, 2)
	assert.True(t, out.Tests[0].Parts["part_one"].Passed)
	assert.False(t, out.Tests[1].Parts["part_one"].Passed)
	assert.False(t, out.Passed())
}

func TestRunTestsSkipsSlowByDefault(t *testing.T) {
	src := `
part_one: { input * 2 }
@slow
test: { #{"input": 3, "part_one": 6} }
`
	r := New()
	out := r.RunTests(src, nil, false)
	require.Len(t, out.Tests, 1)
	assert.True(t, out.Tests[0].Skipped)
	assert.True(t, out.Tests[0].Slow)
}
