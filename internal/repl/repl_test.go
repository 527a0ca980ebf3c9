package repl

import (
	"bytes"
	"testing"

	"github.com/embertide/ember/internal/eval"
	"github.com/stretchr/testify/assert"
)

func TestExecuteWithRecoveryPrintsResultAndKeepsBindingsAcrossLines(t *testing.T) {
	var buf bytes.Buffer
	r := New("banner", "v0", "author", "---", "MIT", ">>> ")
	ev := eval.New()
	root := ev.NewRootEnv()

	r.executeWithRecovery(&buf, `let x = 5`, ev, root)
	r.executeWithRecovery(&buf, `x + 1`, ev, root)

	assert.Contains(t, buf.String(), "6")
}

func TestExecuteWithRecoveryReportsParseErrorsWithoutPanicking(t *testing.T) {
	var buf bytes.Buffer
	r := New("banner", "v0", "author", "---", "MIT", ">>> ")
	ev := eval.New()
	root := ev.NewRootEnv()

	assert.NotPanics(t, func() {
		r.executeWithRecovery(&buf, `let = ;`, ev, root)
	})
	assert.NotEmpty(t, buf.String())
}

func TestExecuteWithRecoveryReportsRuntimeErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("banner", "v0", "author", "---", "MIT", ">>> ")
	ev := eval.New()
	root := ev.NewRootEnv()

	r.executeWithRecovery(&buf, `1 / 0`, ev, root)
	assert.Contains(t, buf.String(), "DomainError")
}
