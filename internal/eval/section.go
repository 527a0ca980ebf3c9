package eval

import (
	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// evalSection records a top-level `name: { ... }` declaration into the
// Environment's section registry rather than evaluating it immediately:
// input/part_one/part_two/test bodies run only when the runner invokes
// them, and `@slow` only changes whether the test runner skips the
// section by default, not evaluation timing.
func (ev *Evaluator) evalSection(n *ast.SectionStatement, e *env.Environment, slow bool) object.Object {
	e.AddSection(n.Name, &object.Section{Name: n.Name, Body: n.Body, Env: e, Slow: slow})
	return object.NilValue
}
