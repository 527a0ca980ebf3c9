// Package runner drives parse, register-sections, and evaluate-parts as
// a reusable component the CLI/REPL collaborator calls instead of
// reaching for os.Exit itself — timing and pass/fail bookkeeping live
// here, formatting and exit-code mapping stay in cmd/ember.
package runner

import (
	"time"

	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/eval"
	ioHandle "github.com/embertide/ember/internal/io"
	"github.com/embertide/ember/internal/object"
	"github.com/embertide/ember/internal/parser"
)

// PartResult is one part_one/part_two (or whole-script) evaluation:
// its inspected value plus how long it took to produce.
type PartResult struct {
	Value      string
	DurationMs int64
}

// Outcome is solve mode's result: either a parse failure, a runtime
// error, or a set of part results keyed "part_one"/"part_two", or a
// single "script" entry when neither part is present.
type Outcome struct {
	ParseErrors []*parser.Error
	RuntimeErr  *object.Error
	Parts       map[string]PartResult
}

// PartCheck is one expected-vs-actual comparison within a test case.
type PartCheck struct {
	Expected string
	Actual   string
	Passed   bool
}

// TestCase is one `test { ... }` section's outcome.
type TestCase struct {
	Index   int
	Slow    bool
	Skipped bool
	Err     *object.Error
	Parts   map[string]PartCheck
}

// TestOutcome is test mode's result across every test section.
type TestOutcome struct {
	ParseErrors []*parser.Error
	RuntimeErr  *object.Error
	Tests       []TestCase
}

// Passed reports whether every non-skipped test case passed all of its
// part comparisons.
func (o *TestOutcome) Passed() bool {
	for _, t := range o.Tests {
		if t.Skipped {
			continue
		}
		if t.Err != nil {
			return false
		}
		for _, p := range t.Parts {
			if !p.Passed {
				return false
			}
		}
	}
	return true
}

// Runner drives parse → register-sections → evaluate-parts over a
// single evaluator instance (stateless beyond installed builtins, so
// one Runner safely serves many Run/RunTests calls with fresh
// Environments each time).
type Runner struct {
	ev *eval.Evaluator
}

func New() *Runner {
	return &Runner{ev: eval.New()}
}

// newRoot builds a root Environment with the builtins installed and h
// injected as the I/O boundary.
func (r *Runner) newRoot(h ioHandle.Handle) *env.Environment {
	root := r.ev.NewRootEnv()
	if h != nil {
		root.SetIO(h)
	}
	return root
}

// parse runs the parser and reports whether it succeeded.
func parse(source string) (*ast.Program, []*parser.Error) {
	p := parser.New(source)
	prog, errs := p.Parse()
	return prog, errs
}

// Run executes solve mode: evaluates the whole program once
// (registering input/part_one/part_two sections and running top-level
// let-bindings along the way), resolves `input` once, then runs each
// present part in a child scope with `input` bound, timing each. With
// neither part present, the program's own top-level result stands in
// for a "script" run.
func (r *Runner) Run(source string, h ioHandle.Handle) *Outcome {
	prog, errs := parse(source)
	if len(errs) > 0 {
		return &Outcome{ParseErrors: errs}
	}

	root := r.newRoot(h)
	start := time.Now()
	result := r.ev.Eval(prog, root)
	elapsed := time.Since(start)

	if errObj, ok := result.(*object.Error); ok {
		return &Outcome{RuntimeErr: errObj}
	}

	partOne := root.LastSection("part_one")
	partTwo := root.LastSection("part_two")

	if partOne == nil && partTwo == nil {
		return &Outcome{Parts: map[string]PartResult{
			"script": {Value: result.Inspect(), DurationMs: elapsed.Milliseconds()},
		}}
	}

	inputVal, err := r.resolveInput(root)
	if err != nil {
		return &Outcome{RuntimeErr: err}
	}

	parts := make(map[string]PartResult)
	for name, sec := range map[string]*object.Section{"part_one": partOne, "part_two": partTwo} {
		if sec == nil {
			continue
		}
		res, partErr := r.evalPart(sec, inputVal)
		if partErr != nil {
			return &Outcome{RuntimeErr: partErr}
		}
		parts[name] = res
	}
	return &Outcome{Parts: parts}
}

// RunTests executes test mode. includeSlow controls whether
// @slow-annotated test sections actually run or are merely reported as
// skipped.
func (r *Runner) RunTests(source string, h ioHandle.Handle, includeSlow bool) *TestOutcome {
	prog, errs := parse(source)
	if len(errs) > 0 {
		return &TestOutcome{ParseErrors: errs}
	}

	root := r.newRoot(h)
	result := r.ev.Eval(prog, root)
	if errObj, ok := result.(*object.Error); ok {
		return &TestOutcome{RuntimeErr: errObj}
	}

	partOne := root.LastSection("part_one")
	partTwo := root.LastSection("part_two")
	testSecs := root.Sections("test")

	tests := make([]TestCase, 0, len(testSecs))
	for i, sec := range testSecs {
		tc := TestCase{Index: i, Slow: sec.Slow}
		if sec.Slow && !includeSlow {
			tc.Skipped = true
			tests = append(tests, tc)
			continue
		}
		tests = append(tests, r.runTestCase(i, sec, partOne, partTwo))
	}
	return &TestOutcome{Tests: tests}
}

// resolveInput evaluates the input section's body once, returning Nil
// if no input section was declared.
func (r *Runner) resolveInput(root *env.Environment) (object.Object, *object.Error) {
	inputSec := root.LastSection("input")
	if inputSec == nil {
		return object.NilValue, nil
	}
	body, ok := inputSec.Body.(ast.Node)
	if !ok {
		return object.NilValue, nil
	}
	v := r.ev.Eval(body, childOf(inputSec.Env))
	if errObj, ok := v.(*object.Error); ok {
		return nil, errObj
	}
	return v, nil
}

func (r *Runner) evalPart(sec *object.Section, inputVal object.Object) (PartResult, *object.Error) {
	body, ok := sec.Body.(ast.Node)
	if !ok {
		return PartResult{}, object.NewDomainError("section body is not evaluable", 0, 0)
	}
	scope := childOf(sec.Env)
	scope.Define("input", inputVal, false)
	start := time.Now()
	res := r.ev.Eval(body, scope)
	elapsed := time.Since(start)
	if errObj, ok := res.(*object.Error); ok {
		return PartResult{}, errObj
	}
	return PartResult{Value: res.Inspect(), DurationMs: elapsed.Milliseconds()}, nil
}

func (r *Runner) runTestCase(index int, sec *object.Section, partOne, partTwo *object.Section) TestCase {
	tc := TestCase{Index: index, Slow: sec.Slow, Parts: map[string]PartCheck{}}
	body, ok := sec.Body.(ast.Node)
	if !ok {
		tc.Err = object.NewDomainError("test section body is not evaluable", 0, 0)
		return tc
	}
	result := r.ev.Eval(body, childOf(sec.Env))
	if errObj, ok := result.(*object.Error); ok {
		tc.Err = errObj
		return tc
	}
	dict, ok := result.(*object.Dict)
	if !ok {
		tc.Err = object.NewTypeError("test section must evaluate to a Dict, got "+string(result.TypeName()), 0, 0)
		return tc
	}
	inputVal, ok := dict.Get(object.NewString("input"))
	if !ok {
		inputVal = object.NilValue
	}
	for name, sec := range map[string]*object.Section{"part_one": partOne, "part_two": partTwo} {
		expected, hasExpected := dict.Get(object.NewString(name))
		if !hasExpected || sec == nil {
			continue
		}
		actual, partErr := r.evalPart(sec, inputVal)
		if partErr != nil {
			tc.Err = partErr
			return tc
		}
		tc.Parts[name] = PartCheck{
			Expected: expected.Inspect(),
			Actual:   actual.Value,
			Passed:   actual.Value == expected.Inspect(),
		}
	}
	return tc
}

// childOf narrows the object.Env a Section/Function captures back down
// to the concrete *env.Environment the runner needs for Child()/Define
// — every Section is always built with an *env.Environment (section.go
// is the only constructor), so this type assertion never fails.
func childOf(e object.Env) *env.Environment {
	return e.(*env.Environment).Child()
}
