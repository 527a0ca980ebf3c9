package object

import (
	"strings"

	"github.com/google/uuid"
)

// Env is the narrow slice of internal/env.Environment that closures need
// to capture; kept here (rather than importing internal/env) to avoid an
// import cycle, since Environment itself stores object.Object values.
type Env interface {
	Get(name string) (Object, bool)
	Define(name string, val Object, mutable bool) *Error
	Assign(name string, val Object) *Error
	ShortID() string
}

// FnPattern is a parameter pattern rendered to a display string by the
// parser's ast.Pattern; Function only needs the evaluator-facing shape
// (name for simple params, arity for matching), so it stores the
// ast.Pattern opaquely via an interface satisfied by ast.Pattern.
type FnPattern interface {
	String() string
}

// Function is a user-defined closure: a handle-tagged value capturing
// the environment active at its definition site. The UUID gives
// Inspect() a stable identity tag, so two structurally identical
// closures (same name, same params, same source text) that close over
// different scopes still print as visibly distinct values in the REPL
// instead of looking like the same function twice.
type Function struct {
	ID     uuid.UUID
	Name   string
	Params []FnPattern
	Body   FnBody
	Env    Env
}

// FnBody is the evaluator's view of a function body: something that can
// be rendered for Inspect() without internal/object depending on
// internal/ast's concrete BlockExpression type.
type FnBody interface {
	String() string
}

func NewFunction(name string, params []FnPattern, body FnBody, env Env) *Function {
	return &Function{ID: uuid.New(), Name: name, Params: params, Body: body, Env: env}
}

func (f *Function) Inspect() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	envTag := ""
	if f.Env != nil {
		envTag = "@" + f.Env.ShortID()
	}
	return "<function " + name + "(" + strings.Join(parts, ", ") + ") #" + shortUUID(f.ID) + envTag + ">"
}

func shortUUID(id uuid.UUID) string { return id.String()[:8] }
func (f *Function) IsTruthy() bool { return true }
func (f *Function) TypeName() Kind { return FunctionKind }

// BuiltinFunction wraps a Go-implemented operation. Fn receives
// already-evaluated arguments and the call site's position for error
// reporting.
type BuiltinFunction struct {
	Name string
	// Arity is the builtin's declared parameter count, used for partial
	// application the same way a user Function's parameter count is;
	// -1 marks a variadic builtin (e.g. puts) that is never partially
	// applied.
	Arity int
	Fn    func(args []Object, line, col int) Object
}

func (b *BuiltinFunction) Inspect() string  { return "<builtin " + b.Name + ">" }
func (b *BuiltinFunction) IsTruthy() bool   { return true }
func (b *BuiltinFunction) TypeName() Kind   { return BuiltinKind }

// PartialFunction is the value produced by partial application: it
// remembers which positional slots are already filled and delegates
// completion to Apply, built by the evaluator so it can re-enter the
// normal call/partial-apply path recursively.
type PartialFunction struct {
	Callee    Object
	Filled    []Object
	IsFilled  []bool
	Remaining int
	Apply     func(rest []Object) Object
}

func (p *PartialFunction) Inspect() string { return "<partial function>" }
func (p *PartialFunction) IsTruthy() bool  { return true }
func (p *PartialFunction) TypeName() Kind  { return FunctionKind }

// CallableArity reports a callable's declared parameter count, used both
// for partial application and for callback-arity detection in
// higher-order builtins: e.g. map(f, coll) calls f(value, index) when
// f's arity is 2 or more, and f(value) otherwise.
func CallableArity(callee Object) (int, bool) {
	switch fn := callee.(type) {
	case *Function:
		return len(fn.Params), true
	case *PartialFunction:
		return fn.Remaining, true
	case *BuiltinFunction:
		if fn.Arity < 0 {
			return 0, false
		}
		return fn.Arity, true
	default:
		return 0, false
	}
}

// Placeholder is the partial-application marker `_`: a CallExpression
// containing one or more Placeholder arguments evaluates to a new
// Function of matching arity instead of invoking the callee.
type Placeholder struct{}

var PlaceholderValue = &Placeholder{}

func (p *Placeholder) Inspect() string { return "_" }
func (p *Placeholder) IsTruthy() bool  { return true }
func (p *Placeholder) TypeName() Kind  { return PlaceholderKind }

// Section holds one named top-level block (`input`, `part_one`,
// `part_two`, `test`) for the solution runner.
type Section struct {
	Name string
	Body FnBody
	Env  Env
	// Slow marks a test section annotated `@slow`: the runner skips it
	// by default and only runs it under an explicit flag.
	Slow bool
}

func (s *Section) Inspect() string { return "<section " + s.Name + ">" }
func (s *Section) IsTruthy() bool  { return true }
func (s *Section) TypeName() Kind  { return SectionKind }
