package eval

import (
	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// evalCall handles ordinary (non-tail-position) calls, plus the one
// structural special case: a CallExpression whose callee is the bare
// identifier "=" is assignment, not a lookup, since assignment needs an
// lvalue rather than a value on its left.
func (ev *Evaluator) evalCall(n *ast.CallExpression, e *env.Environment) object.Object {
	return evalCallCommon(ev, n, e)
}

func (ev *Evaluator) evalAssign(n *ast.CallExpression, e *env.Environment) object.Object {
	loc := n.Loc()
	if len(n.Args) != 2 {
		return object.NewArityError("assignment takes exactly 2 operands", loc.Line, loc.Column)
	}
	target, ok := n.Args[0].(*ast.Identifier)
	if !ok {
		tloc := n.Args[0].Loc()
		return object.NewTypeError("assignment target must be an identifier", tloc.Line, tloc.Column)
	}
	val := ev.Eval(n.Args[1], e)
	if isError(val) {
		return val
	}
	if err := e.Assign(target.Name, val); err != nil {
		return withLoc(err, loc.Line, loc.Column)
	}
	return val
}

func (ev *Evaluator) evalArgs(exprs []ast.Expression, e *env.Environment) ([]object.Object, *object.Error) {
	out := make([]object.Object, len(exprs))
	for i, expr := range exprs {
		v := ev.Eval(expr, e)
		if errObj, ok := v.(*object.Error); ok {
			return nil, errObj
		}
		out[i] = v
	}
	return out, nil
}

func evalCallCommon(ev *Evaluator, n *ast.CallExpression, e *env.Environment) object.Object {
	if id, ok := n.Callee.(*ast.Identifier); ok && id.Name == "=" {
		return ev.evalAssign(n, e)
	}
	callee := ev.Eval(n.Callee, e)
	if isError(callee) {
		return callee
	}
	args, err := ev.evalArgs(n.Args, e)
	if err != nil {
		return err
	}
	loc := n.Loc()
	return ev.Apply(callee, args, loc.Line, loc.Column)
}

// evalCallTail is reached only when n sits in the tail position of a
// function's own outermost body block (threaded in by evalBlock). It
// recognises a direct call to a user Function and produces a
// TailCallRequest instead of invoking it, so callFunction's trampoline
// can re-enter without growing the Go stack. Calls to builtins, or
// calls that would themselves partially apply, fall through to the
// ordinary call path: tail-call recognition never fires on a builtin,
// since builtins are native Go calls with no trampoline to re-enter.
func (ev *Evaluator) evalCallTail(n *ast.CallExpression, e *env.Environment) object.Object {
	if id, ok := n.Callee.(*ast.Identifier); ok && id.Name == "=" {
		return ev.evalAssign(n, e)
	}
	callee := ev.Eval(n.Callee, e)
	if isError(callee) {
		return callee
	}
	fn, ok := callee.(*object.Function)
	if !ok {
		args, err := ev.evalArgs(n.Args, e)
		if err != nil {
			return err
		}
		loc := n.Loc()
		return ev.Apply(callee, args, loc.Line, loc.Column)
	}
	args, err := ev.evalArgs(n.Args, e)
	if err != nil {
		return err
	}
	if len(args) != len(fn.Params) || hasPlaceholder(args) {
		loc := n.Loc()
		return ev.Apply(callee, args, loc.Line, loc.Column)
	}
	return &object.TailCallRequest{Fn: fn, Args: args}
}

func hasPlaceholder(args []object.Object) bool {
	for _, a := range args {
		if _, ok := a.(*object.Placeholder); ok {
			return true
		}
	}
	return false
}
