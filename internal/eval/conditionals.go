package eval

import (
	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// evalIf forwards tail into whichever branch is taken: `if` is not a
// block-closing construct in its own right, so a call in tail position
// inside a branch is still in tail position of the enclosing function.
func (ev *Evaluator) evalIf(n *ast.IfExpression, e *env.Environment, tail bool) object.Object {
	cond := ev.Eval(n.Condition, e)
	if isError(cond) {
		return cond
	}
	if cond.IsTruthy() {
		return ev.evalBlock(n.Then, e.Child(), tail)
	}
	if n.Else != nil {
		return ev.evalBlock(n.Else, e.Child(), tail)
	}
	return object.NilValue
}

// evalMatch evaluates Scrutinee once and tries each arm top-to-bottom in
// its own child scope, so bindings from a failed attempt never leak into
// the next arm or past the expression. The matched arm's body is
// evaluated with tail forwarded, same reasoning as evalIf.
func (ev *Evaluator) evalMatch(n *ast.MatchExpression, e *env.Environment, tail bool) object.Object {
	scrutinee := ev.Eval(n.Scrutinee, e)
	if isError(scrutinee) {
		return scrutinee
	}
	for _, arm := range n.Arms {
		armEnv := e.Child()
		ok, err := ev.match(arm.Pattern, scrutinee, armEnv, false)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if arm.Guard != nil {
			g := ev.Eval(arm.Guard, armEnv)
			if isError(g) {
				return g
			}
			if !g.IsTruthy() {
				continue
			}
		}
		return ev.eval(arm.Body, armEnv, tail)
	}
	loc := n.Scrutinee.Loc()
	return object.NewDomainError("no match arm matched the scrutinee", loc.Line, loc.Column)
}
