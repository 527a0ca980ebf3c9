package eval

import (
	"math/big"

	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// evalLogical implements short-circuit && and ||: the right operand
// must not be evaluated at all when the left operand already determines
// the result, unlike every other binary operator which the parser
// desugars into an eagerly-evaluated CallExpression.
func (ev *Evaluator) evalLogical(n *ast.LogicalExpression, e *env.Environment) object.Object {
	left := ev.Eval(n.Left, e)
	if isError(left) {
		return left
	}
	switch n.Operator {
	case "&&":
		if !left.IsTruthy() {
			return left
		}
		return ev.Eval(n.Right, e)
	case "||":
		if left.IsTruthy() {
			return left
		}
		return ev.Eval(n.Right, e)
	default:
		loc := n.Loc()
		return object.NewDomainError("unknown logical operator "+n.Operator, loc.Line, loc.Column)
	}
}

// evalPrefix handles unary - and !. Unlike every other operator these are
// not desugared to identifier calls by the parser (there being no
// ambiguity to resolve with a unary fixity), so they get their own small
// dispatch here rather than going through Apply/env lookup.
func (ev *Evaluator) evalPrefix(n *ast.PrefixExpression, e *env.Environment) object.Object {
	right := ev.Eval(n.Right, e)
	if isError(right) {
		return right
	}
	loc := n.Loc()
	switch n.Operator {
	case "-":
		switch v := right.(type) {
		case *object.Integer:
			return &object.Integer{Val: new(big.Int).Neg(v.Val)}
		case *object.Decimal:
			return object.NewDecimal(-v.Val)
		default:
			return object.NewTypeError("unary - requires Integer or Decimal, got "+string(v.TypeName()), loc.Line, loc.Column)
		}
	case "!":
		return object.NativeBool(!right.IsTruthy())
	default:
		return object.NewDomainError("unknown prefix operator "+n.Operator, loc.Line, loc.Column)
	}
}
