// Package eval is the tree-walking evaluator: AST dispatch, the
// tail-call trampoline, short-circuit logical operators, and the
// partial-application path, built around this language's uniform
// operator-as-call AST and block-as-expression semantics.
package eval

import (
	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/builtins"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// Evaluator is stateless beyond the installed builtins; every call
// carries its own Environment rather than the evaluator mutating shared
// scope state across a run. Source locations come straight off AST
// nodes, so building an error needs only the node, never a parser
// reference for position.
type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

// NewRootEnv builds a fresh root Environment with every builtin
// installed.
func (ev *Evaluator) NewRootEnv() *env.Environment {
	root := env.New(nil)
	builtins.Install(root, ev.Apply)
	return root
}

// Eval dispatches on node's concrete type. It never runs anything in
// tail position; block/function evaluation calls eval with tail=true
// when tail-call recognition should apply.
func (ev *Evaluator) Eval(node ast.Node, e *env.Environment) object.Object {
	return ev.eval(node, e, false)
}

func (ev *Evaluator) eval(node ast.Node, e *env.Environment, tail bool) object.Object {
	switch n := node.(type) {
	case *ast.Program:
		return ev.evalStatements(n.Statements, e)

	case *ast.ExpressionStatement:
		return ev.eval(n.Expr, e, tail)

	case *ast.LetStatement:
		return ev.evalLet(n, e)

	case *ast.ReturnStatement:
		var val object.Object = object.NilValue
		if n.Value != nil {
			val = ev.Eval(n.Value, e)
			if isError(val) {
				return val
			}
		}
		return &object.ReturnValue{Val: val}

	case *ast.BreakStatement:
		var val object.Object = object.NilValue
		if n.Value != nil {
			val = ev.Eval(n.Value, e)
			if isError(val) {
				return val
			}
		}
		return &object.BreakValue{Val: val}

	case *ast.SectionStatement:
		return ev.evalSection(n, e, false)

	case *ast.AnnotatedStatement:
		if sec, ok := n.Inner.(*ast.SectionStatement); ok {
			return ev.evalSection(sec, e, n.Annotation == "slow")
		}
		return ev.eval(n.Inner, e, tail)

	case *ast.BlockExpression:
		return ev.evalBlock(n, e.Child(), tail)

	case *ast.IntegerLiteral:
		return &object.Integer{Val: n.Value}

	case *ast.DecimalLiteral:
		return object.NewDecimal(n.Value)

	case *ast.StringLiteral:
		return ev.evalStringLiteral(n, e)

	case *ast.BooleanLiteral:
		return object.NativeBool(n.Value)

	case *ast.NilLiteral:
		return object.NilValue

	case *ast.Identifier:
		if val, ok := e.Get(n.Name); ok {
			return val
		}
		return object.NewNameError("'"+n.Name+"' is not defined", n.Loc().Line, n.Loc().Column)

	case *ast.Placeholder:
		return object.PlaceholderValue

	case *ast.ListLiteral:
		return ev.evalListLiteral(n, e)

	case *ast.SetLiteral:
		return ev.evalSetLiteral(n, e)

	case *ast.DictLiteral:
		return ev.evalDictLiteral(n, e)

	case *ast.RangeLiteral:
		return ev.evalRangeLiteral(n, e)

	case *ast.FunctionLiteral:
		return ev.evalFunctionLiteral(n, e)

	case *ast.CallExpression:
		if tail {
			return ev.evalCallTail(n, e)
		}
		return ev.evalCall(n, e)

	case *ast.LogicalExpression:
		return ev.evalLogical(n, e)

	case *ast.PrefixExpression:
		return ev.evalPrefix(n, e)

	case *ast.IndexExpression:
		return ev.evalIndex(n, e)

	case *ast.IfExpression:
		return ev.evalIf(n, e, tail)

	case *ast.MatchExpression:
		return ev.evalMatch(n, e, tail)

	default:
		loc := node.Loc()
		return object.NewDomainError("cannot evaluate node", loc.Line, loc.Column)
	}
}

func (ev *Evaluator) evalStatements(stmts []ast.Statement, e *env.Environment) object.Object {
	var result object.Object = object.NilValue
	for _, s := range stmts {
		result = ev.eval(s, e, false)
		if isControlFlow(result) {
			return result
		}
	}
	return result
}

// evalBlock implements the state machine of §4.6: it runs every
// statement but the last normally, then evaluates the final statement
// with the block's own tail flag. A TailCallRequest produced there is
// returned unchanged; callFunction's loop is what consumes it.
func (ev *Evaluator) evalBlock(block *ast.BlockExpression, e *env.Environment, tail bool) object.Object {
	stmts := block.Statements
	if len(stmts) == 0 {
		return object.NilValue
	}
	var result object.Object = object.NilValue
	for _, s := range stmts[:len(stmts)-1] {
		result = ev.eval(s, e, false)
		if isControlFlow(result) {
			return result
		}
	}
	last := stmts[len(stmts)-1]
	return ev.eval(last, e, tail)
}

func isControlFlow(o object.Object) bool {
	_, ok := o.(object.ControlFlow)
	return ok
}

func isError(o object.Object) bool {
	_, ok := o.(*object.Error)
	return ok
}

func (ev *Evaluator) evalLet(n *ast.LetStatement, e *env.Environment) object.Object {
	val := ev.Eval(n.Value, e)
	if isError(val) {
		return val
	}
	ok, err := ev.match(n.Target, val, e, n.Mutable)
	if err != nil {
		return err
	}
	if !ok {
		loc := n.Target.Loc()
		return object.NewDomainError("let pattern did not match", loc.Line, loc.Column)
	}
	return val
}
