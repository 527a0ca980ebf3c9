package eval

import (
	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// Apply invokes callee with already-evaluated args, handling both user
// Functions and BuiltinFunctions uniformly, and implementing partial
// application: a call shorter than the callee's declared arity — or one
// containing an explicit Placeholder — produces a new Function instead
// of invoking the callee.
func (ev *Evaluator) Apply(callee object.Object, args []object.Object, line, col int) object.Object {
	arity, ok := object.CallableArity(callee)
	if ok && needsPartial(args, arity) {
		return ev.partialApply(callee, args, arity, line, col)
	}
	switch fn := callee.(type) {
	case *object.BuiltinFunction:
		return fn.Fn(args, line, col)
	case *object.Function:
		return ev.callFunction(fn, args, line, col)
	case *object.PartialFunction:
		return fn.Apply(args)
	default:
		return object.NewTypeError("value is not callable: "+string(callee.TypeName()), line, col)
	}
}

func needsPartial(args []object.Object, arity int) bool {
	if len(args) < arity {
		return true
	}
	for _, a := range args {
		if _, ok := a.(*object.Placeholder); ok {
			return true
		}
	}
	return false
}

// partialApply builds a closure that, called with the remaining slots
// filled positionally (Placeholders replaced in order, then any missing
// trailing arguments appended), invokes the original callee.
func (ev *Evaluator) partialApply(callee object.Object, args []object.Object, arity, line, col int) object.Object {
	full := make([]object.Object, arity)
	filled := make([]bool, arity)
	missing := 0
	for i := 0; i < arity; i++ {
		if i < len(args) {
			if _, isPlaceholder := args[i].(*object.Placeholder); !isPlaceholder {
				full[i] = args[i]
				filled[i] = true
				continue
			}
		}
		missing++
	}
	return &object.PartialFunction{
		Callee:    callee,
		Filled:    full,
		IsFilled:  filled,
		Remaining: missing,
		Apply: func(rest []object.Object) object.Object {
			merged := make([]object.Object, arity)
			ri := 0
			for i := 0; i < arity; i++ {
				if filled[i] {
					merged[i] = full[i]
				} else if ri < len(rest) {
					merged[i] = rest[ri]
					ri++
				}
			}
			return ev.Apply(callee, merged, line, col)
		},
	}
}

// callFunction runs fn's trampoline: evaluating the body in tail
// position and repeatedly re-entering for each TailCallRequest it
// produces, rather than recursing through Go's call stack.
func (ev *Evaluator) callFunction(fn *object.Function, args []object.Object, line, col int) object.Object {
	for {
		if len(args) != len(fn.Params) {
			return object.NewArityError("wrong number of arguments", line, col)
		}
		parentEnv, ok := fn.Env.(*env.Environment)
		if !ok {
			return object.NewTypeError("closure has no environment", line, col)
		}
		callEnv := parentEnv.Child()
		for i, p := range fn.Params {
			pat := p.(ast.Pattern)
			ok, err := ev.match(pat, args[i], callEnv, false)
			if err != nil {
				return err
			}
			if !ok {
				return object.NewTypeError("argument does not match parameter pattern", line, col)
			}
		}
		body := fn.Body.(*ast.BlockExpression)
		result := ev.evalBlock(body, callEnv, true)
		if tc, ok := result.(*object.TailCallRequest); ok {
			fn, args = tc.Fn, tc.Args
			continue
		}
		if ret, ok := result.(*object.ReturnValue); ok {
			return ret.Val
		}
		return result
	}
}
