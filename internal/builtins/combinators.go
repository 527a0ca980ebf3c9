package builtins

import (
	"math/big"

	"github.com/embertide/ember/internal/object"
)

// combinatorDefs covers the operators that need to invoke another
// callable (pipeline, composition) or that are also reachable as plain
// function calls alongside their dedicated RangeLiteral syntax (spec
// §4.2: ".." / "..=" are "also available as infix syntax").
func combinatorDefs(apply ApplyFunc) []def {
	return []def{
		{"|>", 2, pipeDef(apply)},
		{">>", 2, composeDef(apply)},
		{"..", 2, rangeDef(false)},
		{"..=", 2, rangeDef(true)},
	}
}

// pipeDef implements `x |> f` ≡ `f(x)`.
func pipeDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		x, f := args[0], args[1]
		return apply(f, []object.Object{x}, line, col)
	}
}

// composeDef implements `(f >> g)(x)` ≡ `g(f(x))` by returning a new
// BuiltinFunction closing over f and g.
func composeDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		f, g := args[0], args[1]
		return &object.BuiltinFunction{
			Name:  "<composed>",
			Arity: 1,
			Fn: func(innerArgs []object.Object, innerLine, innerCol int) object.Object {
				mid := apply(f, innerArgs, innerLine, innerCol)
				if isErrObj(mid) {
					return mid
				}
				return apply(g, []object.Object{mid}, innerLine, innerCol)
			},
		}
	}
}

func rangeDef(inclusive bool) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		start, ok := args[0].(*object.Integer)
		if !ok {
			return object.NewTypeError("range bounds must be Integer, got "+string(args[0].TypeName()), line, col)
		}
		end, ok := args[1].(*object.Integer)
		if !ok {
			return object.NewTypeError("range bounds must be Integer, got "+string(args[1].TypeName()), line, col)
		}
		return object.NewRange(new(big.Int).Set(start.Val), new(big.Int).Set(end.Val), inclusive)
	}
}

func isErrObj(o object.Object) bool {
	_, ok := o.(*object.Error)
	return ok
}
