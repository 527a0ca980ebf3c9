// Package builtins registers every native operation into the root
// Environment, one file per concern (arithmetic, comparison, strings,
// collections, io, ...), covering this language's uniform
// operator-as-call surface: arithmetic and comparison operators are
// ordinary builtins here, not dedicated evaluator cases.
package builtins

import (
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// ApplyFunc matches eval.Evaluator.Apply's signature. Builtins package
// cannot import internal/eval (eval imports builtins to install the root
// environment), so higher-order builtins that need to invoke a callback
// value (map, filter, fold, ...) receive this callback instead.
type ApplyFunc func(callee object.Object, args []object.Object, line, col int) object.Object

// def is the shape every builtin registration shares: a name, its
// declared arity (-1 for variadic, exempting it from partial
// application per object.CallableArity), and the native implementation.
type def struct {
	name  string
	arity int
	fn    func(args []object.Object, line, col int) object.Object
}

func install(root *env.Environment, defs []def) {
	for _, d := range defs {
		root.Define(d.name, &object.BuiltinFunction{Name: d.name, Arity: d.arity, Fn: d.fn}, false)
	}
}

// Install registers the full builtin surface into root.
func Install(root *env.Environment, apply ApplyFunc) {
	install(root, arithmeticDefs())
	install(root, comparisonDefs())
	install(root, combinatorDefs(apply))
	install(root, collectionDefs(apply))
	install(root, stringDefs())
	install(root, sequenceDefs(apply))
	install(root, ioDefs(root))
	install(root, miscDefs())
}
