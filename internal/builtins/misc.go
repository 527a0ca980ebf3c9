package builtins

import "github.com/embertide/ember/internal/object"

// miscDefs covers the leftover builtins that don't belong to any one
// collection or numeric concern: type introspection, assert, and the
// asMutable/asImmutable pair for explicitly switching a collection
// between persistent and transient mode.
func miscDefs() []def {
	return []def{
		{"type", 1, typeFn},
		{"assert", 2, assertFn},
		{"asMutable", 1, asMutableFn},
		{"asImmutable", 1, asImmutableFn},
	}
}

func typeFn(args []object.Object, line, col int) object.Object {
	return object.NewString(string(args[0].TypeName()))
}

// assertFn fails with a DomainError on a falsy condition.
func assertFn(args []object.Object, line, col int) object.Object {
	if args[0].IsTruthy() {
		return object.NilValue
	}
	msg, ok := args[1].(*object.String)
	if !ok {
		return object.NewDomainError(args[1].Inspect(), line, col)
	}
	return object.NewDomainError(msg.Go(), line, col)
}

func asMutableFn(args []object.Object, line, col int) object.Object {
	switch v := args[0].(type) {
	case *object.List:
		return v.AsMutable()
	case *object.Dict:
		return v.AsMutable()
	case *object.Set:
		return v.AsMutable()
	default:
		return object.NewTypeError("asMutable requires a List, Dict, or Set, got "+string(args[0].TypeName()), line, col)
	}
}

func asImmutableFn(args []object.Object, line, col int) object.Object {
	switch v := args[0].(type) {
	case *object.TransientList:
		return v.AsImmutable()
	case *object.TransientDict:
		return v.AsImmutable()
	case *object.TransientSet:
		return v.AsImmutable()
	default:
		return object.NewTypeError("asImmutable requires a transient List, Dict, or Set, got "+string(args[0].TypeName()), line, col)
	}
}
