package builtins

import (
	"strings"

	"github.com/embertide/ember/internal/object"
	"github.com/spf13/cast"
)

// stringDefs covers the string operations. split/trim put the
// collection/subject last, matching the pipe-friendly convention used
// throughout, so `s |> trim |> split(",")` reads left to right.
func stringDefs() []def {
	return []def{
		{"split", 2, splitFn},
		{"trim", 1, trimFn},
		{"int", 1, intFn},
		{"str", 1, strFn},
	}
}

func splitFn(args []object.Object, line, col int) object.Object {
	sep, ok := args[0].(*object.String)
	if !ok {
		return object.NewTypeError("split separator must be a String, got "+string(args[0].TypeName()), line, col)
	}
	s, ok := args[1].(*object.String)
	if !ok {
		return object.NewTypeError("split requires a String, got "+string(args[1].TypeName()), line, col)
	}
	parts := strings.Split(s.Go(), sep.Go())
	out := object.EmptyList
	for _, p := range parts {
		out = out.Push(object.NewString(p))
	}
	return out
}

func trimFn(args []object.Object, line, col int) object.Object {
	s, ok := args[0].(*object.String)
	if !ok {
		return object.NewTypeError("trim requires a String, got "+string(args[0].TypeName()), line, col)
	}
	return object.NewString(strings.TrimSpace(s.Go()))
}

// intFn parses a String to an Integer, or truncates a Decimal, using
// cast.ToInt64E rather than hand-rolled strconv branching. A malformed
// String is a DomainError — it's the right type but an out-of-domain
// value — not a TypeError.
func intFn(args []object.Object, line, col int) object.Object {
	switch v := args[0].(type) {
	case *object.Integer:
		return v
	case *object.Decimal:
		n, err := cast.ToInt64E(v.Val)
		if err != nil {
			return object.NewDomainError("cannot convert "+v.Inspect()+" to Integer", line, col)
		}
		return object.NewInteger(n)
	case *object.String:
		n, err := cast.ToInt64E(v.Go())
		if err != nil {
			return object.NewDomainError("cannot parse "+v.Inspect()+" as Integer", line, col)
		}
		return object.NewInteger(n)
	default:
		return object.NewTypeError("int requires a String, Integer, or Decimal, got "+string(args[0].TypeName()), line, col)
	}
}

// strFn formats x for display: every Value's own inspect() already
// round-trips except String, whose inspect() is quoted — str strips
// that quoting so `str("hi")` is `hi`, not `"hi"`.
func strFn(args []object.Object, line, col int) object.Object {
	if s, ok := args[0].(*object.String); ok {
		return s
	}
	return object.NewString(args[0].Inspect())
}
