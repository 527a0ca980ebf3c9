package builtins

import "github.com/embertide/ember/internal/object"

func comparisonDefs() []def {
	return []def{
		{"==", 2, eqFn},
		{"!=", 2, neqFn},
		{"<", 2, ltFn},
		{">", 2, gtFn},
		{"<=", 2, leFn},
		{">=", 2, geFn},
		{"!", 1, notFn},
	}
}

func eqFn(args []object.Object, line, col int) object.Object {
	av, aok := args[0].(object.Value)
	bv, bok := args[1].(object.Value)
	if !aok || !bok {
		return object.False
	}
	return object.NativeBool(av.Equals(bv))
}

func neqFn(args []object.Object, line, col int) object.Object {
	return object.NativeBool(!eqFn(args, line, col).IsTruthy())
}

func notFn(args []object.Object, line, col int) object.Object {
	return object.NativeBool(!args[0].IsTruthy())
}

// compare orders Integer/Decimal (cross-type) and String (lexicographic
// by code point); every other pairing is a TypeError. Orderings are
// total within a type and defined cross-type only between Integer and
// Decimal.
func compare(a, b object.Object, line, col int) (int, *object.Error) {
	if ai, bi, ok := bothInts(a, b); ok {
		return ai.Val.Cmp(bi.Val), nil
	}
	if as, ok := a.(*object.String); ok {
		if bs, ok2 := b.(*object.String); ok2 {
			return compareRunes(as.Runes, bs.Runes), nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, object.NewTypeError("cannot compare "+string(a.TypeName())+" and "+string(b.TypeName()), line, col)
}

func compareRunes(a, b []rune) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func ltFn(args []object.Object, line, col int) object.Object {
	c, err := compare(args[0], args[1], line, col)
	if err != nil {
		return err
	}
	return object.NativeBool(c < 0)
}

func gtFn(args []object.Object, line, col int) object.Object {
	c, err := compare(args[0], args[1], line, col)
	if err != nil {
		return err
	}
	return object.NativeBool(c > 0)
}

func leFn(args []object.Object, line, col int) object.Object {
	c, err := compare(args[0], args[1], line, col)
	if err != nil {
		return err
	}
	return object.NativeBool(c <= 0)
}

func geFn(args []object.Object, line, col int) object.Object {
	c, err := compare(args[0], args[1], line, col)
	if err != nil {
		return err
	}
	return object.NativeBool(c >= 0)
}
