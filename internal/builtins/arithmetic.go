package builtins

import (
	"math"
	"math/big"

	"github.com/embertide/ember/internal/object"
)

func arithmeticDefs() []def {
	return []def{
		{"+", 2, addFn},
		{"-", 2, subFn},
		{"*", 2, mulFn},
		{"/", 2, divFn},
		{"%", 2, modFn},
	}
}

func toFloat(o object.Object) (float64, bool) {
	switch v := o.(type) {
	case *object.Integer:
		return v.AsFloat(), true
	case *object.Decimal:
		return v.Val, true
	default:
		return 0, false
	}
}

func bothInts(a, b object.Object) (*object.Integer, *object.Integer, bool) {
	ai, aok := a.(*object.Integer)
	bi, bok := b.(*object.Integer)
	return ai, bi, aok && bok
}

func addFn(args []object.Object, line, col int) object.Object {
	a, b := args[0], args[1]
	if as, ok := a.(*object.String); ok {
		bs, ok2 := b.(*object.String)
		if !ok2 {
			return object.NewTypeError("cannot add String and "+string(b.TypeName()), line, col)
		}
		return object.NewString(as.Go() + bs.Go())
	}
	if al, ok := a.(*object.List); ok {
		bl, ok2 := b.(*object.List)
		if !ok2 {
			return object.NewTypeError("cannot add List and "+string(b.TypeName()), line, col)
		}
		out := al
		bl.ForEach(func(_ int, v object.Value) bool {
			out = out.Push(v)
			return true
		})
		return out
	}
	if ai, bi, ok := bothInts(a, b); ok {
		return &object.Integer{Val: new(big.Int).Add(ai.Val, bi.Val)}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return object.NewTypeError("+ requires numeric, String, or List operands, got "+string(a.TypeName())+" and "+string(b.TypeName()), line, col)
	}
	return object.NewDecimal(af + bf)
}

func subFn(args []object.Object, line, col int) object.Object {
	a, b := args[0], args[1]
	if ai, bi, ok := bothInts(a, b); ok {
		return &object.Integer{Val: new(big.Int).Sub(ai.Val, bi.Val)}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return object.NewTypeError("- requires numeric operands, got "+string(a.TypeName())+" and "+string(b.TypeName()), line, col)
	}
	return object.NewDecimal(af - bf)
}

func mulFn(args []object.Object, line, col int) object.Object {
	a, b := args[0], args[1]
	if ai, bi, ok := bothInts(a, b); ok {
		return &object.Integer{Val: new(big.Int).Mul(ai.Val, bi.Val)}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return object.NewTypeError("* requires numeric operands, got "+string(a.TypeName())+" and "+string(b.TypeName()), line, col)
	}
	return object.NewDecimal(af * bf)
}

// divFn: Integer/Integer division that divides evenly returns an
// Integer; otherwise, like any mixed-mode arithmetic, it promotes to
// Decimal.
func divFn(args []object.Object, line, col int) object.Object {
	a, b := args[0], args[1]
	if ai, bi, ok := bothInts(a, b); ok {
		if bi.Val.Sign() == 0 {
			return object.NewDomainError("division by zero", line, col)
		}
		q, r := new(big.Int).QuoRem(ai.Val, bi.Val, new(big.Int))
		if r.Sign() == 0 {
			return &object.Integer{Val: q}
		}
		return object.NewDecimal(ai.AsFloat() / bi.AsFloat())
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return object.NewTypeError("/ requires numeric operands, got "+string(a.TypeName())+" and "+string(b.TypeName()), line, col)
	}
	if bf == 0 {
		return object.NewDomainError("division by zero", line, col)
	}
	return object.NewDecimal(af / bf)
}

// modFn implements mathematical modulo: the result's sign matches the
// divisor, not Go's/big.Int's truncated or Euclidean remainder, so a
// correction is applied after computing the Euclidean (always
// non-negative) remainder.
func modFn(args []object.Object, line, col int) object.Object {
	a, b := args[0], args[1]
	if ai, bi, ok := bothInts(a, b); ok {
		if bi.Val.Sign() == 0 {
			return object.NewDomainError("modulo by zero", line, col)
		}
		r := new(big.Int).Mod(ai.Val, bi.Val)
		if r.Sign() != 0 && bi.Val.Sign() < 0 {
			r.Add(r, bi.Val)
		}
		return &object.Integer{Val: r}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return object.NewTypeError("% requires numeric operands, got "+string(a.TypeName())+" and "+string(b.TypeName()), line, col)
	}
	if bf == 0 {
		return object.NewDomainError("modulo by zero", line, col)
	}
	r := math.Mod(af, bf)
	if r != 0 && (r < 0) != (bf < 0) {
		r += bf
	}
	return object.NewDecimal(r)
}
