package object

import (
	"math"
	"math/big"
	"strconv"
)

// Integer is an arbitrary-precision signed integer, backed by math/big
// so arithmetic never silently overflows a machine word.
type Integer struct {
	Val *big.Int
}

func NewInteger(v int64) *Integer { return &Integer{Val: big.NewInt(v)} }

func (i *Integer) Inspect() string  { return i.Val.String() }
func (i *Integer) IsTruthy() bool   { return i.Val.Sign() != 0 }
func (i *Integer) TypeName() Kind   { return IntegerKind }
func (i *Integer) Hash() uint64     { return hashString("i:" + i.Val.String()) }
func (i *Integer) Equals(o Value) bool {
	other, ok := o.(*Integer)
	return ok && i.Val.Cmp(other.Val) == 0
}

// AsFloat promotes the Integer to float64 for mixed-mode arithmetic and
// comparison with a Decimal. Promotion is one-directional: Integer
// always widens toward Decimal, never the reverse, so mixing the two
// never loses a Decimal's fractional part.
func (i *Integer) AsFloat() float64 {
	f := new(big.Float).SetInt(i.Val)
	out, _ := f.Float64()
	return out
}

// Decimal is an IEEE-754 double.
type Decimal struct {
	Val float64
}

func NewDecimal(v float64) *Decimal { return &Decimal{Val: v} }

func (d *Decimal) Inspect() string { return formatFloat(d.Val) }
func (d *Decimal) IsTruthy() bool  { return d.Val != 0 }
func (d *Decimal) TypeName() Kind  { return DecimalKind }
func (d *Decimal) Hash() uint64    { return math.Float64bits(d.Val) }
func (d *Decimal) Equals(o Value) bool {
	other, ok := o.(*Decimal)
	return ok && d.Val == other.Val
}

// formatFloat always marks the value as a Decimal (2.0 prints as "2.0",
// never as "2", which would read as an Integer): 'g' with -1 precision
// round-trips exactly, and ".0" is appended when that output has neither
// a decimal point nor an exponent.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !containsDotOrExp(s) {
		s += ".0"
	}
	return s
}

func containsDotOrExp(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}
