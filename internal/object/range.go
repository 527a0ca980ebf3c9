package object

import "math/big"

// Range is a lazy, possibly-unbounded arithmetic progression. It
// hashes/compares by its defining parameters, not by enumerating
// elements, so an unbounded Range remains a well-behaved Value.
type Range struct {
	Start     *big.Int
	End       *big.Int // nil means unbounded
	Inclusive bool
}

func NewRange(start, end *big.Int, inclusive bool) *Range {
	return &Range{Start: start, End: end, Inclusive: inclusive}
}

func (r *Range) Inspect() string {
	op := ".."
	if r.Inclusive {
		op = "..="
	}
	end := ""
	if r.End != nil {
		end = r.End.String()
	}
	return r.Start.String() + op + end
}

func (r *Range) IsTruthy() bool { return true }
func (r *Range) TypeName() Kind { return RangeKind }

func (r *Range) Hash() uint64 {
	endStr := "inf"
	if r.End != nil {
		endStr = r.End.String()
	}
	incl := "0"
	if r.Inclusive {
		incl = "1"
	}
	return hashString("r:" + r.Start.String() + ":" + endStr + ":" + incl)
}

func (r *Range) Equals(o Value) bool {
	other, ok := o.(*Range)
	if !ok || r.Inclusive != other.Inclusive || r.Start.Cmp(other.Start) != 0 {
		return false
	}
	if (r.End == nil) != (other.End == nil) {
		return false
	}
	if r.End == nil {
		return true
	}
	return r.End.Cmp(other.End) == 0
}

// Bounded reports whether the range has a known end.
func (r *Range) Bounded() bool { return r.End != nil }

// Contains reports whether v falls within the range (used by `in`-style
// membership checks and by the evaluator when materializing iteration).
func (r *Range) Contains(v *big.Int) bool {
	if v.Cmp(r.Start) < 0 {
		return false
	}
	if r.End == nil {
		return true
	}
	cmp := v.Cmp(r.End)
	if r.Inclusive {
		return cmp <= 0
	}
	return cmp < 0
}

// Next returns the successor of cur within the step-1 progression, and
// whether iteration should continue (false once the bound is exceeded;
// always true for unbounded ranges).
func (r *Range) Next(cur *big.Int) (*big.Int, bool) {
	next := new(big.Int).Add(cur, big.NewInt(1))
	if r.End == nil {
		return next, true
	}
	cmp := next.Cmp(r.End)
	if r.Inclusive {
		return next, cmp <= 0
	}
	return next, cmp < 0
}
