package eval

import (
	"math/big"
	"strings"

	"github.com/embertide/ember/internal/ast"
	"github.com/embertide/ember/internal/env"
	"github.com/embertide/ember/internal/object"
)

// evalStringLiteral splices interpolation spans in source order. Each
// embedded expression's Inspect() form is spliced in directly, the same
// canonical textual form used for result reporting, so an interpolated
// String shows its own quotes just as any other inspect call would.
func (ev *Evaluator) evalStringLiteral(n *ast.StringLiteral, e *env.Environment) object.Object {
	if len(n.Parts) == 0 {
		return object.NewString(n.Value)
	}
	var b strings.Builder
	for _, part := range n.Parts {
		if lit, ok := part.(*ast.StringLiteral); ok && len(lit.Parts) == 0 {
			b.WriteString(lit.Value)
			continue
		}
		v := ev.Eval(part, e)
		if isError(v) {
			return v
		}
		b.WriteString(v.Inspect())
	}
	return object.NewString(b.String())
}

func (ev *Evaluator) evalListLiteral(n *ast.ListLiteral, e *env.Environment) object.Object {
	items := make([]object.Value, 0, len(n.Elements))
	for _, elExpr := range n.Elements {
		v := ev.Eval(elExpr, e)
		if isError(v) {
			return v
		}
		vv, ok := v.(object.Value)
		if !ok {
			loc := elExpr.Loc()
			return object.NewTypeError("list elements must be values, got "+string(v.TypeName()), loc.Line, loc.Column)
		}
		items = append(items, vv)
	}
	return object.NewList(items...)
}

func (ev *Evaluator) evalSetLiteral(n *ast.SetLiteral, e *env.Environment) object.Object {
	items := make([]object.Value, 0, len(n.Elements))
	for _, elExpr := range n.Elements {
		v := ev.Eval(elExpr, e)
		if isError(v) {
			return v
		}
		vv, ok := v.(object.Value)
		if !ok {
			loc := elExpr.Loc()
			return object.NewDomainError("set elements must be hashable values, got "+string(v.TypeName()), loc.Line, loc.Column)
		}
		items = append(items, vv)
	}
	return object.NewSet(items...)
}

func (ev *Evaluator) evalDictLiteral(n *ast.DictLiteral, e *env.Environment) object.Object {
	d := object.NewDict()
	for _, entry := range n.Entries {
		k := ev.Eval(entry.Key, e)
		if isError(k) {
			return k
		}
		kv, ok := k.(object.Value)
		if !ok {
			loc := entry.Key.Loc()
			return object.NewDomainError("dict keys must be hashable values, got "+string(k.TypeName()), loc.Line, loc.Column)
		}
		v := ev.Eval(entry.Value, e)
		if isError(v) {
			return v
		}
		d = d.Set(kv, v)
	}
	return d
}

func (ev *Evaluator) evalRangeLiteral(n *ast.RangeLiteral, e *env.Environment) object.Object {
	startObj := ev.Eval(n.Start, e)
	if isError(startObj) {
		return startObj
	}
	start, ok := startObj.(*object.Integer)
	if !ok {
		loc := n.Start.Loc()
		return object.NewTypeError("range bounds must be Integer, got "+string(startObj.TypeName()), loc.Line, loc.Column)
	}
	var end *big.Int
	if n.End != nil {
		endObj := ev.Eval(n.End, e)
		if isError(endObj) {
			return endObj
		}
		endInt, ok := endObj.(*object.Integer)
		if !ok {
			loc := n.End.Loc()
			return object.NewTypeError("range bounds must be Integer, got "+string(endObj.TypeName()), loc.Line, loc.Column)
		}
		end = endInt.Val
	}
	return object.NewRange(start.Val, end, n.Inclusive)
}

// evalFunctionLiteral captures e itself (not a child) as the closure's
// environment: parameters are bound into a fresh child scope per call by
// callFunction, so the literal's own defining scope is what must be
// remembered here for closures to capture by reference.
func (ev *Evaluator) evalFunctionLiteral(n *ast.FunctionLiteral, e *env.Environment) object.Object {
	params := make([]object.FnPattern, len(n.Params))
	for i, p := range n.Params {
		params[i] = p
	}
	return object.NewFunction(n.Name, params, n.Body, e)
}

// evalIndex dispatches coll[index] over the three indexable value kinds:
// List and String accept an Integer (single element) or a Range
// (sub-collection); Dict accepts any hashable Value as a key.
func (ev *Evaluator) evalIndex(n *ast.IndexExpression, e *env.Environment) object.Object {
	coll := ev.Eval(n.Collection, e)
	if isError(coll) {
		return coll
	}
	idx := ev.Eval(n.Index, e)
	if isError(idx) {
		return idx
	}
	loc := n.Loc()
	switch c := coll.(type) {
	case *object.List:
		switch i := idx.(type) {
		case *object.Integer:
			pos := normalizeIndex(i.Val, c.Len())
			v, ok := c.Get(pos)
			if !ok {
				return object.NilValue
			}
			return v
		case *object.Range:
			start, end := rangeBounds(i, c.Len())
			out, err := c.Slice(start, end)
			if err != nil {
				return withLoc(err, loc.Line, loc.Column)
			}
			return out
		default:
			return object.NewTypeError("list index must be Integer or Range, got "+string(idx.TypeName()), loc.Line, loc.Column)
		}

	case *object.String:
		switch i := idx.(type) {
		case *object.Integer:
			pos := normalizeIndex(i.Val, c.Len())
			if pos < 0 || pos >= c.Len() {
				return object.NilValue
			}
			return &object.String{Runes: []rune{c.Runes[pos]}}
		case *object.Range:
			start, end := rangeBounds(i, c.Len())
			if start < 0 {
				start = 0
			}
			if end > c.Len() {
				end = c.Len()
			}
			if start > end {
				start = end
			}
			return &object.String{Runes: append([]rune{}, c.Runes[start:end]...)}
		default:
			return object.NewTypeError("string index must be Integer or Range, got "+string(idx.TypeName()), loc.Line, loc.Column)
		}

	case *object.Dict:
		key, ok := idx.(object.Value)
		if !ok {
			return object.NewDomainError("dict key is not hashable", loc.Line, loc.Column)
		}
		v, found := c.Get(key)
		if !found {
			return object.NilValue
		}
		return v

	default:
		return object.NewTypeError("value is not indexable: "+string(coll.TypeName()), loc.Line, loc.Column)
	}
}

// normalizeIndex folds a negative big.Int index relative to length, the
// way Python-family languages index from the end.
func normalizeIndex(v *big.Int, length int) int {
	pos := int(v.Int64())
	if pos < 0 {
		pos += length
	}
	return pos
}

// rangeBounds resolves a Range's (possibly unbounded, possibly negative)
// endpoints to a concrete [start, end) slice window against a collection
// of the given length. Out-of-window results are clamped rather than
// erroring — a documented simplification (see DESIGN.md): start and end
// are kept within [0, length] and start never exceeds end.
func rangeBounds(r *object.Range, length int) (int, int) {
	start := normalizeIndex(r.Start, length)
	var end int
	if r.End == nil {
		end = length
	} else {
		end = normalizeIndex(r.End, length)
		if r.Inclusive {
			end++
		}
	}
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start > end {
		start = end
	}
	return start, end
}
