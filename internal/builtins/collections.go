package builtins

import (
	"math/big"
	"sort"

	"github.com/embertide/ember/internal/object"
	"github.com/samber/lo"
)

// collectionDefs covers §4.7's collection operations. Every op that
// takes exactly one collection plus auxiliary arguments puts the
// collection LAST positionally (matching the spec's own
// `map(|x| x * 2, [1, 2, 3])` example and enabling the pipe idiom
// `coll |> op(aux)` from scenario (d): `input |> fold(0) |f, d| {...}`
// desugars to `fold(0, <lambda>, input)`, so fold's declared order is
// (init, f, coll)).
func collectionDefs(apply ApplyFunc) []def {
	return []def{
		{"map", 2, mapDef(apply)},
		{"filter", 2, filterDef(apply)},
		{"fold", 3, foldDef(apply)},
		{"reduce", 2, reduceDef(apply)},
		{"each", 2, eachDef(apply)},
		{"size", 1, sizeFn},
		{"get", 2, getFn},
		{"push", 2, pushFn},
		{"push!", 2, pushBangFn},
		{"zip", 2, zipFn},
		{"range", -1, rangeFn},
		{"first", 1, firstFn},
		{"last", 1, lastFn},
		{"rest", 1, restFn},
		{"sort", 1, sortFn(apply)},
		{"reverse", 1, reverseFn},
		{"keys", 1, keysFn},
		{"values", 1, valuesFn},
		{"entries", 1, entriesFn},
	}
}

// toValueSlice materializes List, Set, or a bounded Range into a
// []object.Value. An unbounded Range is a DomainError: any operation
// that must observe the collection's length cannot run on something
// with no upper bound.
func toValueSlice(o object.Object, line, col int) ([]object.Value, *object.Error) {
	switch c := o.(type) {
	case *object.List:
		return c.ToSlice(), nil
	case *object.Set:
		return c.ToSlice(), nil
	case *object.Range:
		if !c.Bounded() {
			return nil, object.NewDomainError("cannot materialize an unbounded range", line, col)
		}
		var out []object.Value
		for cur := new(big.Int).Set(c.Start); c.Contains(cur); {
			out = append(out, &object.Integer{Val: new(big.Int).Set(cur)})
			next, more := c.Next(cur)
			if !more {
				break
			}
			cur = next
		}
		return out, nil
	case *object.String:
		out := make([]object.Value, len(c.Runes))
		for i, r := range c.Runes {
			out[i] = &object.String{Runes: []rune{r}}
		}
		return out, nil
	default:
		return nil, object.NewTypeError("expected a collection, got "+string(o.TypeName()), line, col)
	}
}

func callbackArgs(f object.Object, value object.Object, index object.Value) []object.Object {
	arity, ok := object.CallableArity(f)
	if ok && arity >= 2 {
		return []object.Object{value, index}
	}
	return []object.Object{value}
}

// mapDef handles List/Set/String eagerly and Range lazily: mapping over
// a Range produces a Sequence, since a Range may be unbounded and must
// stay lazy.
func mapDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		f, coll := args[0], args[1]
		if r, ok := coll.(*object.Range); ok {
			return mapRange(apply, f, r, line, col)
		}
		items, err := toValueSlice(coll, line, col)
		if err != nil {
			return err
		}
		out := object.EmptyList
		for i, v := range items {
			res := apply(f, callbackArgs(f, v, object.NewInteger(int64(i))), line, col)
			if isErrObj(res) {
				return res
			}
			rv, ok := res.(object.Value)
			if !ok {
				return object.NewTypeError("map callback must return a value", line, col)
			}
			out = out.Push(rv)
		}
		return out
	}
}

// mapRange produces a lazily-memoized Sequence: the internal cursor is
// a closure-captured *big.Int, advanced exactly once per new index by
// Sequence.At's append-only loop (see internal/object/sequence.go).
func mapRange(apply ApplyFunc, f object.Object, r *object.Range, line, col int) object.Object {
	cursor := new(big.Int).Set(r.Start)
	index := int64(0)
	seed := apply(f, callbackArgs(f, &object.Integer{Val: new(big.Int).Set(cursor)}, object.NewInteger(index)), line, col)
	gen := func(_ object.Object) object.Object {
		next, _ := r.Next(cursor)
		cursor = next
		index++
		return apply(f, callbackArgs(f, &object.Integer{Val: new(big.Int).Set(cursor)}, object.NewInteger(index)), line, col)
	}
	return object.NewSequence(seed, gen)
}

func filterDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		f, coll := args[0], args[1]
		if r, ok := coll.(*object.Range); ok {
			return filterRange(apply, f, r, line, col)
		}
		items, err := toValueSlice(coll, line, col)
		if err != nil {
			return err
		}
		out := object.EmptyList
		for _, v := range items {
			res := apply(f, []object.Object{v}, line, col)
			if isErrObj(res) {
				return res
			}
			if res.IsTruthy() {
				out = out.Push(v)
			}
		}
		return out
	}
}

// filterRange scans forward from the cursor on each step until a
// matching element is found. Once a bounded Range is exhausted, every
// further index of the Sequence is nil; over an unbounded Range with no
// further match the scan does not end (see DESIGN.md).
func filterRange(apply ApplyFunc, f object.Object, r *object.Range, line, col int) object.Object {
	cursor := new(big.Int).Set(r.Start)
	advance := func() (object.Object, bool) {
		for {
			if !r.Contains(cursor) {
				return nil, false
			}
			v := &object.Integer{Val: new(big.Int).Set(cursor)}
			ok := apply(f, []object.Object{v}, line, col)
			next, more := r.Next(cursor)
			matched := !isErrObj(ok) && ok.IsTruthy()
			if matched {
				cursor = next
				return v, more
			}
			if !more {
				return nil, false
			}
			cursor = next
		}
	}
	first, _ := advance()
	if first == nil {
		first = object.NilValue
	}
	gen := func(_ object.Object) object.Object {
		v, _ := advance()
		if v == nil {
			return object.NilValue
		}
		return v
	}
	return object.NewSequence(first, gen)
}

// foldDef implements fold(init, f, coll) with early `break`: f is
// invoked (acc, elem) — or (acc, elem, index) when its declared arity
// allows a third parameter — and a BreakValue returned from f is
// absorbed right here at the callback boundary, terminating the fold
// with its carried value instead of propagating further.
func foldDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		init, f, coll := args[0], args[1], args[2]
		items, err := toValueSlice(coll, line, col)
		if err != nil {
			return err
		}
		acc := init
		arity, _ := object.CallableArity(f)
		for i, v := range items {
			callArgs := []object.Object{acc, v}
			if arity >= 3 {
				callArgs = append(callArgs, object.NewInteger(int64(i)))
			}
			res := apply(f, callArgs, line, col)
			if brk, ok := res.(*object.BreakValue); ok {
				return brk.Val
			}
			if isErrObj(res) {
				return res
			}
			acc = res
		}
		return acc
	}
}

func reduceDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		f, coll := args[0], args[1]
		items, err := toValueSlice(coll, line, col)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return object.NewDomainError("reduce on an empty collection", line, col)
		}
		acc := object.Object(items[0])
		for _, v := range items[1:] {
			res := apply(f, []object.Object{acc, v}, line, col)
			if isErrObj(res) {
				return res
			}
			if brk, ok := res.(*object.BreakValue); ok {
				return brk.Val
			}
			acc = res
		}
		return acc
	}
}

func eachDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		f, coll := args[0], args[1]
		items, err := toValueSlice(coll, line, col)
		if err != nil {
			return err
		}
		for i, v := range items {
			res := apply(f, callbackArgs(f, v, object.NewInteger(int64(i))), line, col)
			if isErrObj(res) {
				return res
			}
			if brk, ok := res.(*object.BreakValue); ok {
				return brk.Val
			}
		}
		return object.NilValue
	}
}

func sizeFn(args []object.Object, line, col int) object.Object {
	switch c := args[0].(type) {
	case *object.List:
		return object.NewInteger(int64(c.Len()))
	case *object.String:
		return object.NewInteger(int64(c.Len()))
	case *object.Dict:
		return object.NewInteger(int64(c.Len()))
	case *object.Set:
		return object.NewInteger(int64(c.Len()))
	case *object.Range:
		if !c.Bounded() {
			return object.NewDomainError("size of an unbounded range", line, col)
		}
		n := new(big.Int).Sub(c.End, c.Start)
		if c.Inclusive {
			n.Add(n, big.NewInt(1))
		}
		return &object.Integer{Val: n}
	default:
		return object.NewTypeError("size requires a collection, got "+string(args[0].TypeName()), line, col)
	}
}

func getFn(args []object.Object, line, col int) object.Object {
	key, coll := args[0], args[1]
	switch c := coll.(type) {
	case *object.Dict:
		kv, ok := key.(object.Value)
		if !ok {
			return object.NewDomainError("dict key is not hashable", line, col)
		}
		v, found := c.Get(kv)
		if !found {
			return object.NilValue
		}
		return v
	case *object.List:
		i, ok := key.(*object.Integer)
		if !ok {
			return object.NewTypeError("list index must be Integer, got "+string(key.TypeName()), line, col)
		}
		pos := int(i.Val.Int64())
		if pos < 0 {
			pos += c.Len()
		}
		v, found := c.Get(pos)
		if !found {
			return object.NilValue
		}
		return v
	default:
		return object.NewTypeError("get requires a Dict or List, got "+string(coll.TypeName()), line, col)
	}
}

func pushFn(args []object.Object, line, col int) object.Object {
	item, coll := args[0], args[1]
	itemVal, ok := item.(object.Value)
	if !ok {
		return object.NewTypeError("pushed item must be a value, got "+string(item.TypeName()), line, col)
	}
	switch c := coll.(type) {
	case *object.List:
		return c.Push(itemVal)
	case *object.Set:
		return c.Add(itemVal)
	default:
		return object.NewTypeError("push requires a persistent List or Set, got "+string(coll.TypeName()), line, col)
	}
}

func pushBangFn(args []object.Object, line, col int) object.Object {
	item, coll := args[0], args[1]
	itemVal, ok := item.(object.Value)
	if !ok {
		return object.NewTypeError("pushed item must be a value, got "+string(item.TypeName()), line, col)
	}
	switch c := coll.(type) {
	case *object.TransientList:
		c.Push(itemVal)
		return c
	case *object.TransientSet:
		c.Add(itemVal)
		return c
	default:
		return object.NewTypeError("push! requires a transient List or Set (asMutable), got "+string(coll.TypeName()), line, col)
	}
}

func zipFn(args []object.Object, line, col int) object.Object {
	a, err := toValueSlice(args[0], line, col)
	if err != nil {
		return err
	}
	b, err := toValueSlice(args[1], line, col)
	if err != nil {
		return err
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := object.EmptyList
	for i := 0; i < n; i++ {
		out = out.Push(object.NewList(a[i], b[i]))
	}
	return out
}

// rangeFn is the function form of range construction, alongside the
// `..`/`..=` infix operators: range(end) starts at 0; range(start, end)
// is explicit. Both are exclusive of end, like `..`.
func rangeFn(args []object.Object, line, col int) object.Object {
	var startObj, endObj object.Object
	switch len(args) {
	case 1:
		startObj, endObj = object.NewInteger(0), args[0]
	case 2:
		startObj, endObj = args[0], args[1]
	default:
		return object.NewArityError("range takes 1 or 2 arguments", line, col)
	}
	start, ok := startObj.(*object.Integer)
	if !ok {
		return object.NewTypeError("range bounds must be Integer", line, col)
	}
	end, ok := endObj.(*object.Integer)
	if !ok {
		return object.NewTypeError("range bounds must be Integer", line, col)
	}
	return object.NewRange(start.Val, end.Val, false)
}

func firstFn(args []object.Object, line, col int) object.Object {
	items, err := toValueSlice(args[0], line, col)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return object.NilValue
	}
	return items[0]
}

func lastFn(args []object.Object, line, col int) object.Object {
	items, err := toValueSlice(args[0], line, col)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return object.NilValue
	}
	return items[len(items)-1]
}

func restFn(args []object.Object, line, col int) object.Object {
	items, err := toValueSlice(args[0], line, col)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return object.EmptyList
	}
	return object.NewList(items[1:]...)
}

func sortFn(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		items, err := toValueSlice(args[0], line, col)
		if err != nil {
			return err
		}
		sorted := append([]object.Value{}, items...)
		var sortErr *object.Error
		sort.SliceStable(sorted, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			c, e := compare(sorted[i], sorted[j], line, col)
			if e != nil {
				sortErr = e
				return false
			}
			return c < 0
		})
		if sortErr != nil {
			return sortErr
		}
		return object.NewList(sorted...)
	}
}

func reverseFn(args []object.Object, line, col int) object.Object {
	switch c := args[0].(type) {
	case *object.String:
		out := lo.Reverse(append([]rune{}, c.Runes...))
		return &object.String{Runes: out}
	default:
		items, err := toValueSlice(args[0], line, col)
		if err != nil {
			return err
		}
		return object.NewList(lo.Reverse(append([]object.Value{}, items...))...)
	}
}

func keysFn(args []object.Object, line, col int) object.Object {
	d, ok := args[0].(*object.Dict)
	if !ok {
		return object.NewTypeError("keys requires a Dict, got "+string(args[0].TypeName()), line, col)
	}
	return object.NewList(d.Keys()...)
}

func valuesFn(args []object.Object, line, col int) object.Object {
	d, ok := args[0].(*object.Dict)
	if !ok {
		return object.NewTypeError("values requires a Dict, got "+string(args[0].TypeName()), line, col)
	}
	vals := d.Values()
	out := make([]object.Value, 0, len(vals))
	for _, v := range vals {
		if vv, ok := v.(object.Value); ok {
			out = append(out, vv)
		}
	}
	return object.NewList(out...)
}

func entriesFn(args []object.Object, line, col int) object.Object {
	d, ok := args[0].(*object.Dict)
	if !ok {
		return object.NewTypeError("entries requires a Dict, got "+string(args[0].TypeName()), line, col)
	}
	out := object.EmptyList
	d.ForEach(func(k object.Value, v object.Object) bool {
		vv, ok := v.(object.Value)
		if !ok {
			return true
		}
		out = out.Push(object.NewList(k, vv))
		return true
	})
	return out
}
