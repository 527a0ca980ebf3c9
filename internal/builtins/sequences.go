package builtins

import (
	"math/big"

	"github.com/embertide/ember/internal/object"
)

// sequenceDefs covers §4.7's lazy-stream operations: iterate builds a
// Sequence from a generator, take/drop/cycle work across Sequence,
// Range, List, and String uniformly so `take(5, 1..)` and
// `take(5, [1,2,3,4,5,6])` read the same way.
func sequenceDefs(apply ApplyFunc) []def {
	return []def{
		{"iterate", 2, iterateDef(apply)},
		{"take", 2, takeDef},
		{"drop", 2, dropDef},
		{"cycle", 1, cycleDef},
	}
}

func iterateDef(apply ApplyFunc) func([]object.Object, int, int) object.Object {
	return func(args []object.Object, line, col int) object.Object {
		f, seed := args[0], args[1]
		return object.NewSequence(seed, func(prev object.Object) object.Object {
			return apply(f, []object.Object{prev}, line, col)
		})
	}
}

func takeDef(args []object.Object, line, col int) object.Object {
	n, ok := args[0].(*object.Integer)
	if !ok {
		return object.NewTypeError("take count must be an Integer, got "+string(args[0].TypeName()), line, col)
	}
	count := int(n.Val.Int64())
	if count < 0 {
		return object.NewDomainError("take count must be non-negative", line, col)
	}
	switch coll := args[1].(type) {
	case *object.Sequence:
		items := coll.Take(count)
		out := make([]object.Value, 0, len(items))
		for _, it := range items {
			v, ok := it.(object.Value)
			if !ok {
				return object.NewTypeError("sequence produced a non-Value element", line, col)
			}
			out = append(out, v)
		}
		return object.NewList(out...)
	case *object.Range:
		out := object.EmptyList
		cur := new(big.Int).Set(coll.Start)
		for i := 0; i < count && coll.Contains(cur); i++ {
			out = out.Push(&object.Integer{Val: new(big.Int).Set(cur)})
			next, more := coll.Next(cur)
			cur = next
			if !more {
				break
			}
		}
		return out
	case *object.List:
		if count > coll.Len() {
			count = coll.Len()
		}
		sliced, sliceErr := coll.Slice(0, count)
		if sliceErr != nil {
			return withLoc(sliceErr, line, col)
		}
		return sliced
	case *object.String:
		if count > coll.Len() {
			count = coll.Len()
		}
		return object.NewString(string(coll.Runes[:count]))
	default:
		return object.NewTypeError("take requires a Sequence, Range, List, or String, got "+string(args[1].TypeName()), line, col)
	}
}

func dropDef(args []object.Object, line, col int) object.Object {
	n, ok := args[0].(*object.Integer)
	if !ok {
		return object.NewTypeError("drop count must be an Integer, got "+string(args[0].TypeName()), line, col)
	}
	count := int(n.Val.Int64())
	if count < 0 {
		return object.NewDomainError("drop count must be non-negative", line, col)
	}
	switch coll := args[1].(type) {
	case *object.Sequence:
		return coll.Drop(count)
	case *object.Range:
		start := new(big.Int).Set(coll.Start)
		for i := 0; i < count; i++ {
			next, more := coll.Next(start)
			start = next
			if !more {
				break
			}
		}
		return object.NewRange(start, coll.End, coll.Inclusive)
	case *object.List:
		if count > coll.Len() {
			count = coll.Len()
		}
		sliced, sliceErr := coll.Slice(count, coll.Len())
		if sliceErr != nil {
			return withLoc(sliceErr, line, col)
		}
		return sliced
	case *object.String:
		if count > coll.Len() {
			count = coll.Len()
		}
		return object.NewString(string(coll.Runes[count:]))
	default:
		return object.NewTypeError("drop requires a Sequence, Range, List, or String, got "+string(args[1].TypeName()), line, col)
	}
}

// cycleDef repeats a finite collection forever as a Sequence (spec
// §4.7). The generator ignores the element it's handed and instead
// advances an internal index, the same trick mapRange/filterRange use
// to drive a Sequence from mutable closure state.
func cycleDef(args []object.Object, line, col int) object.Object {
	items, err := toValueSlice(args[0], line, col)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return object.NewDomainError("cannot cycle an empty collection", line, col)
	}
	index := 0
	return object.NewSequence(items[0], func(object.Object) object.Object {
		index++
		return items[index%len(items)]
	})
}
