package object

// Dict is a persistent hash trie from Value to Object, keyed by
// Value.Hash() (see hamt.go), plus an insertion-order List of keys so
// iteration is deterministic and matches declaration order. Maintaining
// that order list is the one concession to simplicity here: deletion is
// an O(n) scan-and-rebuild of the order list rather than an O(log n)
// trie operation, same tradeoff already made for List.Slice.
type Dict struct {
	root  *hamtNode
	order *List // of Value keys, in insertion order
	size  int
}

var EmptyDict = &Dict{order: EmptyList}

func NewDict() *Dict { return EmptyDict }

func (d *Dict) Len() int { return d.size }

func (d *Dict) Get(key Value) (Object, bool) {
	return hamtGet(d.root, key.Hash(), 0, key)
}

// Set returns a new Dict with key bound to value. If key is not a
// Value (i.e. it was produced by something unhashable), the caller must
// check with a type assertion before calling Set — Dict itself assumes
// a valid Value key, consistent with the evaluator raising a DomainError
// earlier for an unhashable dict key.
func (d *Dict) Set(key Value, value Object) *Dict {
	newRoot, inserted := hamtPut(d.root, key.Hash(), 0, key, value)
	order := d.order
	if inserted {
		order = order.Push(key)
	}
	size := d.size
	if inserted {
		size++
	}
	return &Dict{root: newRoot, order: order, size: size}
}

func (d *Dict) Delete(key Value) *Dict {
	newRoot, removed := hamtDelete(d.root, key.Hash(), 0, key)
	if !removed {
		return d
	}
	order := EmptyList
	d.order.ForEach(func(_ int, v Value) bool {
		if !v.Equals(key) {
			order = order.Push(v)
		}
		return true
	})
	return &Dict{root: newRoot, order: order, size: d.size - 1}
}

func (d *Dict) ForEach(fn func(k Value, v Object) bool) {
	d.order.ForEach(func(_ int, k Value) bool {
		v, _ := d.Get(k)
		return fn(k, v)
	})
}

func (d *Dict) Keys() []Value {
	out := make([]Value, 0, d.size)
	d.order.ForEach(func(_ int, k Value) bool {
		out = append(out, k)
		return true
	})
	return out
}

func (d *Dict) Values() []Object {
	out := make([]Object, 0, d.size)
	d.ForEach(func(_ Value, v Object) bool {
		out = append(out, v)
		return true
	})
	return out
}

func (d *Dict) Inspect() string {
	s := "#{"
	first := true
	d.ForEach(func(k Value, v Object) bool {
		if !first {
			s += ", "
		}
		first = false
		s += k.Inspect() + ": " + v.Inspect()
		return true
	})
	return s + "}"
}

func (d *Dict) IsTruthy() bool { return d.size != 0 }
func (d *Dict) TypeName() Kind { return DictKind }

func (d *Dict) Hash() uint64 {
	hashes := make([]uint64, 0, d.size)
	d.ForEach(func(k Value, v Object) bool {
		vv, ok := v.(Value)
		if !ok {
			return true
		}
		hashes = append(hashes, combineOrdered(k.Hash(), vv.Hash()))
		return true
	})
	return combineUnordered(hashes...)
}

func (d *Dict) Equals(o Value) bool {
	other, ok := o.(*Dict)
	if !ok || d.size != other.size {
		return false
	}
	equal := true
	d.ForEach(func(k Value, v Object) bool {
		ov, found := other.Get(k)
		vv, vIsValue := v.(Value)
		oov, oIsValue := ov.(Value)
		if !found || !vIsValue || !oIsValue || !vv.Equals(oov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
