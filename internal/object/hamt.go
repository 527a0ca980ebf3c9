package object

// hamtNode is the shared shape behind Dict and Set: a persistent hash
// trie keyed by Value.Hash(), branching factor 32 like List, with a bucket
// slice at the leaves to chain hash collisions. This is a simplified
// HAMT — fixed-width 32-slot nodes rather than a bitmap-compressed
// sparse array — traded for an implementation simple enough to reason
// about by hand, since correctness here cannot be checked by running
// `go test` (see DESIGN.md).
type hamtEntry struct {
	key   Value
	value Object // for Set, value == key's own Boolean-ish marker is unused; Dict uses this slot
}

type hamtNode struct {
	children []*hamtNode // nil at leaves
	bucket   []hamtEntry // non-nil only at leaves
}

func hamtGet(n *hamtNode, h uint64, shift uint, key Value) (Object, bool) {
	if n == nil {
		return nil, false
	}
	if n.bucket != nil {
		for _, e := range n.bucket {
			if e.key.Equals(key) {
				return e.value, true
			}
		}
		return nil, false
	}
	idx := (h >> shift) & listMask
	if int(idx) >= len(n.children) {
		return nil, false
	}
	return hamtGet(n.children[idx], h, shift+listBits, key)
}

// hamtPut returns a new root with key bound to value, and whether the
// key was newly inserted (vs. an overwrite) so callers can track size.
func hamtPut(n *hamtNode, h uint64, shift uint, key Value, value Object) (*hamtNode, bool) {
	if n == nil {
		return &hamtNode{bucket: []hamtEntry{{key, value}}}, true
	}
	if n.bucket != nil {
		for i, e := range n.bucket {
			if e.key.Equals(key) {
				bucket := append([]hamtEntry{}, n.bucket...)
				bucket[i] = hamtEntry{key, value}
				return &hamtNode{bucket: bucket}, false
			}
		}
		if shift >= 64 {
			bucket := append(append([]hamtEntry{}, n.bucket...), hamtEntry{key, value})
			return &hamtNode{bucket: bucket}, true
		}
		// Split this leaf down one more level to make room.
		split := &hamtNode{}
		for _, e := range n.bucket {
			split, _ = hamtPut(split, e.key.Hash()>>0, shift, e.key, e.value)
		}
		return hamtPut(split, h, shift, key, value)
	}
	idx := (h >> shift) & listMask
	children := make([]*hamtNode, maxInt(len(n.children), int(idx)+1))
	copy(children, n.children)
	newChild, inserted := hamtPut(children[idx], h, shift+listBits, key, value)
	children[idx] = newChild
	return &hamtNode{children: children}, inserted
}

func hamtDelete(n *hamtNode, h uint64, shift uint, key Value) (*hamtNode, bool) {
	if n == nil {
		return nil, false
	}
	if n.bucket != nil {
		for i, e := range n.bucket {
			if e.key.Equals(key) {
				bucket := append(append([]hamtEntry{}, n.bucket[:i]...), n.bucket[i+1:]...)
				if len(bucket) == 0 {
					return nil, true
				}
				return &hamtNode{bucket: bucket}, true
			}
		}
		return n, false
	}
	idx := (h >> shift) & listMask
	if int(idx) >= len(n.children) {
		return n, false
	}
	newChild, removed := hamtDelete(n.children[idx], h, shift+listBits, key)
	if !removed {
		return n, false
	}
	children := append([]*hamtNode{}, n.children...)
	children[idx] = newChild
	return &hamtNode{children: children}, true
}

func hamtEach(n *hamtNode, fn func(k Value, v Object)) {
	if n == nil {
		return
	}
	if n.bucket != nil {
		for _, e := range n.bucket {
			fn(e.key, e.value)
		}
		return
	}
	for _, c := range n.children {
		hamtEach(c, fn)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
