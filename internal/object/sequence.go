package object

// Sequence is a lazy, memoized stream: elements are produced on demand
// by repeatedly applying gen to the previous element (starting from
// seed) and cached in buf so re-reading an already-produced index never
// re-invokes gen. Sequence is not a Value — it has no stable
// Hash/Equals since it may be infinite and its identity is its
// generator, not its (possibly unbounded) contents.
type Sequence struct {
	seed Object
	gen  func(Object) Object
	buf  []Object
}

func NewSequence(seed Object, gen func(Object) Object) *Sequence {
	return &Sequence{seed: seed, gen: gen}
}

func (s *Sequence) Inspect() string { return "<sequence>" }
func (s *Sequence) IsTruthy() bool  { return true }
func (s *Sequence) TypeName() Kind  { return SequenceKind }

// At returns the i-th element (0-indexed), producing and memoizing every
// element up to i if not already buffered.
func (s *Sequence) At(i int) Object {
	for len(s.buf) <= i {
		if len(s.buf) == 0 {
			s.buf = append(s.buf, s.seed)
			continue
		}
		s.buf = append(s.buf, s.gen(s.buf[len(s.buf)-1]))
	}
	return s.buf[i]
}

// Take materializes the first n elements as a slice.
func (s *Sequence) Take(n int) []Object {
	out := make([]Object, n)
	for i := 0; i < n; i++ {
		out[i] = s.At(i)
	}
	return out
}

// Drop returns a new Sequence holding this sequence's elements from index
// n onward. It reads them through s.At, so gen is only ever driven by s
// and both sequences see the same memoized elements.
func (s *Sequence) Drop(n int) *Sequence {
	i := n
	return NewSequence(s.At(n), func(Object) Object {
		i++
		return s.At(i)
	})
}
