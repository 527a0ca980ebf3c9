/*
Package object defines the runtime value model: the closed union of
objects the evaluator produces and passes around, split into two
capability tiers. Every Object exposes Inspect/IsTruthy/TypeName, while
the narrower "Value" subset additionally exposes Hash/Equals so it can
live inside Dict/Set keys and participate in the equality law (equals
⇒ equal hash) — values that can't sensibly be hashed (a Function, a
lazy Sequence) simply don't implement Value, and the type system
catches any attempt to use them as a key at the call site instead of
failing at hash time.
*/
package object

// Kind names a runtime type for TypeName() and builtin `type(x)`.
type Kind string

const (
	IntegerKind  Kind = "Integer"
	DecimalKind  Kind = "Decimal"
	StringKind   Kind = "String"
	BooleanKind  Kind = "Boolean"
	NilKind      Kind = "Nil"
	ListKind     Kind = "List"
	DictKind     Kind = "Dict"
	SetKind      Kind = "Set"
	RangeKind    Kind = "Range"
	SequenceKind Kind = "Sequence"
	FunctionKind Kind = "Function"
	BuiltinKind  Kind = "Builtin"
	PlaceholderKind Kind = "Placeholder"
	SectionKind  Kind = "Section"
	TransientListKind Kind = "TransientList"
	TransientDictKind Kind = "TransientDict"
	TransientSetKind  Kind = "TransientSet"
	// ErrKind is the TypeName() of *Error values. Named to avoid
	// colliding with the ErrorKind taxonomy type in errors.go (LexError,
	// TypeError, ...), which is a different axis entirely.
	ErrKind Kind = "Error"
)

// Object is implemented by every runtime entity, "Value" or not.
type Object interface {
	Inspect() string
	IsTruthy() bool
	TypeName() Kind
}

// Value is the narrower capability tier: Integer, Decimal, String,
// Boolean, Nil, List, Dict, Set, Range. These are hashable and
// structurally comparable, so they may be used as Dict/Set keys and
// compared with `==`/`!=`.
type Value interface {
	Object
	Hash() uint64
	Equals(other Value) bool
}

// ControlFlow marks the transient, internal-only carriers that propagate
// out of evaluation instead of being ordinary values: ReturnValue,
// BreakValue, TailCallRequest, and *Error. Spec §4.6: "Tail-call requests
// are never returned to user code; they are strictly internal to the
// trampoline."
type ControlFlow interface {
	Object
	controlFlow()
}
