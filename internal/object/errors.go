package object

import "fmt"

// ErrorKind is a closed taxonomy: every runtime failure is tagged with
// exactly one of these, so callers can branch on the kind instead of
// parsing the message.
type ErrorKind string

const (
	LexErrorKind   ErrorKind = "LexError"
	ParseErrorKind ErrorKind = "ParseError"
	NameErrorKind  ErrorKind = "NameError"
	TypeErrorKind  ErrorKind = "TypeError"
	ArityErrorKind ErrorKind = "ArityError"
	DomainErrorKind ErrorKind = "DomainError"
	IOErrorKind    ErrorKind = "IOError"
)

// Error is a runtime error value; it satisfies both Object (so it prints
// like any other value in diagnostics) and ControlFlow (so it propagates
// out of Eval without being handed to ordinary expression evaluation).
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *Error) Inspect() string {
	return fmt.Sprintf("%s: %s at %d:%d", e.Kind, e.Message, e.Line, e.Column)
}
func (e *Error) IsTruthy() bool  { return false }
func (e *Error) TypeName() Kind  { return ErrKind }
func (e *Error) controlFlow()    {}

func newError(kind ErrorKind, msg string, line, col int) *Error {
	return &Error{Kind: kind, Message: msg, Line: line, Column: col}
}

func NewLexError(msg string, line, col int) *Error    { return newError(LexErrorKind, msg, line, col) }
func NewParseError(msg string, line, col int) *Error  { return newError(ParseErrorKind, msg, line, col) }
func NewNameError(msg string, line, col int) *Error   { return newError(NameErrorKind, msg, line, col) }
func NewTypeError(msg string, line, col int) *Error   { return newError(TypeErrorKind, msg, line, col) }
func NewArityError(msg string, line, col int) *Error  { return newError(ArityErrorKind, msg, line, col) }
func NewDomainError(msg string, line, col int) *Error { return newError(DomainErrorKind, msg, line, col) }
func NewIOError(msg string, line, col int) *Error     { return newError(IOErrorKind, msg, line, col) }

// ReturnValue carries a `return` statement's value up to the nearest
// function call boundary.
type ReturnValue struct {
	Val Object
}

func (r *ReturnValue) Inspect() string { return r.Val.Inspect() }
func (r *ReturnValue) IsTruthy() bool  { return r.Val.IsTruthy() }
func (r *ReturnValue) TypeName() Kind  { return r.Val.TypeName() }
func (r *ReturnValue) controlFlow()    {}

// BreakValue carries a `break` statement's value out of a callback, up
// to the iterating builtin (fold, reduce, each) that absorbs it.
type BreakValue struct {
	Val Object
}

func (b *BreakValue) Inspect() string { return b.Val.Inspect() }
func (b *BreakValue) IsTruthy() bool  { return b.Val.IsTruthy() }
func (b *BreakValue) TypeName() Kind  { return b.Val.TypeName() }
func (b *BreakValue) controlFlow()    {}

// TailCallRequest never reaches user code: the evaluator's callFunction
// trampoline loop consumes it directly to re-enter a function body
// without growing the Go call stack.
type TailCallRequest struct {
	Fn   *Function
	Args []Object
}

func (t *TailCallRequest) Inspect() string { return "<tail-call>" }
func (t *TailCallRequest) IsTruthy() bool  { return true }
func (t *TailCallRequest) TypeName() Kind  { return FunctionKind }
func (t *TailCallRequest) controlFlow()    {}
