package wrapper

import "fmt"

// ErrorKind classifies wrapper errors.
type ErrorKind int

const (
	OutOfRange ErrorKind = iota + 1
	EmptyCollection
	AmbiguousOperation
	InvalidArgument
	Unsupported
	NotFound
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case EmptyCollection:
		return "empty collection"
	case AmbiguousOperation:
		return "ambiguous operation"
	case InvalidArgument:
		return "invalid argument"
	case Unsupported:
		return "unsupported"
	case NotFound:
		return "not found"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every wrapper operation. Op is the lowerCamel name
// of the failing operation and Index is only meaningful for OutOfRange.
type Error struct {
	Kind  ErrorKind
	Op    string
	Index int
	Msg   string

	cause error
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches any *Error of the same kind. A target that names an Op only
// matches errors raised by that op.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

func (e *Error) Unwrap() error {
	return e.cause
}

var (
	ErrOutOfRange         = &Error{Kind: OutOfRange, Msg: "index out of range"}
	ErrEmptyCollection    = &Error{Kind: EmptyCollection, Msg: "empty collection"}
	ErrAmbiguousOperation = &Error{Kind: AmbiguousOperation, Msg: "ambiguous operation"}
	ErrInvalidArgument    = &Error{Kind: InvalidArgument, Msg: "invalid argument"}
	ErrUnsupported        = &Error{Kind: Unsupported, Msg: "unsupported operation"}
	ErrNotFound           = &Error{Kind: NotFound, Msg: "not found"}
)

func outOfRange(index int) *Error {
	return &Error{Kind: OutOfRange, Op: "at", Index: index, Msg: fmt.Sprintf("no item exists at %d", index)}
}

func emptyCollection(op string) *Error {
	return &Error{Kind: EmptyCollection, Op: op, Msg: fmt.Sprintf("%s cannot be called on 0 items", op)}
}

func ambiguousOperation(op string) *Error {
	return &Error{
		Kind: AmbiguousOperation,
		Op:   op,
		Msg:  fmt.Sprintf("%s must be called on a single wrapper, use at(i) to access a wrapper", op),
	}
}

func invalidArgument(op, what string) *Error {
	return &Error{Kind: InvalidArgument, Op: op, Msg: fmt.Sprintf("wrapper.%s() must be passed %s", op, what)}
}

func unsupported(op string) *Error {
	return &Error{Kind: Unsupported, Op: op, Msg: fmt.Sprintf("wrapper.%s() can only be called on a Vue instance", op)}
}

func notFound(op string, sel Selector) *Error {
	return &Error{Kind: NotFound, Op: op, Msg: fmt.Sprintf("no element matches %s", sel)}
}

// because returns a copy of e that unwraps to cause and carries its text.
func (e *Error) because(cause error) *Error {
	c := *e
	c.cause = cause
	c.Msg = fmt.Sprintf("%s: %v", e.Msg, cause)
	return &c
}
