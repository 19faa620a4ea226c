package solver

import "fmt"

// Kind classifies a solver failure.
type Kind int

const (
	KindInvalidTarget Kind = iota + 1
	KindInvalidNumbers
	KindInternalInvariant
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTarget:
		return "invalid target"
	case KindInvalidNumbers:
		return "invalid numbers"
	case KindInternalInvariant:
		return "internal invariant violated"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by Solve. Input errors are reported before any search
// starts; KindInternalInvariant means the search itself is broken.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrInvalidTarget)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidTarget     = &Error{Kind: KindInvalidTarget}
	ErrInvalidNumbers    = &Error{Kind: KindInvalidNumbers}
	ErrInternalInvariant = &Error{Kind: KindInternalInvariant}
)

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
