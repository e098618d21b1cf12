package errs

import cr "github.com/cockroachdb/errors"

// Error kinds shared by every layer. Specific errors are created with NewKind
// so that callers can classify them with Is(err, ErrValidation) and friends.
var (
	ErrValidation   = New("validation error")
	ErrLocked       = New("resource locked")
	ErrConflict     = New("conflicting change")
	ErrPrecondition = New("precondition failed")
	ErrNotFound     = New("not found")
	ErrForbidden    = New("operation not permitted")
)

type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindLocked       Kind = "LOCKED"
	KindConflict     Kind = "CONFLICT"
	KindPrecondition Kind = "PRECONDITION"
	KindNotFound     Kind = "NOT_FOUND"
	KindForbidden    Kind = "FORBIDDEN"
	KindInternal     Kind = "INTERNAL"
)

// order matters: the first matching kind wins
var kindSentinels = []struct {
	kind     Kind
	sentinel error
}{
	{KindForbidden, ErrForbidden},
	{KindNotFound, ErrNotFound},
	{KindLocked, ErrLocked},
	{KindConflict, ErrConflict},
	{KindPrecondition, ErrPrecondition},
	{KindValidation, ErrValidation},
}

// kindError is a specific sentinel that also matches its kind. Each value
// is unique by identity and message, so two sentinels of one kind never match
// each other.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string        { return e.msg }
func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind returns a new sentinel error of the given kind.
func NewKind(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, ks := range kindSentinels {
		if Is(err, ks.sentinel) {
			return ks.kind
		}
	}
	return KindInternal
}

// Reason returns the message of the innermost specific sentinel in err's
// chain, or "" when there is none.
func Reason(err error) string {
	for c := err; c != nil; c = cr.UnwrapOnce(c) {
		if k, ok := c.(*kindError); ok {
			return k.msg
		}
	}
	return ""
}
