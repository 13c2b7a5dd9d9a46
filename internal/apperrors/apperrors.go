// Package apperrors defines the error taxonomy shared by the repository,
// service, and HTTP layers. Domain errors (not found, conflict, unauthorized)
// are raised by services; repositories only ever produce storage errors.
package apperrors

import "fmt"

type Kind int

const (
	// KindNotFound marks an entity absent by id or filter.
	KindNotFound Kind = iota + 1
	// KindConflict marks a uniqueness violation, e.g. a duplicate email.
	KindConflict
	// KindUnauthorized marks bad credentials or a missing token.
	KindUnauthorized
	// KindValidation marks a malformed input payload.
	KindValidation
	// KindConfiguration marks a wiring error, e.g. container access before boot.
	KindConfiguration
	// KindStorage marks an unexpected backend failure.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a kind-tagged error, optionally wrapping a cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality so callers can match with errors.Is against the
// kind sentinels below without caring about the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

// Kind sentinels for errors.Is matching.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrConflict      = &Error{Kind: KindConflict}
	ErrUnauthorized  = &Error{Kind: KindUnauthorized}
	ErrValidation    = &Error{Kind: KindValidation}
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrStorage       = &Error{Kind: KindStorage}
)

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Validation(err error, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...), Err: err}
}

func Configuration(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

func Storage(err error, format string, args ...any) *Error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...), Err: err}
}
