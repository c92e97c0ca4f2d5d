package apperrors

import "errors"

// Kind classifies an error for the transport layer. Services return Kind-ed
// errors; handlers map them to status codes without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindBadRequest
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func NotFound(msg string) error {
	return &Error{kind: KindNotFound, msg: msg}
}

func Forbidden(msg string) error {
	return &Error{kind: KindForbidden, msg: msg}
}

func BadRequest(msg string) error {
	return &Error{kind: KindBadRequest, msg: msg}
}

func Internal(msg string, err error) error {
	return &Error{kind: KindInternal, msg: msg, err: err}
}

// KindOf returns the classification of err, defaulting to KindInternal for
// errors produced outside the services.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

func IsNotFound(err error) bool   { return err != nil && KindOf(err) == KindNotFound }
func IsForbidden(err error) bool  { return err != nil && KindOf(err) == KindForbidden }
func IsBadRequest(err error) bool { return err != nil && KindOf(err) == KindBadRequest }
