package domain

import (
	"errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserExists            = errors.New("user already exists")
	ErrUserInUse             = errors.New("user is referenced by clinical data")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	// ErrUnknownReference means a patient or doctor id points at no row.
	ErrUnknownReference = errors.New("referenced row does not exist")
)

// Kind classifies a failure. Every kind maps to exactly one HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindInvalidInput
	KindNotFound
	KindConflict
	KindUpstream
)

var kindNames = map[Kind]string{
	KindInternal:        "internal",
	KindUnauthenticated: "unauthenticated",
	KindForbidden:       "forbidden",
	KindInvalidInput:    "invalid_input",
	KindNotFound:        "not_found",
	KindConflict:        "conflict",
	KindUpstream:        "upstream_failure",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "internal"
}

// HTTPStatus returns the status code for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError describes one failed rule. Order in a list follows rule
// evaluation order.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error is the single error type raised by pipeline stages and services.
// Message is safe to show to clients; cause is not.
type Error struct {
	Kind    Kind
	Message string
	Errors  []ValidationError
	Details any
	cause   error
	stack   pkgerrors.StackTrace
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) HTTPStatus() int { return e.Kind.HTTPStatus() }

// StackTrace reports where the error was raised.
func (e *Error) StackTrace() pkgerrors.StackTrace { return e.stack }

// WithDetails attaches a diagnostic payload, rendered in development only.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func newError(kind Kind, msg string, cause error) *Error {
	var st pkgerrors.StackTrace
	if t, ok := pkgerrors.New(msg).(stackTracer); ok {
		st = t.StackTrace()
		// drop newError and the exported constructor
		if len(st) > 2 {
			st = st[2:]
		}
	}
	return &Error{Kind: kind, Message: msg, cause: cause, stack: st}
}

func Unauthenticated(msg string) *Error { return newError(KindUnauthenticated, msg, nil) }

func Forbidden(msg string) *Error { return newError(KindForbidden, msg, nil) }

func NotFound(msg string) *Error { return newError(KindNotFound, msg, nil) }

func Conflict(msg string, cause error) *Error { return newError(KindConflict, msg, cause) }

// InvalidInput carries the full list of violated rules.
func InvalidInput(msg string, errs []ValidationError) *Error {
	e := newError(KindInvalidInput, msg, nil)
	e.Errors = errs
	return e
}

// Upstream wraps a failure reported by the data store or the auth provider.
func Upstream(msg string, cause error) *Error { return newError(KindUpstream, msg, cause) }

// Internal wraps an unanticipated failure.
func Internal(msg string, cause error) *Error { return newError(KindInternal, msg, cause) }

// KindOf returns the kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
