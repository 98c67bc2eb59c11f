package serviceerrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrContextCanceled  = errors.New("context canceled")
	ErrDeadlineExceeded = errors.New("deadline exceeded")

	// ErrUnavailable marks transport failures and non-2xx responses.
	ErrUnavailable  = errors.New("data unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyResult marks a 2xx response without the payload the operation requires.
	ErrEmptyResult = errors.New("empty result")

	ErrInvalidInput = errors.New("invalid input")
)

// StatusError is a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return true
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
	}
	return false
}

// BusinessError is shown to the user as is.
type BusinessError struct {
	Message string
	Cause   error
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Cause
}

func (e *BusinessError) Is(target error) bool {
	return target == ErrEmptyResult
}

func NewBusinessError(message string, cause error) *BusinessError {
	return &BusinessError{Message: message, Cause: cause}
}

type Kind int

const (
	KindNone Kind = iota
	KindUnavailable
	KindBusiness
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnavailable:
		return "unavailable"
	case KindBusiness:
		return "business"
	case KindInvalidInput:
		return "invalid_input"
	}
	return "unknown"
}

// KindOf classifies err. A business error wins over the transport error it wraps.
func KindOf(err error) Kind {
	var be *BusinessError
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &be):
		return KindBusiness
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindUnavailable
	}
}

// UserMessage returns the text to surface for err, or "" when the
// failure should render as an empty state instead.
func UserMessage(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}
