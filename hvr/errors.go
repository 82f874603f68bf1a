package hvr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid hvr client configuration")
	// ErrConnection indicates the hub server could not be reached
	ErrConnection = errors.New("hvr connection failed")
	// ErrLogin indicates the authentication endpoint rejected the login
	ErrLogin = errors.New("hvr login failed")
	// ErrREST indicates a non-success response from an API endpoint
	ErrREST = errors.New("hvr request failed")
)

// Kind classifies an Error.
type Kind int

const (
	// KindConnection is a transport-level failure; no response was received.
	KindConnection Kind = iota + 1
	// KindLogin is a non-success response from an authentication endpoint.
	KindLogin
	// KindREST is a non-success response from any other endpoint.
	KindREST
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindLogin:
		return "login"
	case KindREST:
		return "rest"
	default:
		return "unknown"
	}
}

// diagnosticPrefix marks server error texts of the form "F_JX0A09: message".
const diagnosticPrefix = "F_"

// Error is returned for every failed call against the hub server.
type Error struct {
	Kind       Kind
	StatusCode int
	// Body is the raw response text, unmodified.
	Body string
	// Code is the server diagnostic code (e.g. F_JX0A09), empty when the
	// body does not carry one.
	Code    string
	Message string
	Err     error
}

func newResponseError(kind Kind, statusCode int, body string) *Error {
	code, message := splitDiagnostic(body)
	return &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Body:       body,
		Code:       code,
		Message:    message,
	}
}

func newConnectionError(message string, err error) *Error {
	return &Error{
		Kind:    KindConnection,
		Message: message + ": " + err.Error(),
		Err:     err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Kind == KindConnection {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Body)
}

// Unwrap returns the transport error behind a connection failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConnection:
		return e.Kind == KindConnection
	case ErrLogin:
		return e.Kind == KindLogin
	case ErrREST:
		return e.Kind == KindREST
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// splitDiagnostic separates "F_JX0A09: message" into its code and message.
// Texts without the prefix are returned whole as the message.
func splitDiagnostic(text string) (code, message string) {
	if !strings.HasPrefix(text, diagnosticPrefix) {
		return "", text
	}
	code = text[:min(8, len(text))]
	if len(text) > 10 {
		message = text[10:]
	}
	return code, message
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
