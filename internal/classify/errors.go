package classify

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can wrap to mark well-known failure families.
var (
	// ErrInvalidState indicates an object was used in a state it does not support
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument indicates a caller passed an unacceptable argument
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAssertion indicates a failed internal assertion
	ErrAssertion = errors.New("assertion failed")
)

// TransportKind is the sub-classification a structured transport error carries.
type TransportKind int

const (
	// TransportUnknown represents an unclassified transport failure
	TransportUnknown TransportKind = iota
	// TransportConnectionTimeout represents a timeout while establishing a connection
	TransportConnectionTimeout
	// TransportSendTimeout represents a timeout while sending the request
	TransportSendTimeout
	// TransportReceiveTimeout represents a timeout while reading the response
	TransportReceiveTimeout
	// TransportConnectionError represents a connection-level failure
	TransportConnectionError
	// TransportBadResponse represents a response with an error status
	TransportBadResponse
	// TransportCancelled represents an explicitly cancelled request
	TransportCancelled
)

// String returns the string representation of the TransportKind.
func (k TransportKind) String() string {
	switch k {
	case TransportConnectionTimeout:
		return "connection_timeout"
	case TransportSendTimeout:
		return "send_timeout"
	case TransportReceiveTimeout:
		return "receive_timeout"
	case TransportConnectionError:
		return "connection_error"
	case TransportBadResponse:
		return "bad_response"
	case TransportCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TransportError is a structured HTTP/client transport failure. Client code
// wraps request errors into it so the classifier can use the sub-kind and
// status code instead of guessing from text.
type TransportError struct {
	Kind       TransportKind
	StatusCode int
	URL        string
	Err        error
}

// Error implements the error interface. The TransportError prefix doubles as
// the HTTP-client marker the fatal heuristic recognizes.
func (e *TransportError) Error() string {
	switch {
	case e.Kind == TransportBadResponse:
		return fmt.Sprintf("TransportError(%s): status %d for %s", e.Kind, e.StatusCode, e.URL)
	case e.Err != nil:
		return fmt.Sprintf("TransportError(%s): %s: %v", e.Kind, e.URL, e.Err)
	default:
		return fmt.Sprintf("TransportError(%s): %s", e.Kind, e.URL)
	}
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the error is one of the timeout sub-kinds.
func (e *TransportError) Timeout() bool {
	switch e.Kind {
	case TransportConnectionTimeout, TransportSendTimeout, TransportReceiveTimeout:
		return true
	}
	return false
}

// IntegrationError is a host-bridge failure: a call into an external
// integration either failed or had no registered handler.
type IntegrationError struct {
	Handler string
	Missing bool
	Err     error
}

// Error implements the error interface.
func (e *IntegrationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("integration: no handler registered for %q", e.Handler)
	}
	if e.Err != nil {
		return fmt.Sprintf("integration: %s: %v", e.Handler, e.Err)
	}
	return fmt.Sprintf("integration: %s failed", e.Handler)
}

// Unwrap returns the underlying cause.
func (e *IntegrationError) Unwrap() error { return e.Err }
