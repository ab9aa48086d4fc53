package client

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrTokenRequired is returned when no bearer access token is available.
	ErrTokenRequired = errors.New("bearer access token is required")
)

// ErrorClass represents a classification of Graph client failures.
type ErrorClass string

const (
	// ErrorClassConfig represents invalid client construction input.
	ErrorClassConfig ErrorClass = "config"

	// ErrorClassAuth represents a missing or empty bearer token at fetch entry.
	ErrorClassAuth ErrorClass = "auth"

	// ErrorClassTransport represents a non-success HTTP status, a network
	// failure, or a cancelled request.
	ErrorClassTransport ErrorClass = "transport"

	// ErrorClassParse represents a response body that does not conform to
	// the expected structure.
	ErrorClassParse ErrorClass = "parse"
)

// GraphError represents a Graph API failure with additional context.
// StatusCode and Body are populated for transport errors raised on a
// non-success status; Body also carries the raw response for parse errors.
type GraphError struct {
	Class      ErrorClass
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("graph %s error (status %d): %s: %v",
			e.Class, e.StatusCode, e.Body, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("graph %s error (status %d): %s",
			e.Class, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("graph %s error: %v", e.Class, e.Err)
	default:
		return fmt.Sprintf("graph %s error", e.Class)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *GraphError) Unwrap() error {
	return e.Err
}

// ClassOf returns the classification of err, or the empty class when err is
// not a GraphError.
func ClassOf(err error) ErrorClass {
	var ge *GraphError
	if errors.As(err, &ge) {
		return ge.Class
	}
	return ""
}
