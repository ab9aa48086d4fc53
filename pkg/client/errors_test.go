package client

import (
	"errors"
	"testing"
)

func TestGraphError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GraphError
		expected string
	}{
		{
			name: "transport error with status and body",
			err: &GraphError{
				Class:      ErrorClassTransport,
				StatusCode: 403,
				Body:       `{"error":"Forbidden"}`,
			},
			expected: `graph transport error (status 403): {"error":"Forbidden"}`,
		},
		{
			name: "config error with sentinel",
			err: &GraphError{
				Class: ErrorClassConfig,
				Err:   ErrTokenRequired,
			},
			expected: "graph config error: bearer access token is required",
		},
		{
			name: "parse error with wrapped cause",
			err: &GraphError{
				Class: ErrorClassParse,
				Err:   errors.New("unexpected end of JSON input"),
			},
			expected: "graph parse error: unexpected end of JSON input",
		},
		{
			name:     "bare class",
			err:      &GraphError{Class: ErrorClassAuth},
			expected: "graph auth error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGraphError_Unwrap(t *testing.T) {
	err := &GraphError{Class: ErrorClassAuth, Err: ErrTokenRequired}

	if !errors.Is(err, ErrTokenRequired) {
		t.Error("errors.Is should match the wrapped sentinel")
	}

	var ge *GraphError
	if !errors.As(err, &ge) {
		t.Fatal("errors.As should match *GraphError")
	}
	if ge.Class != ErrorClassAuth {
		t.Errorf("Class = %q, want %q", ge.Class, ErrorClassAuth)
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{
			name:     "transport error",
			err:      &GraphError{Class: ErrorClassTransport, StatusCode: 500},
			expected: ErrorClassTransport,
		},
		{
			name:     "wrapped graph error",
			err:      errors.Join(errors.New("fetch following"), &GraphError{Class: ErrorClassParse}),
			expected: ErrorClassParse,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "",
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassOf(tt.err); got != tt.expected {
				t.Errorf("ClassOf() = %q, want %q", got, tt.expected)
			}
		})
	}
}
