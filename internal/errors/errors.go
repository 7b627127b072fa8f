// Package errors provides the error types for the Gemini API client.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNoAPIKey        = errors.New("no API key found: set GEMINI_API_KEY")
	ErrEmptyReply      = errors.New("model returned an empty reply")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrClientClosed    = errors.New("client is closed")
)

// APIError represents a non-200 answer from the generation endpoint.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NetworkError represents a transport-level failure before any response
// was received.
type NetworkError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(op, endpoint string, err error) *NetworkError {
	return &NetworkError{Op: op, Endpoint: endpoint, Err: err}
}

// ParseError represents a response the client could not make sense of.
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel.
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError.
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// BlockedError represents a prompt the service refused to answer.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	if e.Reason == "" {
		return "prompt blocked by the service"
	}
	return fmt.Sprintf("prompt blocked by the service: %s", e.Reason)
}

// NewBlockedError creates a new BlockedError.
func NewBlockedError(reason string) *BlockedError {
	return &BlockedError{Reason: reason}
}
