package errors

import "errors"

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsBlockedError reports whether err means the service refused the prompt.
func IsBlockedError(err error) bool {
	var blockedErr *BlockedError
	return errors.As(err, &blockedErr)
}

// GetHTTPStatus extracts the HTTP status code from an APIError, or 0.
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint an error occurred against, or "".
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	return ""
}
