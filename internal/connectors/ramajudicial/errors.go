package ramajudicial

import (
	"errors"
	"fmt"
)

// Reason identifies the transport-level sub-cause of a failed request.
// Callers mostly treat all of them as one failure kind; the sub-cause
// is kept for logging and diagnostics.
type Reason string

const (
	// ReasonTimeout means the request exceeded the client timeout.
	ReasonTimeout Reason = "timeout"

	// ReasonConnection means the connection could not be established
	// or was dropped.
	ReasonConnection Reason = "connection"

	// ReasonMalformed means the response body was not valid JSON.
	ReasonMalformed Reason = "malformed payload"
)

// APIError represents an HTTP-level error response from the upstream.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ramajudicial: API error %d (URL: %s)", e.StatusCode, e.URL)
}

// RequestError represents a failure below the HTTP layer or a payload
// that could not be decoded.
type RequestError struct {
	Reason Reason
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ramajudicial: %s (URL: %s): %v", e.Reason, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates the resource does not exist
// upstream (HTTP 404).
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsServerError checks if the error indicates an upstream 5xx.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}

// IsRateLimited checks if the error indicates HTTP 429. The client
// never retries these itself; pacing policy belongs to the operator.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 429
}

// IsTimeout checks if the error indicates a request timeout.
func IsTimeout(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Reason == ReasonTimeout
}

// IsConnectionFailure checks if the error indicates a failed connection.
func IsConnectionFailure(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Reason == ReasonConnection
}

// IsMalformedPayload checks if the error indicates undecodable JSON.
func IsMalformedPayload(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Reason == ReasonMalformed
}
