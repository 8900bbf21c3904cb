package jira

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-success response from the tracker's API.
// Message carries the remote-provided diagnostic payload when present,
// else the raw response body.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// errorBody is the tracker's standard error payload.
type errorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// newAPIError builds an APIError from a response body, preferring the
// structured diagnostic messages when the body parses as one.
func newAPIError(statusCode int, body []byte, url string) *APIError {
	msg := strings.TrimSpace(string(body))

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		var parts []string
		parts = append(parts, parsed.ErrorMessages...)
		for field, detail := range parsed.Errors {
			parts = append(parts, fmt.Sprintf("%s: %s", field, detail))
		}
		if len(parts) > 0 {
			msg = strings.Join(parts, "; ")
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    msg,
		URL:        url,
	}
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsNotFound checks if the error indicates the project or endpoint was
// not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}
