package flight

import (
	"errors"
	"fmt"
)

// Lookup outcomes other than success. Callers match them with errors.Is.
var (
	ErrNotFound = errors.New("flight not found")
	ErrInternal = errors.New("internal error")
)

// UpstreamError is the error envelope the provider returns in place of data,
// e.g. for an invalid access key or an exhausted quota.
type UpstreamError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *UpstreamError) Error() string {
	if e.Code == "" {
		return "upstream error: " + e.Message
	}
	return fmt.Sprintf("upstream error %s: %s", e.Code, e.Message)
}

// missingFieldError reports a required upstream key that was absent, or whose
// parent object was absent or null.
type missingFieldError struct {
	path string
}

func (e *missingFieldError) Error() string {
	return "missing required field " + e.path
}
