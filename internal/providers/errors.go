package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failed exchange with a provider: a non-2xx status, or a 2xx
// response whose body did not have the expected shape.
type APIError struct {
	StatusCode int
	// Body is the raw response body, when one was read.
	Body string
	Err  error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *APIError) Unwrap() error { return e.Err }

// ResponseBody returns the raw body carried by err, if any.
func ResponseBody(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body, true
	}
	return "", false
}
