package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is a failed download of a remote document.
type HTTPError struct {
	Source     string
	URL        string
	StatusCode int // zero when no response arrived
	Status     string
	Err        error
}

func (e *HTTPError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: GET %s: %s", e.Source, e.URL, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: GET %s: %v", e.Source, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: GET %s failed", e.Source, e.URL)
	}
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Is maps 404 to ErrNotFound and 429 to ErrRateLimited.
func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// NewHTTPError records a non-200 response.
func NewHTTPError(source, url string, statusCode int) *HTTPError {
	return &HTTPError{
		Source:     source,
		URL:        url,
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
	}
}

// UnavailableError is a source with neither a cached copy nor a successful
// download.
type UnavailableError struct {
	Source   string
	Resource string
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: cannot load %s", e.Source, e.Resource)
	}
	return fmt.Sprintf("%s: cannot load %s: %v", e.Source, e.Resource, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewUnavailableError reports that resource could not be loaded from source.
func NewUnavailableError(source, resource string, err error) *UnavailableError {
	return &UnavailableError{Source: source, Resource: resource, Err: err}
}
