// Package errors classifies the failures of the NYC-DB schema tool.
//
// A failure belongs to one of a few classes: a source could not be loaded,
// metadata contradicts itself, a declared name does not exist, or input is
// malformed. Each class has a sentinel that the typed errors match through
// errors.Is, so callers branch on the class and still reach the details
// with errors.As.
package errors

import (
	"errors"
)

// Re-exported so callers only need one errors import.
var (
	New  = errors.New
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Failure classes.
var (
	// ErrNotFound marks a declared table, dataset or document that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalid marks input outside the accepted set of values.
	ErrInvalid = errors.New("invalid value")

	// ErrSourceUnavailable marks a metadata source that could be loaded
	// neither from the data directory nor from the network.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInconsistent marks catalog facts that contradict each other.
	ErrInconsistent = errors.New("inconsistent metadata")

	// ErrRateLimited marks a remote server refusing requests for now.
	ErrRateLimited = errors.New("rate limited")

	// ErrCanceled marks work stopped by context cancellation.
	ErrCanceled = errors.New("canceled")
)

// IsNotFound reports whether err is in the not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err is an invalid value.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsSourceUnavailable reports whether a source could not be loaded.
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsInconsistent reports whether err is an inconsistency.
func IsInconsistent(err error) bool {
	return errors.Is(err, ErrInconsistent)
}

// IsRateLimited reports whether a remote server throttled the request.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsCanceled reports whether err comes from cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
