package errors

import "fmt"

// NotFoundError names something declared but absent, for example a table
// listed in a dataset's schema that the catalog does not have.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError reports that the kind called name does not exist.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// ValidationError is a value outside its accepted set.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid value: " + e.Message
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// NewValidationError reports that value is not acceptable for field.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// InconsistencyError is catalog metadata that contradicts itself, such as
// an array column whose element type cannot be resolved.
type InconsistencyError struct {
	Stage   string // "catalog" or "render"
	Table   string
	Column  string
	Message string
}

func (e *InconsistencyError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("%s inconsistency at %s.%s: %s", e.Stage, e.Table, e.Column, e.Message)
	case e.Table != "":
		return fmt.Sprintf("%s inconsistency at %s: %s", e.Stage, e.Table, e.Message)
	default:
		return fmt.Sprintf("%s inconsistency: %s", e.Stage, e.Message)
	}
}

func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}

// NewInconsistencyError reports an inconsistency found during stage.
func NewInconsistencyError(stage, table, column, message string) *InconsistencyError {
	return &InconsistencyError{Stage: stage, Table: table, Column: column, Message: message}
}

// ParseError is a malformed manifest or metadata document.
type ParseError struct {
	Format   string // "json" or "yaml"
	Document string
	Message  string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Document == "" {
		return fmt.Sprintf("malformed %s: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("%s: malformed %s: %s", e.Document, e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError reports a malformed document.
func NewParseError(format, document, message string, err error) *ParseError {
	return &ParseError{Format: format, Document: document, Message: message, Err: err}
}

// WrapParse wraps a decoder error as a ParseError. A nil err stays nil.
func WrapParse(format, document string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, document, err.Error(), err)
}
