package errors

import "fmt"

// ConfigError is an unusable setting.
type ConfigError struct {
	Setting string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Setting == "" {
		return "config: " + e.Message
	}
	return fmt.Sprintf("config: %s: %s", e.Setting, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError reports a problem with setting.
func NewConfigError(setting, message string, err error) *ConfigError {
	return &ConfigError{Setting: setting, Message: message, Err: err}
}

// IOError is a failed filesystem or stream operation.
type IOError struct {
	Op   string // "read", "write", "create", "move"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps err as an IOError. A nil err stays nil.
func WrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// ResourceError is a failed operation on a named resource such as the
// catalog connection.
type ResourceError struct {
	Op       string // "open", "query", "load", "close", "create"
	Resource string
	ID       string
	Err      error
}

func (e *ResourceError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// WrapResource wraps err as a ResourceError. A nil err stays nil.
func WrapResource(op, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return &ResourceError{Op: op, Resource: resource, ID: id, Err: err}
}
