// Package errors provides standardized error handling for fexplorer.
// It defines the error kinds raised while browsing, typed errors carrying
// the offending path, parameter or selection token, and helpers for
// consistent error creation, wrapping and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	DirectoryUnreadable
	InvalidPath
	// Selection error kinds
	InvalidSelection
	// Collaborator error kinds
	RenderFailed
	DisplayFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// String returns a short name for the kind, used as a log field.
func (k ErrorKind) String() string {
	switch k {
	case DirectoryUnreadable:
		return "directory_unreadable"
	case InvalidPath:
		return "invalid_path"
	case InvalidSelection:
		return "invalid_selection"
	case RenderFailed:
		return "render_failed"
	case DisplayFailed:
		return "display_failed"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	default:
		return "unknown"
	}
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to reading the filesystem
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// SelectionError represents a display result that could not be turned into
// a path.
type SelectionError struct {
	ApplicationError
	token string
}

// NewSelectionError creates a new selection error
func NewSelectionError(msg string, token string, err error) *SelectionError {
	return &SelectionError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidSelection,
		},
		token: token,
	}
}

// Error returns the selection error message
func (e *SelectionError) Error() string {
	if e.token != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %q: %v", e.msg, e.token, e.err)
		}
		return fmt.Sprintf("%s: %q", e.msg, e.token)
	}
	return e.ApplicationError.Error()
}

// Token returns the raw selection associated with the error
func (e *SelectionError) Token() string {
	return e.token
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// WrapKind wraps an existing error and tags it with kind.
func WrapKind(err error, kind ErrorKind, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: kind,
	}
}

// KindOf returns the kind of the first application error in err's chain,
// or Unknown.
func KindOf(err error) ErrorKind {
	for err != nil {
		switch e := err.(type) {
		case *FileError:
			return e.Kind()
		case *ConfigError:
			return e.Kind()
		case *SelectionError:
			return e.Kind()
		case *ApplicationError:
			if e.Kind() != Unknown {
				return e.Kind()
			}
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsDirectoryUnreadable checks if the error is a directory read failure
func IsDirectoryUnreadable(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == DirectoryUnreadable
	}
	return false
}

// IsInvalidSelection checks if the error is an invalid selection error
func IsInvalidSelection(err error) bool {
	var selErr *SelectionError
	return errors.As(err, &selErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
