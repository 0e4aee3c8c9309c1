// Package errors provides standardized error handling for the scour
// application. It defines common error kinds and helper functions for
// consistent error creation, wrapping, and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
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
	// Script error kinds
	ScriptNotLoaded
	ScriptParseFailed
	ScriptRunFailed
	ProtectedPath
	// Save error kinds
	UnsupportedFormat
	SaveFailed
	// Config error kinds
	InvalidConfig
)

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

// ScriptError represents errors related to loading, parsing or running
// a cleanup script
type ScriptError struct {
	ApplicationError
	path string
}

// NewScriptError creates a new script error
func NewScriptError(msg string, path string, kind ErrorKind, err error) *ScriptError {
	return &ScriptError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the script error message
func (e *ScriptError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the script path associated with the error
func (e *ScriptError) Path() string {
	return e.path
}

// SaveError represents errors raised while serializing a script to disk
type SaveError struct {
	ApplicationError
	path   string
	format string
}

// NewSaveError creates a new save error
func NewSaveError(msg string, path, format string, kind ErrorKind, err error) *SaveError {
	return &SaveError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path:   path,
		format: format,
	}
}

// Error returns the save error message
func (e *SaveError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s (%s): %v", e.msg, e.path, e.format, e.err)
		}
		return fmt.Sprintf("%s: %s (%s)", e.msg, e.path, e.format)
	}
	return e.ApplicationError.Error()
}

// Format returns the requested output format associated with the error
func (e *SaveError) Format() string {
	return e.format
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidConfig,
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

func kindOf(err error) ErrorKind {
	type kinder interface {
		Kind() ErrorKind
	}
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

// IsUnsupportedFormat checks if the error is an unsupported save format error
func IsUnsupportedFormat(err error) bool {
	return kindOf(err) == UnsupportedFormat
}

// IsScriptNotLoaded checks if the error means no real script is loaded yet
func IsScriptNotLoaded(err error) bool {
	return kindOf(err) == ScriptNotLoaded
}

// IsProtectedPath checks if the error is a protected path violation
func IsProtectedPath(err error) bool {
	return kindOf(err) == ProtectedPath
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return kindOf(err) == InvalidConfig
}
