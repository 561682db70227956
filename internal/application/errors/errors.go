// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"
)

// Translation failure kinds. Match them with errors.Is.
var (
	ErrMissingRootElement   = errors.New("missing root element")
	ErrEmptyFormat          = errors.New("improper format")
	ErrUnknownProfile       = errors.New("unknown profile")
	ErrUnknownVerbosity     = errors.New("unknown verbosity")
	ErrWriteFailure         = errors.New("property write failed")
	ErrNumericFormatFailure = errors.New("numeric format failed")
)

// Kinds returns every translation failure kind.
func Kinds() []error {
	return []error{
		ErrMissingRootElement,
		ErrEmptyFormat,
		ErrUnknownProfile,
		ErrUnknownVerbosity,
		ErrWriteFailure,
		ErrNumericFormatFailure,
	}
}

// TranslationError reports why a logging configuration could not be applied.
type TranslationError struct {
	Kind    error  // One of the Err* kinds above
	Field   string // Element or setting involved, e.g. "profile"
	Value   string // Offending value, if any
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("failed to set security logging %s: %s: %v", e.Field, msg, e.Cause)
	}
	return fmt.Sprintf("failed to set security logging %s: %s", e.Field, msg)
}

// Is matches the error kind.
func (e *TranslationError) Is(target error) bool {
	return e.Kind == target
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// NewMissingRootElementError reports a file without the expected root element.
// cause carries the load error, if loading failed.
func NewMissingRootElementError(root string, cause error) *TranslationError {
	return &TranslationError{
		Kind:    ErrMissingRootElement,
		Field:   root,
		Message: fmt.Sprintf("logger xml file missing '%s'", root),
		Cause:   cause,
	}
}

// NewEmptyFormatError reports an element that is present but has no text.
func NewEmptyFormatError(tag string) *TranslationError {
	return &TranslationError{
		Kind:    ErrEmptyFormat,
		Field:   tag,
		Message: "improper format",
	}
}

// NewUnknownProfileError reports a profile name missing from the registry.
func NewUnknownProfileError(name string) *TranslationError {
	return &TranslationError{
		Kind:    ErrUnknownProfile,
		Field:   "profile",
		Value:   name,
		Message: fmt.Sprintf("%s is not a supported profile", name),
	}
}

// NewUnknownVerbosityError reports a verbosity name that has no level.
func NewUnknownVerbosityError(name string) *TranslationError {
	return &TranslationError{
		Kind:    ErrUnknownVerbosity,
		Field:   "verbosity",
		Value:   name,
		Message: fmt.Sprintf("%s is not a supported verbosity", name),
	}
}

// NewWriteFailureError reports a property the container refused to store.
func NewWriteFailureError(field string, cause error) *TranslationError {
	return &TranslationError{
		Kind:    ErrWriteFailure,
		Field:   field,
		Message: "property write rejected",
		Cause:   cause,
	}
}

// NewNumericFormatError reports a depth that could not be rendered as text.
func NewNumericFormatError(depth uint64) *TranslationError {
	return &TranslationError{
		Kind:    ErrNumericFormatFailure,
		Field:   "depth",
		Value:   fmt.Sprint(depth),
		Message: fmt.Sprintf("unable to convert %d to string", depth),
	}
}

// KindName returns a stable identifier for err's kind, or "" if err is not a
// translation error.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrMissingRootElement):
		return "MissingRootElement"
	case errors.Is(err, ErrEmptyFormat):
		return "EmptyFormat"
	case errors.Is(err, ErrUnknownProfile):
		return "UnknownProfile"
	case errors.Is(err, ErrUnknownVerbosity):
		return "UnknownVerbosity"
	case errors.Is(err, ErrWriteFailure):
		return "WriteFailure"
	case errors.Is(err, ErrNumericFormatFailure):
		return "NumericFormatFailure"
	default:
		return ""
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
