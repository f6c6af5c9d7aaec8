// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a physically meaningless input value
	TypeInput Type = "INPUT_ERROR"

	// TypeDecode indicates a document that could not be decoded
	TypeDecode Type = "DECODE_ERROR"

	// TypeUnknownVariant indicates an unrecognized enumerated label
	TypeUnknownVariant Type = "UNKNOWN_VARIANT"

	// TypeParsing indicates a parsing error in an auxiliary file
	TypeParsing Type = "PARSING_ERROR"

	// TypeEstimationUnavailable indicates a gravity that is neither measured nor estimable
	TypeEstimationUnavailable Type = "ESTIMATION_UNAVAILABLE"

	// TypeInvalidBoilDuration indicates a boil duration that makes interpolation undefined
	TypeInvalidBoilDuration Type = "INVALID_BOIL_DURATION"

	// TypeMissingBitternessMethod indicates a recipe without a resolved IBU method
	TypeMissingBitternessMethod Type = "MISSING_BITTERNESS_METHOD"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// TypeOf returns the type of the outermost *Error in err's chain.
func TypeOf(err error) (Type, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type, true
	}
	return "", false
}

// IsType checks if an error, or anything it wraps, is of a specific type
func IsType(err error, t Type) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Type == t {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsUnderspecified reports whether err means the recipe lacks data that a
// measurement could supply, as opposed to the recipe being malformed.
func IsUnderspecified(err error) bool {
	return IsType(err, TypeEstimationUnavailable)
}

// IsMalformed reports whether err means the recipe itself is unusable.
func IsMalformed(err error) bool {
	for _, t := range []Type{
		TypeInvalidBoilDuration,
		TypeMissingBitternessMethod,
		TypeInput,
		TypeDecode,
		TypeUnknownVariant,
	} {
		if IsType(err, t) {
			return true
		}
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Decode creates a decode error
func Decode(message string, cause error) *Error {
	return Wrap(TypeDecode, message, cause)
}

// UnknownVariant creates an error for a label outside a closed set
func UnknownVariant(kind, label string) *Error {
	return Newf(TypeUnknownVariant, "unknown %s %q", kind, label).WithContext("label", label)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// EstimationUnavailable creates an error for a gravity that cannot be derived
func EstimationUnavailable(quantity, reason string) *Error {
	return Newf(TypeEstimationUnavailable, "%s not measured and cannot be estimated: %s", quantity, reason).
		WithContext("quantity", quantity)
}

// InvalidBoilDuration creates an error for a degenerate boil
func InvalidBoilDuration(minutes float64) *Error {
	return Newf(TypeInvalidBoilDuration, "boil duration must be positive, got %g min", minutes).
		WithContext("boil_time", minutes)
}

// MissingBitternessMethod creates an error for an unresolved IBU method
func MissingBitternessMethod() *Error {
	return New(TypeMissingBitternessMethod, "recipe has no bitterness calculation method")
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
