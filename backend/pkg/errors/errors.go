package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeNotFound represents a referenced entity that does not exist
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation represents malformed caller input
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeUpstream represents graph gateway failures (network, timeout, bad query)
	ErrorTypeUpstream ErrorType = "upstream"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeContext represents context cancellation/timeout errors
	ErrorTypeContext ErrorType = "context"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Not Found Errors

// ErrFoodNotFound is returned when a food cannot be found or has nothing to compare against
type ErrFoodNotFound struct {
	*BaseError
	FoodID string
}

func NewFoodNotFound(foodID string) *ErrFoodNotFound {
	return &ErrFoodNotFound{
		BaseError: NewBaseError(ErrorTypeNotFound, fmt.Sprintf("food not found: %s", foodID), nil),
		FoodID:    foodID,
	}
}

// ErrUserNotFound is returned when a user is not found in the graph
type ErrUserNotFound struct {
	*BaseError
	UserID string
}

func NewUserNotFound(userID string) *ErrUserNotFound {
	return &ErrUserNotFound{
		BaseError: NewBaseError(ErrorTypeNotFound, fmt.Sprintf("user not found: %s", userID), nil),
		UserID:    userID,
	}
}

// Validation Errors

// ErrValidationFailed is returned when caller input is rejected before any query is issued
type ErrValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewValidationFailed(field, reason string) *ErrValidationFailed {
	return &ErrValidationFailed{
		BaseError: NewBaseError(ErrorTypeValidation, fmt.Sprintf("invalid %s: %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// Upstream Errors

// ErrGraphConnectionFailed is returned when the Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeUpstream, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrUpstreamQueryFailed is returned when a graph query fails
type ErrUpstreamQueryFailed struct {
	*BaseError
	Query string
}

func NewUpstreamQueryFailed(query string, err error) *ErrUpstreamQueryFailed {
	return &ErrUpstreamQueryFailed{
		BaseError: NewBaseError(ErrorTypeUpstream, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// Context Errors

// ErrContextTimeout is returned when context times out
type ErrContextTimeout struct {
	*BaseError
	Operation string
	Timeout   time.Duration
}

func NewContextTimeout(operation string, timeout time.Duration) *ErrContextTimeout {
	return &ErrContextTimeout{
		BaseError: NewBaseError(ErrorTypeContext, fmt.Sprintf("context timeout: %s (timeout: %v)", operation, timeout), nil),
		Operation: operation,
		Timeout:   timeout,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// typed is satisfied by every error that embeds *BaseError
type typed interface {
	errorType() ErrorType
}

func (e *BaseError) errorType() ErrorType {
	return e.Type
}

func (e *BaseError) message() string {
	return e.Message
}

// Message returns the message of the first typed error in the chain without the type prefix
// or wrapped cause, suitable for API responses. It returns "" when no typed error is found.
func Message(err error) string {
	for err != nil {
		if m, ok := err.(interface{ message() string }); ok {
			return m.message()
		}
		err = stderrors.Unwrap(err)
	}
	return ""
}

// IsErrorType checks if an error, or anything it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if t, ok := err.(typed); ok && t.errorType() == errType {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsNotFound reports whether err is a NotFound condition
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsValidation reports whether err is a ValidationFailure
func IsValidation(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// IsUpstream reports whether err came from the graph gateway
func IsUpstream(err error) bool {
	return IsErrorType(err, ErrorTypeUpstream) || IsErrorType(err, ErrorTypeContext)
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	// Bad input and missing entities never succeed on retry
	if IsValidation(err) || IsNotFound(err) {
		return false
	}
	return IsUpstream(err)
}
