// Package errors provides a lightweight structured error type
// (TexbuildError) for category-based classification and exit-code mapping
// in the CLI.
package errors

import "fmt"

// ErrorCategory classifies a texbuild error for reporting.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build and processing errors
	CategoryResolve    ErrorCategory = "resolve"
	CategorySpawn      ErrorCategory = "spawn"
	CategoryEngine     ErrorCategory = "engine"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"
	SeverityError   ErrorSeverity = "error"
	SeverityWarning ErrorSeverity = "warning"
)

// TexbuildError is a structured error with category and context.
type TexbuildError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for TexbuildError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *TexbuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping.
func (e *TexbuildError) Unwrap() error { return e.Cause }

// WithContext adds context information to the error.
func (e *TexbuildError) WithContext(key string, value any) *TexbuildError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new TexbuildError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *TexbuildError {
	return &TexbuildError{Category: category, Severity: severity, Message: message}
}

// Wrap creates a TexbuildError wrapping an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *TexbuildError {
	return &TexbuildError{Category: category, Severity: severity, Message: message, Cause: err}
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	if te, ok := err.(*TexbuildError); ok {
		return te.Category == category
	}
	return false
}
