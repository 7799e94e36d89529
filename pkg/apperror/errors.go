// Package apperror provides a structured way to handle solver errors with
// specific codes, severity levels, and additional details. It also includes
// utilities for converting to gRPC status errors, so the solver
// core can sit behind a gRPC or HTTP boundary without redefining its own
// error taxonomy at that layer.
package apperror

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode represents a specific solver error code.
type ErrorCode string

const (
	// Model validation - malformed or inconsistent input models.
	CodeInvalidModel      ErrorCode = "INVALID_MODEL"
	CodeEmptyModel        ErrorCode = "EMPTY_MODEL"
	CodeDimensionMismatch ErrorCode = "DIMENSION_MISMATCH"
	CodeInvalidBound      ErrorCode = "INVALID_BOUND"
	CodeNegativeSupply    ErrorCode = "NEGATIVE_SUPPLY"
	CodeNegativeDemand    ErrorCode = "NEGATIVE_DEMAND"
	CodeInvalidGraph      ErrorCode = "INVALID_GRAPH"
	CodeEmptyGraph        ErrorCode = "EMPTY_GRAPH"
	CodeInvalidSource     ErrorCode = "INVALID_SOURCE"
	CodeInvalidSink       ErrorCode = "INVALID_SINK"
	CodeDuplicateNode     ErrorCode = "DUPLICATE_NODE"
	CodeDanglingEdge      ErrorCode = "DANGLING_EDGE"
	CodeSelfLoop          ErrorCode = "SELF_LOOP"
	CodeNegativeCapacity  ErrorCode = "NEGATIVE_CAPACITY"
	CodeNegativeCost      ErrorCode = "NEGATIVE_COST"
	CodeSourceEqualsSink  ErrorCode = "SOURCE_EQUALS_SINK"
	CodeNegativeWeight    ErrorCode = "NEGATIVE_WEIGHT"

	// Connectivity.
	CodeNoPath            ErrorCode = "NO_PATH"
	CodeDisconnectedGraph ErrorCode = "DISCONNECTED_GRAPH"
	CodeUnreachableNode   ErrorCode = "UNREACHABLE_NODE"

	// Solver outcomes - these mirror the solver's own error taxonomy directly.
	CodeInfeasible             ErrorCode = "INFEASIBLE"
	CodeUnbounded              ErrorCode = "UNBOUNDED"
	CodeNumericInstability     ErrorCode = "NUMERIC_INSTABILITY"
	CodeDegenerateCycleMissing ErrorCode = "DEGENERATE_CYCLE_MISSING"
	CodeIterationLimit         ErrorCode = "ITERATION_LIMIT"
	CodeInvalidMethod          ErrorCode = "INVALID_METHOD"

	// General.
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeNilInput        ErrorCode = "NIL_INPUT"
	CodeTimeout         ErrorCode = "TIMEOUT"
)

// Severity defines the criticality level of an error.
type Severity int

const (
	// SeverityWarning indicates a non-critical issue, e.g. a solution that
	// exists but is degenerate.
	SeverityWarning Severity = iota
	// SeverityError indicates a standard error that requires attention.
	SeverityError
	// SeverityCritical indicates a severe error, typically a numeric
	// instability that invalidates the computed result.
	SeverityCritical
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Error is a custom error type that includes an ErrorCode, message, an
// optional field, additional details, an underlying cause, and a severity
// level.
type Error struct {
	Code     ErrorCode      // Code is a unique identifier for the type of error.
	Message  string         // Message is a human-readable description of the error.
	Field    string         // Field indicates which input field caused the error, if applicable.
	Details  map[string]any // Details provides additional structured information about the error.
	Cause    error          // Cause is the underlying error that triggered this error.
	Severity Severity       // Severity indicates the criticality level of the error.
}

// Error implements the error interface, returning a string representation of the error.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, allowing for error chain introspection.
func (e *Error) Unwrap() error {
	return e.Cause
}

// GRPCStatus converts the solver error into a gRPC status.Status, so that a
// caller exposing the solver core over gRPC can return it directly.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.grpcCode(), e.Message)
}

func (e *Error) grpcCode() codes.Code {
	switch e.Code {
	case CodeInvalidModel, CodeEmptyModel, CodeDimensionMismatch, CodeInvalidBound,
		CodeNegativeSupply, CodeNegativeDemand, CodeInvalidGraph, CodeEmptyGraph,
		CodeInvalidSource, CodeInvalidSink, CodeDuplicateNode, CodeDanglingEdge,
		CodeSelfLoop, CodeNegativeCapacity, CodeNegativeCost, CodeSourceEqualsSink,
		CodeNegativeWeight, CodeInvalidArgument, CodeNilInput, CodeInvalidMethod:
		return codes.InvalidArgument

	case CodeNoPath, CodeDisconnectedGraph, CodeUnreachableNode:
		return codes.FailedPrecondition

	case CodeNotFound:
		return codes.NotFound

	case CodeTimeout, CodeIterationLimit:
		return codes.DeadlineExceeded

	case CodeInfeasible, CodeUnbounded:
		return codes.Aborted

	case CodeNumericInstability, CodeDegenerateCycleMissing:
		return codes.DataLoss

	default:
		return codes.Internal
	}
}

// New creates a new solver error with the given code and message. The
// default severity is SeverityError.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Details:  make(map[string]any),
		Severity: SeverityError,
	}
}

// NewWithField creates a new solver error with the given code, message, and field.
func NewWithField(code ErrorCode, message, field string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Field:    field,
		Details:  make(map[string]any),
		Severity: SeverityError,
	}
}

// NewWarning creates a new solver error with SeverityWarning.
func NewWarning(code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Details:  make(map[string]any),
		Severity: SeverityWarning,
	}
}

// NewCritical creates a new solver error with SeverityCritical.
func NewCritical(code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Details:  make(map[string]any),
		Severity: SeverityCritical,
	}
}

// Wrap creates a new solver error that wraps an existing error, providing
// additional context with a code and message.
func Wrap(cause error, code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Cause:    cause,
		Details:  make(map[string]any),
		Severity: SeverityError,
	}
}

// WithDetails adds a key-value pair to the error's details map and returns the modified error.
func (e *Error) WithDetails(key string, value any) *Error {
	e.Details[key] = value
	return e
}

// WithField sets the field associated with the error and returns the modified error.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// WithSeverity sets the severity level of the error and returns the modified error.
func (e *Error) WithSeverity(s Severity) *Error {
	e.Severity = s
	return e
}

// Is checks if the given error is a solver error with a matching ErrorCode.
func Is(err error, code ErrorCode) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Code extracts the ErrorCode from an error. If the error is not an *Error,
// it returns CodeInternal.
func Code(err error) ErrorCode {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// ToGRPC converts a solver error or any other error into a gRPC error status.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.GRPCStatus().Err()
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	return status.Error(codes.Internal, err.Error())
}

// IsWarning checks if the given error is a solver error with SeverityWarning.
func IsWarning(err error) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Severity == SeverityWarning
	}
	return false
}

// IsCritical checks if the given error is a solver error with SeverityCritical.
func IsCritical(err error) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Severity == SeverityCritical
	}
	return false
}

// Predefined errors for common scenarios.
var (
	ErrEmptyModel       = New(CodeEmptyModel, "model has no variables or constraints")
	ErrInvalidSource    = New(CodeInvalidSource, "source node not found")
	ErrInvalidSink      = New(CodeInvalidSink, "sink node not found")
	ErrSourceEqualsSink = New(CodeSourceEqualsSink, "source and sink cannot be the same")
	ErrNoPath           = New(CodeNoPath, "no path from source to sink")
	ErrNilInput         = New(CodeNilInput, "input is nil")
	ErrIterationLimit   = New(CodeIterationLimit, "iteration limit exceeded")
)

// ValidationErrors is a collection of solver errors and warnings, used for
// aggregating the results of model validation before a solve begins.
type ValidationErrors struct {
	Errors   []*Error
	Warnings []*Error
}

// NewValidationErrors creates and returns a new empty ValidationErrors collection.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors:   make([]*Error, 0),
		Warnings: make([]*Error, 0),
	}
}

// Add appends an *Error to the appropriate slice based on its Severity.
func (v *ValidationErrors) Add(err *Error) {
	if err.Severity == SeverityWarning {
		v.Warnings = append(v.Warnings, err)
	} else {
		v.Errors = append(v.Errors, err)
	}
}

// AddError creates and adds a new solver error with SeverityError.
func (v *ValidationErrors) AddError(code ErrorCode, message string) {
	v.Errors = append(v.Errors, New(code, message))
}

// AddWarning creates and adds a new solver error with SeverityWarning.
func (v *ValidationErrors) AddWarning(code ErrorCode, message string) {
	v.Warnings = append(v.Warnings, NewWarning(code, message))
}

// AddErrorWithField creates and adds a new solver error with a specific field.
func (v *ValidationErrors) AddErrorWithField(code ErrorCode, message, field string) {
	v.Errors = append(v.Errors, NewWithField(code, message, field))
}

// HasErrors returns true if the collection contains any errors (non-warning severity).
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// HasWarnings returns true if the collection contains any warnings.
func (v *ValidationErrors) HasWarnings() bool {
	return len(v.Warnings) > 0
}

// IsValid returns true if the collection contains no errors (warnings do not affect validity).
func (v *ValidationErrors) IsValid() bool {
	return !v.HasErrors()
}

// Merge combines the current ValidationErrors collection with another one.
func (v *ValidationErrors) Merge(other *ValidationErrors) {
	if other == nil {
		return
	}
	v.Errors = append(v.Errors, other.Errors...)
	v.Warnings = append(v.Warnings, other.Warnings...)
}

// ErrorMessages returns a slice of string messages for all collected errors.
func (v *ValidationErrors) ErrorMessages() []string {
	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Error()
	}
	return messages
}

// WarningMessages returns a slice of string messages for all collected warnings.
func (v *ValidationErrors) WarningMessages() []string {
	messages := make([]string, len(v.Warnings))
	for i, warn := range v.Warnings {
		messages[i] = warn.Message
	}
	return messages
}
