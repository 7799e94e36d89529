// Package apperror provides tests for the custom error types and utility functions.
package apperror

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
)

// TestError_Error verifies that the Error() method returns the correct string format.
func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without field",
			err:      New(CodeInvalidModel, "model is invalid"),
			expected: "[INVALID_MODEL] model is invalid",
		},
		{
			name:     "with field",
			err:      NewWithField(CodeInvalidSource, "source not found", "source_id"),
			expected: "[INVALID_SOURCE] source not found (field: source_id)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestError_Unwrap verifies that the Unwrap() method correctly returns the underlying cause.
func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, CodeInternal, "wrapped error")

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

// TestError_GRPCStatus verifies that the GRPCStatus() method maps ErrorCodes to correct gRPC codes.
func TestError_GRPCStatus(t *testing.T) {
	tests := []struct {
		name         string
		code         ErrorCode
		expectedCode codes.Code
	}{
		{"invalid argument", CodeInvalidModel, codes.InvalidArgument},
		{"not found", CodeNotFound, codes.NotFound},
		{"timeout", CodeTimeout, codes.DeadlineExceeded},
		{"infeasible", CodeInfeasible, codes.Aborted},
		{"unbounded", CodeUnbounded, codes.Aborted},
		{"numeric instability", CodeNumericInstability, codes.DataLoss},
		{"degenerate cycle missing", CodeDegenerateCycleMissing, codes.DataLoss},
		{"no path", CodeNoPath, codes.FailedPrecondition},
		{"iteration limit", CodeIterationLimit, codes.DeadlineExceeded},
		{"unknown maps internal", ErrorCode("SOMETHING_ELSE"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "message")
			st := err.GRPCStatus()
			if st.Code() != tt.expectedCode {
				t.Errorf("GRPCStatus().Code() = %v, want %v", st.Code(), tt.expectedCode)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(CodeInfeasible, "no feasible solution")
	if !Is(err, CodeInfeasible) {
		t.Errorf("Is() should return true for matching code")
	}
	if Is(err, CodeUnbounded) {
		t.Errorf("Is() should return false for non-matching code")
	}
	if Is(errors.New("plain error"), CodeInfeasible) {
		t.Errorf("Is() should return false for non-*Error types")
	}
}

func TestCode(t *testing.T) {
	err := New(CodeUnbounded, "objective is unbounded")
	if got := Code(err); got != CodeUnbounded {
		t.Errorf("Code() = %v, want %v", got, CodeUnbounded)
	}
	if got := Code(errors.New("plain error")); got != CodeInternal {
		t.Errorf("Code() = %v, want %v", got, CodeInternal)
	}
}

func TestToGRPC(t *testing.T) {
	if ToGRPC(nil) != nil {
		t.Errorf("ToGRPC(nil) should return nil")
	}

	appErr := New(CodeInfeasible, "infeasible")
	grpcErr := ToGRPC(appErr)
	if grpcErr == nil {
		t.Fatalf("ToGRPC should not return nil for a non-nil error")
	}

	plain := errors.New("boom")
	grpcErr = ToGRPC(plain)
	if grpcErr == nil {
		t.Fatalf("ToGRPC should wrap plain errors as Internal")
	}
}

func TestSeverityHelpers(t *testing.T) {
	warn := NewWarning(CodeDegenerateCycleMissing, "degenerate tie unresolved")
	if !IsWarning(warn) {
		t.Errorf("IsWarning should return true for a warning error")
	}
	if IsCritical(warn) {
		t.Errorf("IsCritical should return false for a warning error")
	}

	crit := NewCritical(CodeNumericInstability, "pivot magnitude exceeded tolerance")
	if !IsCritical(crit) {
		t.Errorf("IsCritical should return true for a critical error")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev      Severity
		expected string
	}{
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %v, want %v", tt.sev, got, tt.expected)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	v := NewValidationErrors()
	if !v.IsValid() {
		t.Errorf("a fresh ValidationErrors should be valid")
	}

	v.AddError(CodeInvalidModel, "objective row missing")
	v.AddWarning(CodeDegenerateCycleMissing, "degenerate basis")
	v.AddErrorWithField(CodeNegativeSupply, "supply must be non-negative", "supply[2]")

	if !v.HasErrors() {
		t.Errorf("expected errors to be present")
	}
	if !v.HasWarnings() {
		t.Errorf("expected warnings to be present")
	}
	if v.IsValid() {
		t.Errorf("ValidationErrors with errors should not be valid")
	}
	if len(v.ErrorMessages()) != 2 {
		t.Errorf("expected 2 error messages, got %d", len(v.ErrorMessages()))
	}
	if len(v.WarningMessages()) != 1 {
		t.Errorf("expected 1 warning message, got %d", len(v.WarningMessages()))
	}

	other := NewValidationErrors()
	other.AddError(CodeDimensionMismatch, "row/column mismatch")
	v.Merge(other)
	if len(v.Errors) != 3 {
		t.Errorf("expected 3 errors after merge, got %d", len(v.Errors))
	}
}
