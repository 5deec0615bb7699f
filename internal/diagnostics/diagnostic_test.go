package diagnostics

import (
	"errors"
	"strings"
	"testing"
)

func TestDiagnosticBuilderChain(t *testing.T) {
	loc := testLocation(4, 9)
	diag := NewError("something went wrong").
		WithCode("C9999").
		WithPrimaryLabel(loc, "here").
		WithSecondaryLabel(testLocation(1, 1), "declared here").
		WithNote("a note").
		WithHelp("a suggestion")

	if diag.Severity != Error {
		t.Errorf("Expected Error severity, got %s", diag.Severity)
	}
	if diag.Code != "C9999" {
		t.Errorf("Expected code C9999, got %s", diag.Code)
	}
	if diag.FilePath != "test.carbon" {
		t.Errorf("Expected file path from first label, got %q", diag.FilePath)
	}
	if len(diag.Labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(diag.Labels))
	}
	if diag.PrimaryLocation() != loc {
		t.Error("PrimaryLocation should return the primary label's location")
	}
	if len(diag.Notes) != 1 || diag.Help != "a suggestion" {
		t.Error("Notes and help not recorded")
	}
}

func TestControlFlowBuilders(t *testing.T) {
	tests := []struct {
		name    string
		diag    *Diagnostic
		code    string
		message string
	}{
		{"misplaced return", MisplacedReturn(testLocation(1, 1)), ErrMisplacedReturn, "return is not within a function body"},
		{"misplaced break", MisplacedBreak(testLocation(1, 1)), ErrMisplacedBreak, "break is not within a loop body"},
		{"misplaced continue", MisplacedContinue(testLocation(1, 1)), ErrMisplacedContinue, "continue is not within a loop body"},
		{"duplicate auto return", DuplicateAutoReturn(testLocation(2, 1), "f", testLocation(1, 1)), ErrDuplicateAutoReturn, "only one return is allowed in a function with an 'auto' return type"},
		{"missing return value", ReturnValueMismatch(testLocation(2, 1), "f", false), ErrReturnValueMismatch, "return should provide a return value"},
		{"unexpected return value", ReturnValueMismatch(testLocation(2, 1), "f", true), ErrReturnValueMismatch, "return should not provide a return value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.diag.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, tt.diag.Code)
			}
			if !strings.Contains(tt.diag.Message, tt.message) {
				t.Errorf("Expected message to contain %q, got %q", tt.message, tt.diag.Message)
			}
			if tt.diag.Severity != Error {
				t.Error("Control-flow violations are always errors")
			}
			if tt.diag.PrimaryLocation() == nil {
				t.Error("Expected a primary location")
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	err := Fatal(MisplacedBreak(testLocation(7, 3)))

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *CompileError, got %T", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, "test.carbon:7:3") {
		t.Errorf("Expected location in error string, got %q", msg)
	}
	if !strings.Contains(msg, "break is not within a loop body") {
		t.Errorf("Expected message in error string, got %q", msg)
	}
}

func TestCompileErrorWithoutLocation(t *testing.T) {
	err := Fatal(NewError("bare failure"))

	if !strings.Contains(err.Error(), "bare failure") {
		t.Errorf("Expected message in error string, got %q", err.Error())
	}
}
