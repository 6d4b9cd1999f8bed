// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "run program"},
			want: "failed to run program",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "load program", Resource: "./hello.bf"},
			want: "failed to load program: ./hello.bf",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load program",
				Resource:  "./hello.bf",
				Cause:     errors.New("no such file"),
			},
			want: "failed to load program: ./hello.bf: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("run program").
		WithResource("inline").
		WithSuggestion("Run 'bfk check' first").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil with an operation set")
	}
	if ae.Operation != "run program" || ae.Resource != "inline" {
		t.Errorf("unexpected fields: %+v", ae)
	}
	if len(ae.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(ae.Suggestions))
	}
	if !errors.Is(ae, cause) {
		t.Error("built error should wrap its cause")
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	ae := NewErrorContext().
		WithOperation("run program").
		WithSuggestion("Raise --max-steps").
		Wrap(errors.New("step limit exceeded (1000 steps); the program may not terminate")).
		Build()

	plain := ae.Format(false)
	if !strings.Contains(plain, "• Raise --max-steps") {
		t.Errorf("Format(false) missing suggestion bullet:\n%s", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", plain)
	}

	verbose := ae.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "run program"); got != nil {
		t.Errorf("WrapWithOperation(nil, _) = %v, want nil", got)
	}

	cause := errors.New("boom")
	ae := WrapWithOperation(cause, "run program")
	if ae == nil {
		t.Fatal("WrapWithOperation returned nil for non-nil cause")
	}
	if !errors.Is(ae, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
}
