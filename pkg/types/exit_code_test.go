// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{"success", ExitCode(0), false},
		{"generic failure", ExitCode(1), false},
		{"max", ExitCode(255), false},
		{"negative", ExitCode(-1), true},
		{"too large", ExitCode(256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.code.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("ExitCode(%d).Validate() error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidExitCode) {
					t.Errorf("error should wrap ErrInvalidExitCode, got: %v", err)
				}
				var codeErr *InvalidExitCodeError
				if !errors.As(err, &codeErr) {
					t.Errorf("error should be *InvalidExitCodeError, got: %T", err)
				}
			}
		})
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("ExitCode(1).IsSuccess() = true, want false")
	}
}

func TestExitCode_String(t *testing.T) {
	t.Parallel()

	if got := ExitCode(2).String(); got != "2" {
		t.Errorf("ExitCode(2).String() = %q, want %q", got, "2")
	}
}
