// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bfk-cli/internal/config"
	"bfk-cli/internal/interp"
	"bfk-cli/internal/testutil"
)

func TestRunFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"unmatched open", &interp.UnmatchedOpenError{Pos: 0}, interp.ErrUnmatchedOpen},
		{"unmatched close", &interp.UnmatchedCloseError{Pos: 3}, interp.ErrUnmatchedClose},
		{"step limit", &interp.StepLimitError{Limit: 100}, interp.ErrStepLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := runFailure(tt.err, "inline")

			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("error is %T, want *ExitError", err)
			}
			if exitErr.Code != 1 {
				t.Errorf("Code = %d, want 1", exitErr.Code)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, sentinel) = false for %v", tt.err)
			}
		})
	}
}

// execute runs the root command with args and returns what it wrote to the
// command's out stream. Not parallel: the command tree and its flag state are
// package-level.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	restore := testutil.MustSetenv(t, "XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(restore)
	t.Cleanup(config.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	// Sequential: each step reuses the package-level command tree, and flag
	// Changed state carries over between executions.

	t.Run("cat program echoes input", func(t *testing.T) {
		out, err := execute(t, "run", "-p", ",[.,]", "-i", "hello")
		if err != nil {
			t.Fatalf("execute error = %v", err)
		}
		if out != "hello" {
			t.Errorf("output = %q, want %q", out, "hello")
		}
	})

	t.Run("noise around the program is stripped", func(t *testing.T) {
		out, err := execute(t, "run", "-p", "read: , then loop: [.,] done", "-i", "ok")
		if err != nil {
			t.Fatalf("execute error = %v", err)
		}
		if out != "ok" {
			t.Errorf("output = %q, want %q", out, "ok")
		}
	})

	t.Run("unbalanced program produces no output", func(t *testing.T) {
		out, err := execute(t, "run", "-p", "+.[")
		if err == nil {
			t.Fatal("execute error = nil, want unbalanced error")
		}
		if !errors.Is(err, interp.ErrUnmatchedOpen) {
			t.Errorf("error = %v, want ErrUnmatchedOpen", err)
		}
		if out != "" {
			t.Errorf("output = %q, want empty", out)
		}
	})

	t.Run("step limit produces no output", func(t *testing.T) {
		// Last: --max-steps stays Changed for the rest of this test's runs.
		out, err := execute(t, "run", "-p", "+.[]", "--max-steps", "50")
		if err == nil {
			t.Fatal("execute error = nil, want step limit error")
		}
		if !errors.Is(err, interp.ErrStepLimit) {
			t.Errorf("error = %v, want ErrStepLimit", err)
		}
		if out != "" {
			t.Errorf("output = %q, want empty", out)
		}
	})
}

func TestSanitizeCommand(t *testing.T) {
	out, err := execute(t, "sanitize", "-p", "a+b-c.<!-- noise -->")
	if err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if got := strings.TrimRight(out, "\n"); got != "+-.<---->" {
		t.Errorf("output = %q, want %q", got, "+-.<---->")
	}
}

func TestCheckCommand(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		out, err := execute(t, "check", "-p", "++[>+<-]")
		if err != nil {
			t.Fatalf("execute error = %v", err)
		}
		if !strings.Contains(out, "8 commands") || !strings.Contains(out, "1 loop pairs") {
			t.Errorf("output = %q, want command and loop counts", out)
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		out, err := execute(t, "check", "-p", "[]]")
		if err == nil {
			t.Fatal("execute error = nil, want unbalanced error")
		}
		if !errors.Is(err, interp.ErrUnmatchedClose) {
			t.Errorf("error = %v, want ErrUnmatchedClose", err)
		}
		if !strings.Contains(out, "^") {
			t.Errorf("output %q has no caret diagnostic", out)
		}
	})
}

func TestConfigDumpCommand(t *testing.T) {
	t.Run("cue", func(t *testing.T) {
		out, err := execute(t, "config", "dump")
		if err != nil {
			t.Fatalf("execute error = %v", err)
		}
		if !strings.Contains(out, "tape_size: 30000") {
			t.Errorf("output = %q, want default tape_size in CUE form", out)
		}
	})

	t.Run("toml", func(t *testing.T) {
		out, err := execute(t, "config", "dump", "--format", "toml")
		if err != nil {
			t.Fatalf("execute error = %v", err)
		}
		if !strings.Contains(out, "tape_size = 30000") {
			t.Errorf("output = %q, want default tape_size in TOML form", out)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "config", "dump", "--format", "yaml")
		if err == nil {
			t.Fatal("execute error = nil, want unknown format error")
		}
	})
}
