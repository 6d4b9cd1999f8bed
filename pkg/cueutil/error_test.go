// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"strings"
	"testing"

	"bfk-cli/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	data := []byte("tape_size: 30000\n")
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, "config.cue"); err != nil {
		t.Errorf("small file rejected: %v", err)
	}
	if err := cueutil.CheckFileSize(data, 4, "config.cue"); err == nil {
		t.Error("oversized file accepted")
	} else if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("size error missing filename: %v", err)
	}
}

func TestFormatError_Nil(t *testing.T) {
	t.Parallel()

	if err := cueutil.FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatError_IncludesPathAndFile(t *testing.T) {
	t.Parallel()

	ctx := cuecontext.New()
	schema := ctx.CompileString(`#Config: { tape_size?: int & >0 }`)
	user := ctx.CompileString(`tape_size: -5`)

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	verr := unified.Validate()
	if verr == nil {
		t.Fatal("expected validation error for negative tape_size")
	}

	err := cueutil.FormatError(verr, "config.cue")
	if err == nil {
		t.Fatal("FormatError returned nil for non-nil input")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("formatted error missing file path: %v", err)
	}
	if !strings.Contains(err.Error(), "tape_size") {
		t.Errorf("formatted error missing field path: %v", err)
	}
}
