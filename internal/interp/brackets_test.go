// SPDX-License-Identifier: MPL-2.0

package interp

import (
	"errors"
	"testing"
)

func TestMatchBrackets_Symmetric(t *testing.T) {
	t.Parallel()

	programs := []string{
		"[]",
		"[[]]",
		"[][]",
		"+[>[-]<[.]]",
		"[[[][]][]]",
	}
	for _, src := range programs {
		jumps, err := MatchBrackets(Tokenize(src))
		if err != nil {
			t.Fatalf("MatchBrackets(%q) returned error: %v", src, err)
		}
		for p, q := range jumps {
			if jumps[q] != p {
				t.Errorf("%q: map[%d] = %d but map[%d] = %d, want %d", src, p, q, q, jumps[q], p)
			}
		}
	}
}

func TestMatchBrackets_CoversEveryBracket(t *testing.T) {
	t.Parallel()

	src := "+[>[-]<[.]]"
	prog := Tokenize(src)
	jumps, err := MatchBrackets(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for pos, op := range prog {
		_, mapped := jumps[pos]
		isBracket := op == OpOpen || op == OpClose
		if isBracket && !mapped {
			t.Errorf("bracket at position %d missing from map", pos)
		}
		if !isBracket && mapped {
			t.Errorf("non-bracket position %d present in map", pos)
		}
	}
}

func TestMatchBrackets_UnmatchedOpen(t *testing.T) {
	t.Parallel()

	// The inner pair closes; the outer bracket at position 0 is the most
	// recently opened one left on the stack.
	_, err := MatchBrackets(Tokenize("[[]"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrUnmatchedOpen) {
		t.Errorf("error should wrap ErrUnmatchedOpen, got: %v", err)
	}
	var openErr *UnmatchedOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("error should be *UnmatchedOpenError, got: %T", err)
	}
	if openErr.Pos != 0 {
		t.Errorf("UnmatchedOpenError.Pos = %d, want 0", openErr.Pos)
	}
}

func TestMatchBrackets_UnmatchedOpenReportsStackTop(t *testing.T) {
	t.Parallel()

	// Both brackets stay open; the reported position is the innermost
	// (most recent) one, not the leftmost.
	_, err := MatchBrackets(Tokenize("[+["))
	var openErr *UnmatchedOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected *UnmatchedOpenError, got: %v", err)
	}
	if openErr.Pos != 2 {
		t.Errorf("UnmatchedOpenError.Pos = %d, want 2", openErr.Pos)
	}
}

func TestMatchBrackets_UnmatchedClose(t *testing.T) {
	t.Parallel()

	_, err := MatchBrackets(Tokenize("[]]"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrUnmatchedClose) {
		t.Errorf("error should wrap ErrUnmatchedClose, got: %v", err)
	}
	var closeErr *UnmatchedCloseError
	if !errors.As(err, &closeErr) {
		t.Fatalf("error should be *UnmatchedCloseError, got: %T", err)
	}
	if closeErr.Pos != 2 {
		t.Errorf("UnmatchedCloseError.Pos = %d, want 2", closeErr.Pos)
	}
}

func TestMatchBrackets_NoBrackets(t *testing.T) {
	t.Parallel()

	jumps, err := MatchBrackets(Tokenize("+-><.,"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jumps) != 0 {
		t.Errorf("expected empty map, got %v", jumps)
	}
}
