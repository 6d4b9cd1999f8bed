// SPDX-License-Identifier: MPL-2.0

package interp

import (
	"bytes"
	"context"
)

const (
	// DefaultTapeSize is the tape length used when no size is configured.
	DefaultTapeSize = 30000
	// DefaultMaxSteps is the step budget used when no limit is configured.
	DefaultMaxSteps = 2_000_000

	// cancelCheckInterval is how many steps pass between context polls.
	// Polling sits at the same point as the step-limit check and is
	// invisible when the context is never canceled.
	cancelCheckInterval = 1024
)

// Interpreter executes Brainfuck programs on a fixed-size circular byte
// tape. The tape and cursor persist across Run calls on the same instance,
// so a REPL can accumulate state; create a fresh Interpreter for an isolated
// run. Instances are not safe for concurrent use, but independent instances
// share nothing.
type Interpreter struct {
	tape     []byte
	cursor   int
	maxSteps int
}

// New creates an Interpreter with a zero-initialized tape of tapeSize cells
// and a per-run budget of maxSteps executed instructions. It returns
// InvalidTapeSizeError when tapeSize is not positive.
func New(tapeSize, maxSteps int) (*Interpreter, error) {
	if tapeSize <= 0 {
		return nil, &InvalidTapeSizeError{Size: tapeSize}
	}
	return &Interpreter{
		tape:     make([]byte, tapeSize),
		maxSteps: maxSteps,
	}, nil
}

// Run executes program against input and returns the accumulated output.
//
// The program text is sanitized and tokenized first (a no-op when the caller
// already sanitized), then bracket pairs are precomputed; a bracket error
// aborts the run unchanged with nothing executed. The dispatch loop then
// runs until the instruction pointer passes the end of the program or the
// step budget is exhausted. Failure is all-or-nothing: on StepLimitError any
// output produced before the limit is discarded.
//
// Input is consumed byte by byte as successive `,` instructions execute;
// once exhausted, `,` writes 0. The context is polled coarsely at the
// step-check point; a canceled context aborts the run with ctx.Err().
func (in *Interpreter) Run(ctx context.Context, program, input string) (string, error) {
	prog := Tokenize(program)
	jumps, err := MatchBrackets(prog)
	if err != nil {
		return "", err
	}

	var (
		ip    int
		steps int
		inPos int
		out   bytes.Buffer
	)
	for ip < len(prog) {
		if steps >= in.maxSteps {
			return "", &StepLimitError{Limit: in.maxSteps}
		}
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		steps++

		switch prog[ip] {
		case OpRight:
			in.cursor++
			if in.cursor == len(in.tape) {
				in.cursor = 0
			}
		case OpLeft:
			in.cursor--
			if in.cursor < 0 {
				in.cursor = len(in.tape) - 1
			}
		case OpInc:
			in.tape[in.cursor]++
		case OpDec:
			in.tape[in.cursor]--
		case OpOutput:
			out.WriteByte(in.tape[in.cursor])
		case OpInput:
			if inPos < len(input) {
				in.tape[in.cursor] = input[inPos]
				inPos++
			} else {
				in.tape[in.cursor] = 0
			}
		case OpOpen:
			if in.tape[in.cursor] == 0 {
				// Jump lands on the `]`; the advance below moves past it.
				ip = jumps[ip]
			}
		case OpClose:
			if in.tape[in.cursor] != 0 {
				ip = jumps[ip]
			}
		}
		ip++
	}
	return out.String(), nil
}

// Reset zeroes every tape cell and returns the cursor to position 0.
func (in *Interpreter) Reset() {
	clear(in.tape)
	in.cursor = 0
}

// Cursor returns the current cell position.
func (in *Interpreter) Cursor() int { return in.cursor }

// TapeSize returns the configured tape length.
func (in *Interpreter) TapeSize() int { return len(in.tape) }

// MaxSteps returns the configured per-run step budget.
func (in *Interpreter) MaxSteps() int { return in.maxSteps }

// Tape returns a copy of the tape contents. The copy is detached: mutating
// it does not affect the interpreter.
func (in *Interpreter) Tape() []byte {
	snapshot := make([]byte, len(in.tape))
	copy(snapshot, in.tape)
	return snapshot
}
