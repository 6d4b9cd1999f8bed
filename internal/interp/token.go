// SPDX-License-Identifier: MPL-2.0

package interp

type (
	// Instruction is one of the eight recognized Brainfuck commands. The set
	// is closed: tokenization decides the kind exactly once, so the dispatch
	// loop never sees an unrecognized value.
	Instruction uint8

	// Program is an ordered, immutable sequence of instructions. Positions
	// used in error reporting and in the BracketMap are 0-based indices into
	// this sequence.
	Program []Instruction
)

const (
	// OpRight moves the cursor one cell to the right (`>`), wrapping to 0.
	OpRight Instruction = iota
	// OpLeft moves the cursor one cell to the left (`<`), wrapping to the end.
	OpLeft
	// OpInc increments the current cell (`+`), modulo 256.
	OpInc
	// OpDec decrements the current cell (`-`), modulo 256.
	OpDec
	// OpOutput appends the current cell value to the output (`.`).
	OpOutput
	// OpInput reads the next input byte into the current cell (`,`),
	// writing 0 once input is exhausted.
	OpInput
	// OpOpen begins a loop (`[`): jumps past the matching `]` when the
	// current cell is zero.
	OpOpen
	// OpClose ends a loop (`]`): jumps back to the matching `[` when the
	// current cell is non-zero.
	OpClose
)

// symbols maps each Instruction to its source character, indexed by the
// Instruction value itself.
const symbols = "><+-.,[]"

// instructionFor returns the Instruction for a source byte, and whether the
// byte is one of the eight recognized commands.
func instructionFor(c byte) (Instruction, bool) {
	switch c {
	case '>':
		return OpRight, true
	case '<':
		return OpLeft, true
	case '+':
		return OpInc, true
	case '-':
		return OpDec, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpOpen, true
	case ']':
		return OpClose, true
	}
	return 0, false
}

// String returns the source character for the instruction.
func (i Instruction) String() string {
	if int(i) < len(symbols) {
		return string(symbols[i])
	}
	return "?"
}

// Tokenize converts text into a Program, dropping every byte that is not a
// recognized command. Tokenize(Sanitize(s)) and Tokenize(s) are therefore
// equivalent; callers that only need the filtered text use Sanitize.
func Tokenize(text string) Program {
	prog := make(Program, 0, len(text))
	for i := 0; i < len(text); i++ {
		if op, ok := instructionFor(text[i]); ok {
			prog = append(prog, op)
		}
	}
	return prog
}

// String renders the program back to its source text form.
func (p Program) String() string {
	buf := make([]byte, len(p))
	for i, op := range p {
		buf[i] = symbols[op]
	}
	return string(buf)
}
