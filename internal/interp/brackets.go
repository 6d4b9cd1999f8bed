// SPDX-License-Identifier: MPL-2.0

package interp

// BracketMap maps every `[` position in a program to its matching `]`
// position and back. The mapping is symmetric and covers every bracket
// position exactly once; no other positions appear as keys. It is built once
// before execution and never mutated.
type BracketMap map[int]int

// MatchBrackets scans the program left to right with a stack of open-bracket
// positions and returns the completed BracketMap.
//
// A `]` with no open `[` fails immediately with UnmatchedCloseError carrying
// its position; no further scanning happens. A `[` still open after the full
// scan fails with UnmatchedOpenError carrying the stack top, i.e. the most
// recently opened unmatched bracket.
func MatchBrackets(prog Program) (BracketMap, error) {
	var stack []int
	jumps := make(BracketMap)
	for pos, op := range prog {
		switch op {
		case OpOpen:
			stack = append(stack, pos)
		case OpClose:
			if len(stack) == 0 {
				return nil, &UnmatchedCloseError{Pos: pos}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = pos
			jumps[pos] = open
		}
	}
	if len(stack) > 0 {
		return nil, &UnmatchedOpenError{Pos: stack[len(stack)-1]}
	}
	return jumps, nil
}
