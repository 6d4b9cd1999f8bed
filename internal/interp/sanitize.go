// SPDX-License-Identifier: MPL-2.0

package interp

import "strings"

// Sanitize filters arbitrary text down to the eight recognized command
// characters, preserving their relative order. It is total and idempotent:
// programs pasted with surrounding markup or prose reduce to the same
// sequence no matter how often the filter is applied. No semantic validation
// happens here; bracket balance is checked by MatchBrackets.
func Sanitize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if _, ok := instructionFor(text[i]); ok {
			sb.WriteByte(text[i])
		}
	}
	return sb.String()
}
