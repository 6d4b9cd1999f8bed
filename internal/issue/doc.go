// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and
// Markdown-formatted guidance, improving the user experience when program
// loading, validation, or execution fails at the CLI layer. The execution
// engine never imports this package; it reports typed errors and the CLI
// wraps them here for display.
package issue
