// SPDX-License-Identifier: MPL-2.0

// Package interp implements the Brainfuck execution engine: program
// sanitization, bracket-pair precomputation, and the instruction dispatch
// loop over a bounded circular byte tape.
//
// The package is the leaf of the repository: it imports only the standard
// library, performs no I/O and no logging, and reports every failure as a
// typed error value. Each Interpreter instance owns its tape exclusively,
// so independent instances can run concurrently without coordination.
package interp
