// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The configuration loader validates user CUE files against an embedded
// schema; this package holds the pieces of that flow that are independent of
// the config shape: size limiting for untrusted input and error formatting
// that prefixes messages with a JSON-style path to the offending field
// (e.g. "config.cue: ui.color_scheme: expected string, got int").
package cueutil
