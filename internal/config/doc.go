// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/bfk/config.cue (or XDG equivalent on
// Linux, ~/Library/Application Support/bfk/config.cue on macOS,
// %APPDATA%\bfk\config.cue on Windows). It carries the two engine limits
// (tape_size, max_steps) and UI preferences; command-line flags override
// config values, which override built-in defaults.
//
// Configuration validation is performed against a CUE schema
// (config_schema.cue) to ensure type safety and clear error messages for
// invalid values.
package config
