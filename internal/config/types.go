// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"bfk-cli/internal/interp"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// UIConfig holds terminal presentation preferences.
	UIConfig struct {
		// ColorScheme selects the glamour/lipgloss rendering style.
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables diagnostic output without the --verbose flag.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// Config is the application configuration. The engine limits mirror the
	// Interpreter constructor arguments; the CLI resolves the effective
	// values as flag > config file > default.
	Config struct {
		// TapeSize is the tape length in cells. Must be positive.
		TapeSize int `mapstructure:"tape_size" toml:"tape_size"`
		// MaxSteps is the per-run executed-instruction budget. Must be positive.
		MaxSteps int `mapstructure:"max_steps" toml:"max_steps"`
		// UI holds presentation preferences.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		TapeSize: interp.DefaultTapeSize,
		MaxSteps: interp.DefaultMaxSteps,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Validate returns an error if the ColorScheme is not a recognized value.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	}
	return &InvalidColorSchemeError{Value: s}
}

// Validate checks every field and returns an InvalidConfigError collecting
// all violations, or nil when the config is well-formed. The CUE schema
// enforces the same constraints for file-sourced values; this catches
// programmatic construction and env overrides.
func (c *Config) Validate() error {
	var fieldErrs []error
	if c.TapeSize <= 0 {
		fieldErrs = append(fieldErrs, fmt.Errorf("tape_size: must be > 0 (got %d)", c.TapeSize))
	}
	if c.MaxSteps <= 0 {
		fieldErrs = append(fieldErrs, fmt.Errorf("max_steps: must be > 0 (got %d)", c.MaxSteps))
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark, or light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msg := "invalid config"
	for _, fe := range e.FieldErrors {
		msg += "\n  " + fe.Error()
	}
	return msg
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
