// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultMacroName is the preprocessor macro main_wrapper.c expects to carry
// the entry procedure name.
const DefaultMacroName = "MAIN_PROCEDURE_NAME"

// ExtractConfig holds settings for entry procedure extraction. Every field is
// optional; the zero value behaves like the defaults.
type ExtractConfig struct {
	// MacroName is the macro used when formatting the compiler flag
	// (default "MAIN_PROCEDURE_NAME").
	MacroName string `json:"macro_name" yaml:"macro_name" mapstructure:"macro_name"`

	// Builtins lists extra runtime names to skip. They are added to the
	// fixed builtin list, never replace it.
	Builtins []string `json:"builtins,omitempty" yaml:"builtins,omitempty" mapstructure:"builtins"`
}

// Macro returns the configured macro name, or DefaultMacroName when unset.
func (c ExtractConfig) Macro() string {
	if c.MacroName == "" {
		return DefaultMacroName
	}
	return c.MacroName
}
