// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExclusionReason records why a candidate was skipped.
type ExclusionReason string

const (
	ExcludedNone       ExclusionReason = ""
	ExcludedBuiltin    ExclusionReason = "builtin"
	ExcludedUnderscore ExclusionReason = "underscore"
)

// Candidate is one `define void @Name()` match found in an IR file.
type Candidate struct {
	// Name is the identifier after '@'.
	Name string `json:"name" yaml:"name"`

	// Line is the 1-based line of the match.
	Line int `json:"line" yaml:"line"`

	// Excluded is true when the name is a runtime builtin or hidden.
	Excluded bool `json:"excluded" yaml:"excluded"`

	// Reason is set when Excluded is true.
	Reason ExclusionReason `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ScanReport is the full result of scanning one IR file.
type ScanReport struct {
	Path       string      `json:"path" yaml:"path"`
	Candidates []Candidate `json:"candidates" yaml:"candidates"`

	// Selected is the entry procedure name, empty if none qualified.
	Selected string `json:"selected,omitempty" yaml:"selected,omitempty"`
}
