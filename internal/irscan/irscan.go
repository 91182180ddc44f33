// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package irscan finds the user-defined entry procedure in textual LLVM IR
// emitted by the compiler backend.
//
// The backend emits every parameterless procedure as `define void @Name()`.
// Runtime support routines from runtime.c share that shape, so they are
// filtered out by name before the first remaining match is taken.
package irscan

import (
	"regexp"
	"strings"

	"github.com/pdiddy/extract-main-proc/pkg/types"
)

// defineRe matches a parameterless void definition and captures its name.
var defineRe = regexp.MustCompile(`define\s+void\s+@([A-Z][A-Za-z0-9_]*)\(\s*\)`)

// builtins are the runtime routines that can appear as `define void @X()`.
// Read-only; New copies them into each Extractor.
var builtins = [...]string{
	"Put_Line",
	"Put",
	"Put_Integer",
	"Put_Real",
	"New_Line",
	"Get_Line",
	"Get",
	"Get_Real",
}

// Extractor selects the entry procedure from IR text. It is immutable after
// New and safe for concurrent use.
type Extractor struct {
	excluded map[string]struct{}
}

// New returns an Extractor that skips the fixed builtins plus any extra
// names. Blank extras are ignored.
func New(extra ...string) *Extractor {
	excluded := make(map[string]struct{}, len(builtins)+len(extra))
	for _, name := range builtins {
		excluded[name] = struct{}{}
	}
	for _, name := range extra {
		name = strings.TrimSpace(name)
		if name != "" {
			excluded[name] = struct{}{}
		}
	}
	return &Extractor{excluded: excluded}
}

// IsExcluded reports whether name would be skipped, and why.
func (e *Extractor) IsExcluded(name string) (bool, types.ExclusionReason) {
	if strings.HasPrefix(name, "_") {
		return true, types.ExcludedUnderscore
	}
	if _, ok := e.excluded[name]; ok {
		return true, types.ExcludedBuiltin
	}
	return false, types.ExcludedNone
}

// Scan returns every definition match in src in textual order, classified
// against the exclusion rules.
func (e *Extractor) Scan(src string) []types.Candidate {
	matches := defineRe.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return nil
	}

	candidates := make([]types.Candidate, 0, len(matches))
	line, pos := 1, 0
	for _, m := range matches {
		line += strings.Count(src[pos:m[0]], "\n")
		pos = m[0]

		name := src[m[2]:m[3]]
		excluded, reason := e.IsExcluded(name)
		candidates = append(candidates, types.Candidate{
			Name:     name,
			Line:     line,
			Excluded: excluded,
			Reason:   reason,
		})
	}
	return candidates
}

// Find returns the first candidate in src that is not excluded. It reports
// false both when nothing matched and when every match was excluded.
func (e *Extractor) Find(src string) (string, bool) {
	return selected(e.Scan(src))
}

func selected(candidates []types.Candidate) (string, bool) {
	for _, c := range candidates {
		if !c.Excluded {
			return c.Name, true
		}
	}
	return "", false
}
