// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package irscan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/pdiddy/extract-main-proc/pkg/types"
)

var (
	// ErrNotFound is returned when the IR path does not exist or cannot be
	// opened for reading.
	ErrNotFound = errors.New("file not found")

	// ErrRead wraps any other I/O failure; the cause is wrapped too.
	ErrRead = errors.New("error reading file")

	// ErrNoMatch means the file was read but no entry procedure qualified.
	ErrNoMatch = errors.New("no main procedure found in LLVM IR")

	errNotText = errors.New("invalid UTF-8")
)

// Extract reads the IR file at path and returns the entry procedure name.
// ok is false when no qualifying definition exists.
func (e *Extractor) Extract(path string) (name string, ok bool, err error) {
	src, err := readSource(path)
	if err != nil {
		return "", false, err
	}
	name, ok = e.Find(src)
	return name, ok, nil
}

// ScanFile reads the IR file at path and reports every candidate together
// with the selected name.
func (e *Extractor) ScanFile(path string) (types.ScanReport, error) {
	src, err := readSource(path)
	if err != nil {
		return types.ScanReport{}, err
	}
	report := types.ScanReport{
		Path:       path,
		Candidates: e.Scan(src),
	}
	report.Selected, _ = selected(report.Candidates)
	return report, nil
}

func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	// The code generator only writes UTF-8; anything else is not its output.
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, errNotText)
	}
	return string(data), nil
}
