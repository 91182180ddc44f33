//go:build mage

// Package main contains Mage build targets for extract-main-proc.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "extract-main-proc"
	cmdPkg  = "./cmd/extract-main-proc"
)

// Default target when mage runs without arguments.
var Default = Build

// version returns the value stamped into the binary: $VERSION, or the
// current git description, or "dev".
func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && v != "" {
		return v
	}
	return "dev"
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Flags prints the -D define for the entry procedure in an .ll file, building
// the binary first.
func Flags(llFile string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "flags", llFile)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
