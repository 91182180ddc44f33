// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extract-main-proc CLI.
//
// The build script runs it on the .ll file produced by the code generator and
// passes the printed name to the C compiler when building main_wrapper.c:
//
//	cc -D"MAIN_PROCEDURE_NAME=$(extract-main-proc program.ll)" main_wrapper.c program.o
//
// Only the result is written to stdout. Diagnostics, usage and help go to
// stderr so the output can be captured directly.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extract-main-proc/internal/irscan"
	"github.com/pdiddy/extract-main-proc/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries per-invocation state shared by the commands.
type app struct {
	v      *viper.Viper
	cfg    types.ExtractConfig
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "extract-main-proc <file.ll>",
		Short: "Print the entry procedure name defined in an LLVM IR file",
		Long: `extract-main-proc scans a textual LLVM IR file produced by the compiler
backend for parameterless procedure definitions (define void @Name()), skips
runtime builtins such as Put_Line and New_Line, and prints the first remaining
name. The output is meant to be captured by build scripts and passed to the C
compiler as -DMAIN_PROCEDURE_NAME=<name>.

A path named like a subcommand (flags, inspect, version, help) runs that
subcommand; prefix it with ./ to scan the file instead.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid at this point; later failures are not usage errors.
			cmd.SilenceUsage = true
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.extract(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, name)
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./extract-main-proc.yaml or ~/.config/extract-main-proc/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "report the config file in use on stderr")

	rootCmd.AddCommand(
		newFlagsCmd(a),
		newInspectCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// loadConfig reads the optional config file and environment into a.cfg.
// A missing config file is not an error.
func (a *app) loadConfig(cmd *cobra.Command) error {
	v := a.v
	v.SetDefault("macro_name", types.DefaultMacroName)
	v.SetDefault("builtins", []string{})

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("extract-main-proc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "extract-main-proc"))
		}
	}

	v.SetEnvPrefix("EXTRACT_MAIN_PROC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintln(a.stderr, "Using config file:", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// extract returns the entry procedure name in the IR file at path, or
// irscan.ErrNoMatch when none qualifies.
func (a *app) extract(path string) (string, error) {
	name, ok, err := irscan.New(a.cfg.Builtins...).Extract(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", irscan.ErrNoMatch
	}
	return name, nil
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
