package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/extract-main-proc/internal/irscan"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.ll>",
		Short: "List every candidate definition as YAML",
		Long: `Inspect prints a YAML report of every parameterless void definition found
in the IR file: its name, line, whether it was skipped and why, and the name
that would be selected. It succeeds even when nothing is selected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := irscan.New(a.cfg.Builtins...).ScanFile(args[0])
			if err != nil {
				return err
			}
			return irscan.WriteReport(a.stdout, report)
		},
	}
}
