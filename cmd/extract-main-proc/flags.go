package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/extract-main-proc/internal/irscan"
)

func newFlagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags <file.ll>",
		Short: "Print the compiler define for the entry procedure",
		Long: `Flags extracts the entry procedure name like the root command and prints
it as a C preprocessor define, -DMAIN_PROCEDURE_NAME=<name>. No escaping is
applied to the name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.extract(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, irscan.CompileFlag(a.cfg.Macro(), name))
			return nil
		},
	}

	cmd.Flags().String("macro", "", "macro name to define (default MAIN_PROCEDURE_NAME)")
	_ = a.v.BindPFlag("macro_name", cmd.Flags().Lookup("macro"))

	return cmd
}
