package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.go.in|directory]",
	Short: "Verify that generated files are up to date",
	Long: `Check expands templates in memory and fails when a generated file is missing
or differs from the expansion. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExpansion(cmd, args, outputCheck)
	},
}

func init() {
	addExpandFlags(checkCmd)
}
