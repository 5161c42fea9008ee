package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"concatident/internal/diagfmt"
	"concatident/internal/driver"
	"concatident/internal/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree [flags] file.go.in",
	Short: "Print the token tree of a template",
	Long: `Tree groups the tokens of a template by their brackets and shows which
name!(...) sequences are recognised as macro invocations`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().String("format", "pretty", "output format (pretty|outline|json)")
}

func runTree(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.BuildTree(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tree failed: %w", err)
	}
	if err := printLexDiagnostics(cmd, result.TokenizeResult); err != nil {
		return err
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Tree, result.FileSet)
	case "outline":
		return tree.Dump(cmd.OutOrStdout(), result.Tree.Nodes)
	case "json":
		return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
