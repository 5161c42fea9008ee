package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"concatident/internal/diag"
	"concatident/internal/diagfmt"
	"concatident/internal/source"
	"concatident/internal/version"
)

type diagOptions struct {
	format    string
	pathMode  diagfmt.PathMode
	color     bool
	withNotes bool
	context   int8
	max       int
}

// addDiagFlags registers the flags read by readDiagOptions.
func addDiagFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json|sarif)")
	cmd.Flags().String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")
	cmd.Flags().Bool("no-notes", false, "omit diagnostic notes and hints")
	cmd.Flags().Int8("context", 0, "source lines shown around each diagnostic")
}

func readDiagOptions(cmd *cobra.Command) (diagOptions, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return diagOptions{}, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json", "sarif":
	default:
		return diagOptions{}, fmt.Errorf("unknown format: %s", format)
	}
	pathStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return diagOptions{}, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathStr)
	if !ok {
		return diagOptions{}, fmt.Errorf("invalid --path-mode value %q", pathStr)
	}
	noNotes, err := cmd.Flags().GetBool("no-notes")
	if err != nil {
		return diagOptions{}, fmt.Errorf("failed to get no-notes flag: %w", err)
	}
	ctxLines, err := cmd.Flags().GetInt8("context")
	if err != nil {
		return diagOptions{}, fmt.Errorf("failed to get context flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return diagOptions{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	useColor, err := colorEnabled(cmd, os.Stderr)
	if err != nil {
		return diagOptions{}, err
	}
	return diagOptions{
		format:    format,
		pathMode:  pathMode,
		color:     useColor,
		withNotes: !noNotes,
		context:   ctxLines,
		max:       maxDiagnostics,
	}, nil
}

// printDiagnostics writes bag in the chosen format. Machine formats are
// written even when the bag is empty so that consumers always get a document.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts diagOptions, args []string) error {
	switch opts.format {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         opts.pathMode,
			Max:              opts.max,
			IncludeNotes:     opts.withNotes,
		})
	case "sarif":
		return diagfmt.Sarif(w, bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "concatident",
			ToolVersion:    version.Version,
			InvocationArgs: args,
		})
	}
	if bag.Len() == 0 {
		return nil
	}
	if opts.format == "short" {
		diagfmt.Short(w, bag, fs, opts.pathMode)
		return nil
	}
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     opts.color,
		Context:   opts.context,
		PathMode:  opts.pathMode,
		ShowNotes: opts.withNotes,
	})
	return nil
}
