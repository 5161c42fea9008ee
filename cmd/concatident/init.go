package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"concatident/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a concatident.toml manifest",
	Long: `Init writes a concatident.toml with the default settings into [path], or
into the current directory when [path] is omitted. A missing directory is
created. An existing manifest is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	if st, err := os.Stat(abs); err == nil && !st.IsDir() {
		return fmt.Errorf("%q is not a directory", abs)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	path, err := project.WriteDefault(abs)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	}
	return nil
}
