package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"concatident/internal/driver"
)

const cacheApp = "concatident"

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the expansion cache",
	Long:  "Remove every cached expansion result from the user cache directory.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache(cacheApp)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", cache.Dir(), err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cache.Dir())
	}
	return nil
}
