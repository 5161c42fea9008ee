package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"concatident/internal/diag"
	"concatident/internal/driver"
	"concatident/internal/observ"
	"concatident/internal/project"
	"concatident/internal/source"
	"concatident/internal/trace"
)

type outputMode uint8

const (
	outputWrite outputMode = iota
	outputCheck
	outputStdout
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] [file.go.in|directory]",
	Short: "Expand templates and write the generated Go files",
	Long: `Expand every concat_idents! invocation in a template, or in every template
under a directory, and write NAME.go next to NAME.go.in. Without arguments the
current directory is expanded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	addExpandFlags(expandCmd)
	expandCmd.Flags().Bool("stdout", false, "print expanded output instead of writing files")
	expandCmd.Flags().Bool("check", false, "fail if generated files are missing or out of date")
}

// addExpandFlags registers the flags shared by expand and check.
func addExpandFlags(cmd *cobra.Command) {
	addDiagFlags(cmd)
	cmd.Flags().Bool("gofmt", true, "format output with go/format (overrides the manifest)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	cmd.Flags().Int("max-depth", 0, "max expansion rounds per file (0=manifest value)")
	cmd.Flags().Bool("cache", false, "reuse results from the user cache directory")
	cmd.Flags().Bool("no-header", false, "omit the \"Code generated\" header")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return fmt.Errorf("failed to get stdout flag: %w", err)
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	mode := outputWrite
	switch {
	case toStdout && check:
		return fmt.Errorf("--stdout and --check cannot be used together")
	case toStdout:
		mode = outputStdout
	case check:
		mode = outputCheck
	}
	return runExpansion(cmd, args, mode)
}

// expansionSummary counts what finishResults did.
type expansionSummary struct {
	files   int
	written int
	cached  int
	stale   int
	failed  int
}

func runExpansion(cmd *cobra.Command, args []string, mode outputMode) error {
	defer dumpTraceOnPanic()

	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	st, err := os.Stat(target)
	if err != nil {
		return err
	}
	dir := target
	if !st.IsDir() {
		dir = filepath.Dir(target)
	}

	diagOpts, err := readDiagOptions(cmd)
	if err != nil {
		return err
	}
	opts, err := loadOptions(cmd, dir)
	if err != nil {
		return err
	}
	opts.MaxDiagnostics = diagOpts.max

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if showTimings {
		opts.Timer = observ.NewTimer()
	}

	ctx := cmd.Context()
	var (
		fs      *source.FileSet
		results []*driver.Result
		summary expansionSummary
	)
	if st.IsDir() {
		uiFlag, flagErr := cmd.Flags().GetString("ui")
		if flagErr != nil {
			return fmt.Errorf("failed to get ui flag: %w", flagErr)
		}
		ui, flagErr := readUIMode(uiFlag)
		if flagErr != nil {
			return flagErr
		}
		if mode != outputStdout && !quiet && shouldUseTUI(ui) {
			fs, results, summary, err = runExpandWithUI(ctx, dir, opts, mode)
		} else {
			fs, results, err = driver.ExpandDir(ctx, dir, opts)
			if err == nil {
				summary, err = finishResults(cmd.OutOrStdout(), results, opts, mode, nil)
			}
		}
	} else {
		var res *driver.Result
		fs, res, err = driver.ExpandFile(ctx, target, opts)
		if err == nil {
			results = []*driver.Result{res}
			summary, err = finishResults(cmd.OutOrStdout(), results, opts, mode, nil)
		}
	}
	if err != nil {
		return err
	}

	bag := diag.NewBag(0)
	for _, res := range results {
		if res != nil {
			bag.Merge(res.Bag)
		}
	}
	bag.Sort()
	if err := printDiagnostics(cmd.ErrOrStderr(), bag, fs, diagOpts, os.Args[1:]); err != nil {
		return err
	}

	human := diagOpts.format == "pretty" || diagOpts.format == "short"
	if !quiet && human {
		printSummary(cmd.ErrOrStderr(), summary, mode)
	}
	if showTimings {
		if err := printTimings(cmd.ErrOrStderr(), opts.Timer, !human); err != nil {
			return err
		}
	}

	if bag.HasErrors() {
		if activeTracer.Level() >= trace.LevelError {
			_ = trace.DumpRing(activeTracer, cmd.ErrOrStderr(), trace.FormatText)
		}
		return exitError{code: 1}
	}
	return nil
}

// loadOptions reads the manifest above dir, if any, and applies flag overrides.
func loadOptions(cmd *cobra.Command, dir string) (driver.Options, error) {
	cfg := project.DefaultConfig()
	manifest, ok, err := project.LoadManifest(dir)
	if err != nil {
		return driver.Options{}, err
	}
	if ok {
		cfg = manifest.Config
	}

	if cmd.Flags().Changed("gofmt") {
		gofmt, err := cmd.Flags().GetBool("gofmt")
		if err != nil {
			return driver.Options{}, fmt.Errorf("failed to get gofmt flag: %w", err)
		}
		cfg.Expand.Gofmt = gofmt
	}
	maxDepth, err := cmd.Flags().GetInt("max-depth")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-depth flag: %w", err)
	}
	if maxDepth > 0 {
		cfg.Expand.MaxDepth = maxDepth
	}

	opts, err := driver.OptionsFromConfig(cfg)
	if err != nil {
		return driver.Options{}, err
	}

	if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return driver.Options{}, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noHeader, err := cmd.Flags().GetBool("no-header")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get no-header flag: %w", err)
	}
	opts.Header = !noHeader

	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if useCache {
		if opts.Cache, err = driver.OpenDiskCache(cacheApp); err != nil {
			return driver.Options{}, fmt.Errorf("open cache: %w", err)
		}
	}
	return opts, nil
}

// finishResults writes, checks or prints each successful result. sink, if set,
// gets a write-stage event per file.
func finishResults(out io.Writer, results []*driver.Result, opts driver.Options, mode outputMode, sink driver.ProgressSink) (expansionSummary, error) {
	summary := expansionSummary{files: len(results)}
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Cached {
			summary.cached++
		}
		if !res.OK() {
			summary.failed++
			continue
		}
		status := driver.StatusDone
		switch mode {
		case outputStdout:
			if _, err := out.Write(res.Output); err != nil {
				return summary, err
			}
		case outputCheck:
			fresh, err := driver.CheckResult(res, opts.Suffix)
			if err != nil {
				return summary, err
			}
			if !fresh {
				summary.stale++
				status = driver.StatusError
			}
		default:
			path, err := driver.WriteResult(res, opts.Suffix)
			if err != nil {
				return summary, err
			}
			if path != "" {
				summary.written++
			}
		}
		if sink != nil {
			sink.OnEvent(driver.Event{File: res.Path, Stage: driver.StageWrite, Status: status})
		}
	}
	return summary, nil
}

func printSummary(w io.Writer, s expansionSummary, mode outputMode) {
	switch mode {
	case outputCheck:
		fmt.Fprintf(w, "checked %d templates: %d stale, %d failed\n", s.files, s.stale, s.failed)
	case outputWrite:
		fmt.Fprintf(w, "expanded %d templates: %d written, %d cached, %d failed\n", s.files, s.written, s.cached, s.failed)
	}
}
