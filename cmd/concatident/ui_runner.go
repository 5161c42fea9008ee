package main

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"concatident/internal/driver"
	"concatident/internal/source"
	"concatident/internal/ui"
)

type expandOutcome struct {
	fs      *source.FileSet
	results []*driver.Result
	summary expansionSummary
	err     error
}

// runExpandWithUI expands dir while a Bubble Tea program renders progress.
func runExpandWithUI(ctx context.Context, dir string, opts driver.Options, mode outputMode) (*source.FileSet, []*driver.Result, expansionSummary, error) {
	files, err := driver.ListTemplates(dir, opts.Suffix)
	if err != nil {
		return nil, nil, expansionSummary{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan expandOutcome, 1)

	go func() {
		sink := driver.ChannelSink{Ch: events}
		local := opts
		local.Progress = sink
		fs, results, err := driver.ExpandDir(ctx, dir, local)
		var summary expansionSummary
		if err == nil {
			summary, err = finishResults(io.Discard, results, opts, mode, sink)
		}
		outcomeCh <- expandOutcome{fs: fs, results: results, summary: summary, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("expanding "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	final, uiErr := program.Run()
	if uiErr != nil || ui.Interrupted(final) {
		cancel()
	}
	// UI мог завершиться раньше воркеров (Ctrl+C): дочитываем канал, чтобы они не заблокировались
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, outcome.summary, uiErr
	}
	return outcome.fs, outcome.results, outcome.summary, outcome.err
}
