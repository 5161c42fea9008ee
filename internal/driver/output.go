package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"time"

	"concatident/internal/diag"
	"concatident/internal/source"
	"concatident/internal/tree"
)

// OutputPath maps a template path to the generated file: foo.go.in → foo.go.
func OutputPath(path, suffix string) string {
	return strings.TrimSuffix(path, suffix) + ".go"
}

// Header is the first line of a generated file. It matches the pattern Go tools
// use to recognise generated code.
func Header(templatePath string) string {
	return fmt.Sprintf("// Code generated by concatident from %s. DO NOT EDIT.\n\n", filepath.Base(templatePath))
}

func render(file *source.File, f *tree.File, opts Options, r diag.Reporter) []byte {
	var buf bytes.Buffer
	if opts.Header {
		buf.WriteString(Header(file.Path))
	}
	// запись в bytes.Buffer не падает
	_ = tree.PrintFile(&buf, f)
	out := buf.Bytes()
	if !opts.Gofmt {
		return out
	}

	started := time.Now()
	opts.Progress.OnEvent(Event{File: file.Path, Stage: StageFormat, Status: StatusWorking})
	stop := opts.Timer.Begin("gofmt")
	formatted, err := format.Source(out)
	stop("")
	// невалидный Go не ошибка файла: стадия всё равно завершается
	opts.Progress.OnEvent(Event{File: file.Path, Stage: StageFormat, Status: StatusDone, Elapsed: time.Since(started)})
	if err != nil {
		diag.ReportWarning(r, diag.ExpFormatFailed, source.Span{File: file.ID},
			"expanded output is not valid Go, writing it unformatted: "+err.Error()).Emit()
		return out
	}
	return formatted
}

// WriteResult writes res.Output next to the template. It does nothing for a
// failed result. The write goes through a temp file and a rename.
func WriteResult(res *Result, suffix string) (string, error) {
	if !res.OK() || res.Output == nil {
		return "", nil
	}
	target := OutputPath(res.Path, suffix)
	if current, err := os.ReadFile(target); err == nil && bytes.Equal(current, res.Output) {
		return target, nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".concatident-*")
	if err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(res.Output); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}

// CheckResult compares res.Output with the file on disk and reports
// ExpStaleOutput into res.Bag when they differ. It reports whether the
// generated file is up to date.
func CheckResult(res *Result, suffix string) (bool, error) {
	if !res.OK() {
		return false, nil
	}
	target := OutputPath(res.Path, suffix)
	current, err := os.ReadFile(target)
	switch {
	case errors.Is(err, os.ErrNotExist):
		res.Bag.Add(diag.New(diag.SevError, diag.ExpStaleOutput, source.Span{File: res.FileID},
			fmt.Sprintf("%s has not been generated", target)))
		return false, nil
	case err != nil:
		return false, fmt.Errorf("check %s: %w", target, err)
	}
	if !bytes.Equal(current, res.Output) {
		res.Bag.Add(diag.New(diag.SevError, diag.ExpStaleOutput, source.Span{File: res.FileID},
			fmt.Sprintf("%s is out of date, run `concatident expand`", target)))
		return false, nil
	}
	return true, nil
}

// ExpandFile loads path into a fresh FileSet and expands it.
func ExpandFile(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	res, err := ExpandSource(ctx, fs, id, opts)
	if err != nil {
		return fs, nil, err
	}
	return fs, res, nil
}
