package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"concatident/internal/diag"
	"concatident/internal/source"
	"concatident/internal/trace"
)

// ListTemplates returns the sorted template files under dir. Directories the
// go tool ignores (hidden, _-prefixed, vendor, testdata) are skipped below dir.
func ListTemplates(dir, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every template under dir in parallel. Results are in the
// order of ListTemplates. A file that fails to load gets an ExpLoadFailed
// diagnostic instead of aborting the run; only cancellation returns an error.
func ExpandDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	opts = opts.withDefaults()
	files, err := ListTemplates(dir, opts.Suffix)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tr := trace.FromContext(ctx)
	sp := trace.Begin(tr, trace.ScopeDriver, "expand-dir", trace.SpanFromContext(ctx))
	defer sp.WithExtra("files", strconv.Itoa(len(files))).End(dir)
	ctx = trace.WithSpan(ctx, sp.ID())

	// FileSet заполняется до старта воркеров: дальше он только читается
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	stop := opts.Timer.Begin("load")
	for i, path := range files {
		opts.Progress.OnEvent(Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileIDs[i], loadErrs[i] = fileSet.Load(path)
		if loadErrs[i] != nil {
			// пустой виртуальный файл, чтобы диагностике было к чему привязаться
			fileIDs[i] = fileSet.AddVirtual(path, nil)
		}
	}
	stop(strconv.Itoa(len(files)) + " files")

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.ExpLoadFailed, source.Span{File: fileIDs[i]}, "failed to load "+path+": "+loadErrs[i].Error()))
				results[i] = &Result{Path: path, FileID: fileIDs[i], Bag: bag}
				opts.Progress.OnEvent(Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErrs[i]})
				return nil
			}

			started := time.Now()
			opts.Progress.OnEvent(Event{File: path, Stage: StageExpand, Status: StatusWorking})
			res, err := ExpandSource(gctx, fileSet, fileIDs[i], opts)
			if err != nil {
				return err
			}
			results[i] = res
			status := StatusDone
			switch {
			case !res.OK():
				status = StatusError
			case res.Cached:
				status = StatusCached
			}
			opts.Progress.OnEvent(Event{File: path, Stage: StageExpand, Status: status, Elapsed: time.Since(started)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
