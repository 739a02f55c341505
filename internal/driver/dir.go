package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"scooter/internal/diag"
	"scooter/internal/project"
	"scooter/internal/source"
	"scooter/internal/trace"
)

// ListSources возвращает отсортированный список всех *.sc файлов в директории.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(path, project.SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// CompileDir compiles every source file under dir as an independent unit,
// up to opts.Jobs at a time. Results are in ListSources order. A file that
// cannot be read yields a Result carrying an IOLoadFileError diagnostic.
// The returned error is only for listing failures and cancellation.
func CompileDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "compile-dir")
	defer span.End(dir)

	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен на запись: всё грузим заранее, воркеры только читают
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		ids[i], loadErrs[i] = fileSet.Load(path)
		if loadErrs[i] != nil {
			// пустой файл-заглушка, чтобы диагностике было на что указывать
			ids[i] = fileSet.Add(path, nil, 0)
		}
		notify(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				results[i] = loadFailure(fileSet, ids[i], loadErrs[i], opts)
				return nil
			}
			results[i] = CompileFile(gctx, fileSet, ids[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func loadFailure(fs *source.FileSet, id source.FileID, err error, opts Options) *Result {
	path := fs.Get(id).Path
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, "failed to load "+path+": "+err.Error()))
	notify(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
	return &Result{Path: path, FileSet: fs, FileID: id, Bag: bag}
}

// Summary counts results by outcome.
type Summary struct {
	Units, Failed, Cached, Diagnostics int
}

func Summarize(results []*Result) Summary {
	var s Summary
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Units++
		s.Diagnostics += r.Bag.Len()
		if r.Failed() {
			s.Failed++
		}
		if r.Cached {
			s.Cached++
		}
	}
	return s
}
