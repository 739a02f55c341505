package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"scooter/internal/diag"
	"scooter/internal/driver"
	"scooter/internal/source"
	"scooter/internal/ui"
)

// compileTarget compiles a single file or every source in a directory.
// Directories get a progress UI when stdout is a terminal.
func compileTarget(cmd *cobra.Command, path string, opts outputOptions) (*source.FileSet, []*driver.Result, error) {
	dopts := driver.Options{
		MaxDiagnostics: opts.maxDiagnostics,
		Jobs:           opts.jobs,
		Timings:        opts.timings,
		NoMain:         opts.noMain,
	}
	if opts.cache {
		cache, err := driver.OpenDiskCache("scooter")
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		dopts.Cache = cache
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		res, err := driver.CompilePath(cmd.Context(), path, dopts)
		if err != nil {
			return nil, nil, err
		}
		return res.FileSet, []*driver.Result{res}, nil
	}

	if opts.quiet || !writerIsTerminal(cmd.OutOrStdout()) {
		return driver.CompileDir(cmd.Context(), path, dopts)
	}
	files, err := driver.ListSources(path)
	if err != nil {
		return nil, nil, err
	}
	var (
		fs      *source.FileSet
		results []*driver.Result
	)
	err = ui.Run(cmd.OutOrStdout(), "compiling "+path, files, func(sink driver.ProgressSink) error {
		dopts.Progress = sink
		var runErr error
		fs, results, runErr = driver.CompileDir(cmd.Context(), path, dopts)
		return runErr
	})
	return fs, results, err
}

// report prints diagnostics and, if requested, timings for every result.
// It returns errFailed when any unit failed.
func report(cmd *cobra.Command, fs *source.FileSet, results []*driver.Result, opts outputOptions) error {
	errOut := cmd.ErrOrStderr()
	if opts.format == "json" {
		// один документ на весь запуск
		all := diag.NewBag(0)
		for _, r := range results {
			all.Merge(r.Bag)
		}
		if err := printDiagnostics(errOut, all, fs, opts); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if err := printDiagnostics(errOut, r.Bag, fs, opts); err != nil {
				return err
			}
		}
	}
	if opts.timings {
		printTimings(errOut, results)
	}

	if driver.Summarize(results).Failed > 0 {
		return errFailed
	}
	return nil
}

func printTimings(w io.Writer, results []*driver.Result) {
	for _, r := range results {
		if r.Timing == nil {
			continue
		}
		fmt.Fprintf(w, "== %s ==\n%s", r.Path, r.Timing.String())
	}
}

func printSummary(w io.Writer, verb string, results []*driver.Result) {
	s := driver.Summarize(results)
	fmt.Fprintf(w, "%s %d units: %d failed, %d cached, %d diagnostics\n",
		verb, s.Units, s.Failed, s.Cached, s.Diagnostics)
}
