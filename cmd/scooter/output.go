package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scooter/internal/diag"
	"scooter/internal/diagfmt"
	"scooter/internal/source"
)

// outputOptions collects the persistent flags that shape what is printed.
type outputOptions struct {
	color          bool
	quiet          bool
	timings        bool
	format         string
	maxDiagnostics int
	jobs           int
	cache          bool
	noMain         bool
}

func readOutputOptions(cmd *cobra.Command) (outputOptions, error) {
	flags := cmd.Root().PersistentFlags()
	var opts outputOptions

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(colorFlag) {
	case "on":
		opts.color = true
	case "off":
		opts.color = false
	case "auto", "":
		opts.color = writerIsTerminal(cmd.ErrOrStderr())
	default:
		return opts, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}

	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.maxDiagnostics < 0 {
		return opts, fmt.Errorf("--max-diagnostics must not be negative")
	}
	if opts.jobs, err = flags.GetInt("jobs"); err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if opts.cache, err = flags.GetBool("cache"); err != nil {
		return opts, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if opts.noMain, err = flags.GetBool("no-main"); err != nil {
		return opts, fmt.Errorf("failed to get no-main flag: %w", err)
	}
	if opts.format, err = flags.GetString("format"); err != nil {
		return opts, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch opts.format {
	case "pretty", "short", "json":
	default:
		return opts, fmt.Errorf("unknown diagnostics format: %s", opts.format)
	}
	return opts, nil
}

// writerIsTerminal reports whether w is a file attached to a terminal.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// printDiagnostics renders bag to w in the selected format. JSON is always
// printed, even for an empty bag, so that consumers get a document.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts outputOptions) error {
	if opts.format != "json" && bag.Len() == 0 {
		return nil
	}
	base, _ := os.Getwd()
	switch opts.format {
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			BaseDir:          base,
			IncludeNotes:     true,
		})
	case "short":
		diagfmt.Short(w, bag, fs, diagfmt.PrettyOpts{Color: opts.color, BaseDir: base})
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     opts.color,
			Context:   1,
			BaseDir:   base,
			ShowNotes: true,
		})
	}
	return nil
}
