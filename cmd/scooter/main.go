package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scooter/internal/version"
)

// errFailed означает, что диагностика уже выведена и нужен только код выхода.
var errFailed = errors.New("compilation failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scooter",
		Short:         "Scooter language front-end",
		Long:          `Scooter compiles .sc sources to three-address IR`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.String("format", "pretty", "diagnostics format (pretty|short|json)")
	pf.Int("jobs", 0, "max parallel workers for directories (0=auto)")
	pf.Bool("cache", false, "reuse IR from the on-disk cache")
	pf.Bool("no-main", false, "do not require fn main() (library units)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file")
	pf.String("exec-trace", "", "write a runtime execution trace to file")
	return root
}

// main runs the root command and maps failures to exit status 1.
func main() {
	os.Exit(run(newRootCmd(), os.Args[1:]))
}

func run(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		}
		return 1
	}
	return 0
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
