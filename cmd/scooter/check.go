package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [flags] <file.sc|directory>",
		Short: "Check scooter sources without writing IR",
		Long:  `Check runs the full front-end, lowering included, and reports diagnostics`,
		Args:  cobra.ExactArgs(1),
		RunE:  traced(runCheck),
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := readOutputOptions(cmd)
	if err != nil {
		return err
	}
	fs, results, err := compileTarget(cmd, args[0], opts)
	if err != nil {
		return err
	}
	reportErr := report(cmd, fs, results, opts)
	// сводка печатается и при ошибках, errFailed только задаёт код выхода
	if !opts.quiet && (reportErr == nil || errors.Is(reportErr, errFailed)) {
		printSummary(cmd.OutOrStdout(), "checked", results)
	}
	return reportErr
}
