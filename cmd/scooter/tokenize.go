package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scooter/internal/diagfmt"
	"scooter/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.sc",
		Short: "Tokenize a scooter source file",
		Long:  `Tokenize breaks down a scooter source file into its constituent tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  traced(runTokenize),
	}
	cmd.Flags().String("tokens", "pretty", "token output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("tokens")
	if err != nil {
		return fmt.Errorf("failed to get tokens flag: %w", err)
	}
	opts, err := readOutputOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], opts.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, токены в stdout
	if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts); err != nil {
		return err
	}

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errFailed
	}
	return nil
}
