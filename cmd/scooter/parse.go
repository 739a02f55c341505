package main

import (
	"fmt"
	"regexp"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"scooter/internal/ast"
	"scooter/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.sc",
		Short: "Parse a scooter source file",
		Long:  `Parse checks the syntax of a scooter source file and optionally dumps its AST`,
		Args:  cobra.ExactArgs(1),
		RunE:  traced(runParse),
	}
	cmd.Flags().Bool("dump", false, "dump the AST")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}
	opts, err := readOutputOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], opts.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dump {
		fmt.Fprintln(out, dumpAST(result.AST))
	} else if !opts.quiet {
		fmt.Fprintf(out, "%s: %d items\n", result.File.Path, len(result.AST.Items))
	}
	if result.Bag.HasErrors() {
		return errFailed
	}
	return nil
}

var spanFields = regexp.MustCompile(`Span$`)

// dumpAST renders the tree without spans, which only add noise.
func dumpAST(file *ast.File) string {
	opts := litter.Options{
		HidePrivateFields: true,
		StripPackageNames: true,
		FieldExclusions:   spanFields,
	}
	return opts.Sdump(file)
}
