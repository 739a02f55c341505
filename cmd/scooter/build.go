package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"scooter/internal/driver"
	"scooter/internal/ir"
	"scooter/internal/project"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [file.sc|directory]",
		Short: "Build scooter sources into IR",
		Long: `Build compiles a file or directory into IR files. Without a path it
uses scooter.toml, searched upward from the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: traced(runBuild),
	}
	cmd.Flags().String("emit", project.EmitIR, "output form (ir|msgpack)")
	cmd.Flags().StringP("out", "o", "build", "output directory (- for stdout)")
	return cmd
}

// buildPlan is what to compile and where to put it.
type buildPlan struct {
	path   string
	outDir string
	emit   string
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts, err := readOutputOptions(cmd)
	if err != nil {
		return err
	}
	plan, err := planBuild(cmd, args)
	if err != nil {
		return err
	}

	fs, results, err := compileTarget(cmd, plan.path, opts)
	if err != nil {
		return err
	}
	reportErr := report(cmd, fs, results, opts)
	if reportErr != nil && !errors.Is(reportErr, errFailed) {
		return reportErr
	}

	for _, r := range results {
		if r.Root == nil {
			continue
		}
		if err := writeOutput(cmd.OutOrStdout(), r, plan); err != nil {
			return err
		}
	}
	if !opts.quiet && plan.outDir != "-" {
		printSummary(cmd.OutOrStdout(), "built", results)
	}
	return reportErr
}

func planBuild(cmd *cobra.Command, args []string) (buildPlan, error) {
	emit, err := cmd.Flags().GetString("emit")
	if err != nil {
		return buildPlan{}, fmt.Errorf("failed to get emit flag: %w", err)
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return buildPlan{}, fmt.Errorf("failed to get out flag: %w", err)
	}
	plan := buildPlan{outDir: out, emit: emit}

	if len(args) == 1 {
		plan.path = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return plan, err
		}
		manifest, err := project.LoadManifest(wd)
		if err != nil {
			return plan, err
		}
		if plan.path, err = manifest.MainPath(); err != nil {
			return plan, err
		}
		// флаги важнее манифеста
		if !cmd.Flags().Changed("emit") {
			plan.emit = manifest.Config.Build.Emit
		}
		if !cmd.Flags().Changed("out") {
			plan.outDir = manifest.OutDir()
		}
	}

	switch plan.emit {
	case project.EmitIR, project.EmitMsgpack:
	default:
		return plan, fmt.Errorf("unknown emit kind %q (expected ir|msgpack)", plan.emit)
	}
	return plan, nil
}

// outputName maps unit.sc to unit.ir or unit.irpk.
func outputName(path, emit string) string {
	base := strings.TrimSuffix(filepath.Base(path), project.SourceExt)
	if emit == project.EmitMsgpack {
		return base + ".irpk"
	}
	return base + ".ir"
}

func writeOutput(stdout io.Writer, r *driver.Result, plan buildPlan) error {
	encode := ir.Dump
	if plan.emit == project.EmitMsgpack {
		encode = ir.Encode
	}
	if plan.outDir == "-" {
		return encode(stdout, r.Root)
	}

	if err := os.MkdirAll(plan.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	target := filepath.Join(plan.outDir, outputName(r.Path, plan.emit))
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := encode(f, r.Root); err != nil {
		return errors.Join(fmt.Errorf("write %s: %w", target, err), f.Close())
	}
	return f.Close()
}
