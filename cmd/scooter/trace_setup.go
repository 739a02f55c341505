package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scooter/internal/prof"
	"scooter/internal/trace"
)

// setupTracing inspects trace-related flags and initializes the tracer.
// It returns a cleanup function and an error if initialization fails.
// On compilation failure cleanup dumps the ring buffer, if any, to stderr.
func setupTracing(cmd *cobra.Command) (func(runErr error), error) {
	flags := cmd.Root().PersistentFlags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(error) {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
	}
	if traceOutput == "" || traceOutput == "-" {
		cfg.Output = cmd.ErrOrStderr()
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	cleanup := func(runErr error) {
		if ring, ok := trace.Ring(tracer); ok && errors.Is(runErr, errFailed) {
			if err := ring.Dump(cmd.ErrOrStderr(), trace.FormatText); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}

func readProfileConfig(cmd *cobra.Command) (prof.Config, error) {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return cfg, fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("memprofile"); err != nil {
		return cfg, fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("exec-trace"); err != nil {
		return cfg, fmt.Errorf("failed to get exec-trace flag: %w", err)
	}
	return cfg, nil
}

// traced wraps a RunE so that the command body runs under the configured
// tracer and profiles.
func traced(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		profCfg, err := readProfileConfig(cmd)
		if err != nil {
			return err
		}
		if profCfg.Enabled() {
			session, err := prof.Start(profCfg)
			if err != nil {
				return err
			}
			defer func() {
				if stopErr := session.Stop(); stopErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "prof: %v\n", stopErr)
				}
			}()
		}

		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		defer func() { cleanup(err) }()
		ctx, span := trace.Start(cmd.Context(), trace.ScopeDriver, "cmd:"+cmd.Name())
		cmd.SetContext(ctx)
		defer func() {
			status := "ok"
			if err != nil {
				status = "failed"
			}
			span.End(status)
		}()
		return fn(cmd, args)
	}
}
