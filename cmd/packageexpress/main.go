// packageexpress is an interactive shipping quote tool.
//
// Usage:
//
//	packageexpress [--config path] [--log-level level]
//
// Without --config the weight and size limits are fixed at 50 and the rate divisor at 100.
//
// Exit codes:
//   - 0: a quote was shown, or the package was rejected as too heavy or too big
//   - 1: configuration error, or input ended before the session finished
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"PackageExpress/internal/calculator"
	"PackageExpress/internal/config"
	"PackageExpress/internal/input"
	"PackageExpress/internal/logx"
	"PackageExpress/internal/recorder"
	"PackageExpress/internal/validation"
	"PackageExpress/internal/workflow"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the root command around the given streams so tests can drive a full session.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cmd := newRootCommand(in, out, errOut)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "packageexpress",
		Short:         "Estimate the cost of shipping a package with Package Express",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logLevel != "" {
				cfg.Log.Level = config.NormalizeLevel(logLevel)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			log := logx.New(errOut, cfg.Log.Level, cfg.Log.NoColor)
			log.Debug("config loaded", "path", cfgPath,
				"max_weight", cfg.Limits.MaxWeight,
				"max_dimensions", cfg.Limits.MaxDimensions,
				"divisor", cfg.Pricing.Divisor)

			rec := recorder.NewLogRecorder(log)
			defer rec.Close()

			wf := workflow.New(
				input.NewConsole(in, out, log),
				validation.NewStandard(cfg.Limits.MaxWeight, cfg.Limits.MaxDimensions),
				calculator.NewStandard(cfg.Pricing.Divisor),
				rec,
				out,
				log,
			)

			outcome, err := wf.Run(cmd.Context())
			if err != nil {
				return err
			}
			log.Debug("session finished", "outcome", outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML file overriding limits and pricing")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}
