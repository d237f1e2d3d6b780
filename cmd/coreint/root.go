package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coregx/coreint/fields"
	"github.com/coregx/coreint/kernel"
	"github.com/coregx/coreint/scan"
)

// options holds the flags shared by every subcommand.
type options struct {
	engine    string
	threshold int
	logLevel  string
	plain     bool

	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "coreint",
		Short:         "Parse and scan unsigned decimal integers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.engine, "engine", kernel.EngineAuto.String(), "chunk engine: auto, lanes or scalar")
	flags.IntVar(&opts.threshold, "short-threshold", kernel.DefaultShortInputThreshold, "largest input parsed with the byte loop (1-19)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.plain, "plain", false, "disable styled output even on a terminal")

	cmd.AddCommand(
		newParseCommand(opts),
		newScanCommand(opts),
		newCPUCommand(opts),
	)
	return cmd
}

// kernelConfig builds and validates the parser configuration from flags.
func (o *options) kernelConfig() (kernel.Config, error) {
	engine, err := kernel.ParseEngine(o.engine)
	if err != nil {
		return kernel.Config{}, err
	}
	cfg := kernel.Config{Engine: engine, ShortInputThreshold: o.threshold}
	if err := cfg.Validate(); err != nil {
		return kernel.Config{}, err
	}
	return cfg, nil
}

// setupLogging builds the command's zap logger and hands it to the
// library packages.
func (o *options) setupLogging() error {
	level, err := zapcore.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	o.logger = logger
	scan.SetLogger(logger.Named("scan"))
	fields.SetLogger(logger.Named("fields"))
	return nil
}
