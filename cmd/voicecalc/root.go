package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"voice-calculator/internal/calculator"
	"voice-calculator/internal/remote"
)

// options are the persistent flags shared by every command.
type options struct {
	output   string
	remote   string
	timeout  time.Duration
	logLevel string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "voicecalc",
		Short: "voicecalc answers spoken arithmetic and unit conversions",
		Long: `voicecalc reads natural-language math such as "what is 25 times 4" or
"convert 5 km to miles" and answers with a value and a short explanation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.output); err != nil {
				return err
			}
			logger, err := newLogger(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	// Persistent flags (available to all commands)
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&opts.remote, "remote", "", "Base URL of a calculator service to ask about unrecognized phrases")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "remote-timeout", 3*time.Second, "Timeout for remote evaluation")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	cmd.AddCommand(
		newEvalCmd(opts),
		newToolsCmd(opts),
		newConvertCmd(opts),
		newUnitsCmd(opts),
		newParseCmd(opts),
		newListenCmd(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger writes human-readable logs to stderr so stdout stays clean for
// answers.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// service builds the evaluation service, with a remote fallback when
// --remote is set.
func (o *options) service() (*calculator.Service, error) {
	if o.remote == "" {
		return calculator.NewService(nil), nil
	}

	client, err := remote.NewClient(remote.Config{
		BaseURL: o.remote,
		Timeout: o.timeout,
	}, o.logger)
	if err != nil {
		return nil, fmt.Errorf("creating remote client: %w", err)
	}
	return calculator.NewService(client), nil
}
