package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/pillar-calculator/internal/buildinfo"
	"github.com/rpgo/pillar-calculator/internal/calculation"
	"github.com/rpgo/pillar-calculator/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	debug   bool
	logFile string
	cleanup func() error
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "pillarcalc",
		Short:        "Compare investing directly in stocks with a 3a pillar account",
		SilenceUsage: true,
		Version:      buildinfo.String(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogging(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.cleanup != nil {
				return opts.cleanup()
			}
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging (stderr unless --log-file is set)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")

	cmd.AddCommand(compareCmd(opts))
	cmd.AddCommand(projectCmd(opts))
	cmd.AddCommand(sweepCmd(opts))
	cmd.AddCommand(serveCmd(opts))
	cmd.AddCommand(formatsCmd())
	cmd.AddCommand(configCmd())
	return cmd
}

// setupLogging installs the process logger. Without --debug or --log-file logs are discarded.
func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	if !o.debug && o.logFile == "" {
		return nil
	}
	cleanup, err := logger.Setup(logger.Config{
		Path:   o.logFile,
		Writer: cmd.ErrOrStderr(),
		Debug:  o.debug,
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	o.cleanup = cleanup
	if path := logger.Path(); path != "" {
		logger.L().Info("logging.started", "file", path, "command", cmd.Name())
	}
	return nil
}

func (o *rootOptions) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.Debug = o.debug
	engine.SetLogger(calculation.NewSlogLogger(logger.L()))
	return engine
}
