package cmd

import (
	"context"
	"fmt"

	"scini/internal/app"
	"scini/pkg/logging"

	"github.com/spf13/cobra"
)

type runOptions struct {
	// noTUI runs the shell headless and logs what it observes.
	noTUI bool
	// debug enables verbose logging across the application.
	debug bool
	// configFree ignores the config files and runs on built-in defaults.
	configFree bool
	// logLevel is the threshold used when debug is off.
	logLevel string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the operator shell",
		Long: `Starts the SCINI operator shell. It can run in two modes:

1. Interactive TUI Mode (default):
   - Header, navigation drawer and one page at a time.
   - Press m for the menu, 1-9 to jump to a page, / to type a voice command,
     L for the activity log and ? for help.

2. Monitor Mode (using --no-tui flag):
   - Connects to the vehicle bus and follows network connectivity without a
     screen, logging every change until interrupted (Ctrl+C).

Configuration:
  scini loads configuration from ~/.config/scini/config.yaml and then
  ./.scini/config.yaml. Use --config-free to ignore both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "Run headless and log bus and network activity")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable general debug logging")
	cmd.Flags().BoolVar(&opts.configFree, "config-free", false, "Ignore configuration files and use defaults")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}

func runShell(cmd *cobra.Command, opts *runOptions) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	cfg := app.NewConfig(opts.noTUI, opts.debug, opts.configFree, rootCmd.Version)
	cfg.Level = level

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.NewApplication(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(ctx)
}
