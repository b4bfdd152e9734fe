/*
PURPOSE:
  Defines the root Cobra command for the Solver Radar CLI.
  Handles global flags, configuration loading and logger setup.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config and --log-level.

  Implementation-discovered:
  - Every subcommand needs the loaded config, so loading happens once in
    PersistentPreRunE and the result is kept in appConfig.
  - main.go owns signal handling and passes its context in.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/solver-radar/main.go
  - Calls: Child commands (render, serve, edit, inspect, config)
  - Modifies: appConfig, output.Logger

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Cobra prints neither usage nor the error; main.go reports it once.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/solver-radar/main.go
  - internal/config/config.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-radar/internal/config"
	"github.com/daryltucker/solver-radar/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile  string
	logLevel string

	// appConfig is populated by PersistentPreRunE before any subcommand runs.
	appConfig *config.Config

	rootCmd = &cobra.Command{
		Use:   "solver-radar",
		Short: "Radar charts comparing constraint-solver configurations",
		Long: `Aggregates COP and CSP benchmark result files into per-configuration
outcome counts and renders them as radar charts, either as report files
('render') or in a browser dashboard ('serve').`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}
)

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	output.ConfigureLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	appConfig = cfg
	return nil
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./radar.yaml, ./radar.yml or ./radar.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}
