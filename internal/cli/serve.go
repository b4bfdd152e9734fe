/*
PURPOSE:
  Defines the 'serve' subcommand.
  Runs the browser dashboard with one upload slot per problem class.

REQUIREMENTS:
  User-specified:
  - Upload a COP and a CSP file and view both radar plots.

  Implementation-discovered:
  - Files can be preloaded from the command line.
  - Stops cleanly when the command context is canceled (Ctrl-C).

ARCHITECTURE INTEGRATION:
  - Calls: internal/server.New(), internal/engine.LoadAll()

ERROR HANDLING:
  - A preload failure aborts before listening.
  - Returns listener errors other than a graceful close.

IMPLEMENTATION RULES:
  - Setup flags in init().

USAGE:
  solver-radar serve --addr :8080

RELATED FILES:
  - internal/server/server.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-radar/internal/engine"
	"github.com/daryltucker/solver-radar/internal/model"
	"github.com/daryltucker/solver-radar/internal/output"
	"github.com/daryltucker/solver-radar/internal/server"
)

var (
	addrOverride string
	preloadCOP   string
	preloadCSP   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload dashboard",
	Example: `  solver-radar serve
  solver-radar serve --addr :9000 --cop cop.json --csp csp.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		if addrOverride != "" {
			cfg.ListenAddr = addrOverride
		}

		srv := server.New(cfg)
		if err := engine.LoadAll(cmd.Context(), srv.Workspace(), map[model.ProblemClass]string{
			model.ClassCOP: preloadCOP,
			model.ClassCSP: preloadCSP,
		}); err != nil {
			return err
		}

		output.Success(cmd.OutOrStdout(), "Dashboard at http://%s/", cfg.ListenAddr)
		return srv.ListenAndServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&addrOverride, "addr", "", "Listen address (overrides listen_addr)")
	serveCmd.Flags().StringVar(&preloadCOP, "cop", "", "Preload a COP result file")
	serveCmd.Flags().StringVar(&preloadCSP, "csp", "", "Preload a CSP result file")
}
