/*
PURPOSE:
  Defines the 'render' subcommand.
  Aggregates one COP and one CSP result file and writes the report files.

REQUIREMENTS:
  User-specified:
  - Render both radar plots from files given on the command line.
  - Flags override the config file.

  Implementation-discovered:
  - A missing class renders as an empty plot, with a warning.
  - Overrides are re-validated, since flags bypass config.Load.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if a file cannot be read or parsed, or a writer fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Override -> Validate -> Engine.Run -> Summary.

USAGE:
  solver-radar render --cop cop.json --csp csp.json -o ./out

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/runner.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-radar/internal/engine"
	"github.com/daryltucker/solver-radar/internal/output"
)

var (
	copFile           string
	cspFile           string
	outputOverride    string
	formatsOverride   []string
	solversOverride   []string
	timeLimitOverride float64
	baseName          string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Aggregate result files and write radar chart reports",
	Long: `Reads a COP and a CSP benchmark result file, counts per solver
configuration how often it found a solution, and writes the radar charts.

Output formats (--formats or 'formats' in the config):
  json     the chart data, as served by the dashboard API
  csv      one row per class, solver and category
  msgpack  the chart data in MessagePack
  html     a self-contained page with both radar plots
  svg/png  one profile chart image per class`,
	Example: `  # Render with defaults (json + html in the current directory)
  solver-radar render --cop cop.json --csp csp.json

  # Every format, into ./out, named results.*
  solver-radar render --cop cop.json --csp csp.json -o out --name results \
    --formats json,csv,msgpack,html,svg,png

  # Compare other configurations
  solver-radar render --cop cop.json --csp csp.json --solvers DEFAULT,LCG,VSIDS`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig

		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if len(formatsOverride) > 0 {
			cfg.Formats = formatsOverride
		}
		if len(solversOverride) > 0 {
			cfg.Solvers = solversOverride
		}
		if timeLimitOverride > 0 {
			cfg.TimeLimit = timeLimitOverride
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if copFile == "" || cspFile == "" {
			output.Warning(out, "both --cop and --csp are expected; missing classes render empty")
		}

		res, err := engine.Run(cmd.Context(), cfg, engine.Inputs{
			COP:      copFile,
			CSP:      cspFile,
			BaseName: baseName,
		})
		if err != nil {
			return err
		}

		output.PrintSummary(out, res.Report)
		for _, f := range res.Files {
			output.Success(out, "Wrote %s", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&copFile, "cop", "", "COP result file (.json)")
	renderCmd.Flags().StringVar(&cspFile, "csp", "", "CSP result file (.json)")
	renderCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for report files")
	renderCmd.Flags().StringSliceVar(&formatsOverride, "formats", nil, "Comma-separated output formats")
	renderCmd.Flags().StringSliceVar(&solversOverride, "solvers", nil, "Comma-separated solver configuration names to compare")
	renderCmd.Flags().Float64Var(&timeLimitOverride, "time-limit", 0, "Time limit in seconds used for absent timing fields")
	renderCmd.Flags().StringVar(&baseName, "name", "", "Base name of the report files (default \"radar\")")
}
