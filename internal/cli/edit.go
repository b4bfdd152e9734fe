/*
PURPOSE:
  Defines the 'edit' subcommand.
  Opens the full-screen script editor.

REQUIREMENTS:
  User-specified:
  - Edit a shell script with syntax highlighting.
  - Export is present but does nothing yet.

  Implementation-discovered:
  - Log output would corrupt the alternate screen, so editor events are
    reported after the program exits.

ARCHITECTURE INTEGRATION:
  - Calls: internal/editor.Run()

ERROR HANDLING:
  - Returns error without a terminal on stdin, if --file cannot be read,
    or if the program fails.

USAGE:
  solver-radar edit
  solver-radar edit --file build.sh

RELATED FILES:
  - internal/editor/model.go
*/

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daryltucker/solver-radar/internal/editor"
	"github.com/daryltucker/solver-radar/internal/output"
)

var scriptFile string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the script editor",
	Long: `Opens a terminal editor seeded with a sample bash script (or --file).
ctrl+r toggles the highlighted preview, ctrl+s exports (not implemented yet),
ctrl+q quits. The buffer is never written back to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("edit needs an interactive terminal")
		}

		cfg := editor.DefaultConfig()
		if scriptFile != "" {
			data, err := os.ReadFile(scriptFile)
			if err != nil {
				return fmt.Errorf("failed to read script file: %w", err)
			}
			cfg.Text = string(data)
		}

		changes, exports := 0, 0
		cfg.OnChange = func(string) { changes++ }
		cfg.OnExport = func(string) { exports++ }

		text, err := editor.Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		output.Logger.Info("Editor closed", "changes", changes, "exports", exports, "bytes", len(text))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&scriptFile, "file", "f", "", "Script to open instead of the sample")
}
