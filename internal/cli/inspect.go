/*
PURPOSE:
  Defines the 'inspect' subcommand.
  Lists the solver configuration names present in result files.

REQUIREMENTS:
  User-specified:
  - Find out which names to pass to --solvers.

  Implementation-discovered:
  - Useful validation step before a render: a file that fails here fails
    there too.

ARCHITECTURE INTEGRATION:
  - Calls: internal/ingest.Decode(), internal/ingest.Survey()

ERROR HANDLING:
  - Unreadable or unparsable files are reported and skipped; the command
    fails if any file failed.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  solver-radar inspect cop.json csp.json
*/

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-radar/internal/ingest"
	"github.com/daryltucker/solver-radar/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "List solver configurations found in result files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var errs []error
		for _, path := range args {
			if err := inspectFile(cmd, path); err != nil {
				output.Warning(out, "%s: %v", path, err)
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	},
}

func inspectFile(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	instances, err := ingest.Decode(f)
	if err != nil {
		return err
	}

	stats := ingest.Survey(instances)
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Instances), strconv.Itoa(s.Solved)})
	}
	title := fmt.Sprintf("%s (%d instances)", filepath.Base(path), len(instances))
	fmt.Fprintln(cmd.OutOrStdout(), output.Table(title, []string{"solver", "instances", "solved"}, rows))
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
