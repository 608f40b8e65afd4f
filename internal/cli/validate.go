package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskai/taskai/internal/display"
	"github.com/taskai/taskai/internal/recovery"
)

var validateCmd = &cobra.Command{
	Use:   "validate <backlog-file>",
	Short: "Check a backlog for dangling dependencies and cycles",
	Long:  `Run a backlog document through the recovery pipeline and consistency checks: unique task ids, no dangling dependency references, no dependency cycles.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backlog file: %w", err)
		}
		b, err := recovery.Parse(string(data))
		if err != nil {
			return err
		}
		fmt.Print(display.ValidationOK(b.Project))
		return nil
	},
}
