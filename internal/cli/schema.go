package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskai/taskai/internal/backlog"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the backlog document JSON schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(backlog.SchemaJSON())
		return nil
	},
}
