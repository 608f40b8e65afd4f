package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskai/taskai/internal/backlog"
	"github.com/taskai/taskai/internal/display"
)

var nextCmd = &cobra.Command{
	Use:   "next <backlog-file>",
	Short: "List tasks that are ready to work on",
	Long:  `List the tasks whose state is Todo and whose dependencies are all Done.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := backlog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Print(display.ReadyTasks(backlog.ReadyTasks(b)))
		return nil
	},
}
