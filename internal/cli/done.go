package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskai/taskai/internal/backlog"
)

var doneTaskID string

func init() {
	markDoneCmd.Flags().StringVar(&doneTaskID, "task", "", "ID of the task to mark as done")
	_ = markDoneCmd.MarkFlagRequired("task")
}

var markDoneCmd = &cobra.Command{
	Use:   "mark-done <backlog-file>",
	Short: "Mark a task as done",
	Long:  `Mark a single task as done and rewrite the backlog file atomically. The file is left untouched on any error.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := backlog.Load(args[0])
		if err != nil {
			return err
		}
		if err := b.MarkDone(doneTaskID); err != nil {
			return err
		}
		if err := backlog.Save(args[0], b); err != nil {
			return err
		}
		fmt.Printf("Task %s marked as done.\n", doneTaskID)
		return nil
	},
}
