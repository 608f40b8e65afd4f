// Package cli wires the taskai command tree.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:     "taskai",
	Short:   "Generate and track AI-planned project backlogs",
	Long:    `Taskai turns a free-text specification into a YAML task backlog via a generative model, then answers which tasks are ready to start and whether the backlog is internally consistent.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(markDoneCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(schemaCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
