package cmd

import (
	"github.com/spf13/cobra"

	"todolist.com/todolist/internal/ui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive task board",
	Long: "Opens the terminal task board. Its tasks live only in memory for " +
		"the session and are not sent to the task API.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run()
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
