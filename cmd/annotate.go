package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/bark/internal/commands"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Write notes for bookmarks that have none",
	Long:  "Read each bookmarked page and ask the configured LLM for a one-sentence note.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(a *app) commands.Command {
			return commands.NewAnnotate(a.store, a.notes)
		}, nil)
	},
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
