package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/bark/internal/commands"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a bookmark",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(a *app) commands.Command {
			return commands.NewDeleteBookmark(a.store)
		}, commands.Data{"id": args[0]})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
