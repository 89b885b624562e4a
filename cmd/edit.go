package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/bark/internal/commands"
)

var (
	editField string
	editValue string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one field of a bookmark",
	Long:  "Change the title, url or notes of the bookmark with the given id.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(a *app) commands.Command {
			return commands.NewEditBookmark(a.store)
		}, commands.Data{
			"id":     args[0],
			"update": map[string]any{editField: editValue},
		})
	},
}

func init() {
	editCmd.Flags().StringVarP(&editField, "field", "f", "", "Field to change (title, url, notes)")
	editCmd.Flags().StringVarP(&editValue, "value", "v", "", "New value")
	editCmd.MarkFlagRequired("field")
	editCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(editCmd)
}
