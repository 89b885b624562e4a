package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/bark/internal/commands"
)

var (
	addTitle     string
	addURL       string
	addNotes     string
	addTimestamp string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a bookmark",
	Long:  "Add a bookmark with a title, URL and optional notes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := commands.Data{"title": addTitle, "url": addURL}
		if addNotes != "" {
			data["notes"] = addNotes
		}
		if addTimestamp != "" {
			data["timestamp"] = addTimestamp
		}
		return runCommand(cmd, func(a *app) commands.Command {
			return commands.NewAddBookmark(a.store)
		}, data)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Bookmark title")
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "Bookmark URL")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Optional notes")
	addCmd.Flags().StringVar(&addTimestamp, "timestamp", "", "Date added, RFC3339 (default: now)")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(addCmd)
}
