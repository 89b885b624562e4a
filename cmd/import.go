package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/bark/internal/commands"
)

var preserveTimestamps bool

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import bookmarks from other services",
}

var importGitHubCmd = &cobra.Command{
	Use:   "github <username>",
	Short: "Import a user's starred GitHub repositories",
	Long: `Fetch every repository <username> starred on GitHub, page by page, and add
each one as a bookmark. If a page fails, bookmarks from earlier pages are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(a *app) commands.Command {
			return commands.NewImportGitHubStars(a.store, a.github)
		}, commands.Data{
			"github_username":     args[0],
			"preserve_timestamps": preserveTimestamps,
		})
	},
}

func init() {
	importGitHubCmd.Flags().BoolVarP(&preserveTimestamps, "preserve-timestamps", "p", true, "Use the time each repository was starred as date added")
	importCmd.AddCommand(importGitHubCmd)
	rootCmd.AddCommand(importCmd)
}
