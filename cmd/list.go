package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/bark/internal/commands"
	"github.com/user/bark/internal/menu"
)

var (
	listBy     string
	jsonOutput bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks",
	Long:  "List all bookmarks sorted by date added (default), title or id.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch listBy {
		case commands.OrderByDate, commands.OrderByTitle, commands.OrderByID:
		case "date":
			listBy = commands.OrderByDate
		default:
			return fmt.Errorf("unknown sort column %q (date, title, id)", listBy)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := commands.NewListBookmarks(a.store, listBy).Execute(cmd.Context(), nil)
		if err != nil {
			return err
		}

		if jsonOutput {
			data, err := json.MarshalIndent(res.Bookmarks, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		return menu.Render(cmd.OutOrStdout(), res)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listBy, "by", "b", "date", "Sort by date, title or id")
	listCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}
