package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/bark/internal/menu"
	"github.com/user/bark/internal/tui"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "bark",
	Short: "Personal bookmark manager",
	Long:  "Bark keeps bookmarks in a local SQLite database and can import the repositories you starred on GitHub.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(cmd.Context(), menu.Default(a.store, a.github, a.notes))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default: ~/.bark)")
}
