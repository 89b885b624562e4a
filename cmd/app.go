package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/user/bark/internal/commands"
	"github.com/user/bark/internal/config"
	"github.com/user/bark/internal/db"
	"github.com/user/bark/internal/menu"
	"github.com/user/bark/internal/notes"
	"github.com/user/bark/internal/sources"
)

// app holds everything a command needs for one process run.
type app struct {
	cfg      *config.Config
	store    *db.Store
	github   *sources.GitHub
	notes    *notes.Summarizer
	closeLog func() error
}

// openApp loads config, sets up logging, opens the store and makes sure the
// bookmarks table exists.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog := config.SetupLogger(cfg.LogPath(), config.ParseLevel(cfg.Log.Level))
	slog.SetDefault(logger)

	store, err := db.Open(cfg.DBPath())
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := commands.NewCreateBookmarksTable(store).Execute(ctx, nil); err != nil {
		store.Close()
		closeLog()
		return nil, fmt.Errorf("failed to prepare database: %w", err)
	}

	return &app{
		cfg:      cfg,
		store:    store,
		github:   sources.NewGitHub(cfg.GitHub.APIURL, cfg.GitHub.Timeout, cfg.GitHub.PerPage),
		notes:    notes.NewSummarizer(cfg.LLM, notes.NewReader(cfg.Reader.URL, cfg.Reader.Timeout)),
		closeLog: closeLog,
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		slog.Error("closing database", "error", err)
	}
	a.closeLog()
}

// runCommand opens the app, executes one command and prints its result.
func runCommand(cmd *cobra.Command, build func(a *app) commands.Command, data commands.Data) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := build(a).Execute(cmd.Context(), data)
	if err != nil {
		return err
	}
	return menu.Render(cmd.OutOrStdout(), res)
}
