package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/user/bark/internal/sources"
)

// ImportGitHubStars turns every repository a GitHub user has starred into a
// bookmark, one page at a time.
//
// Input keys: github_username, preserve_timestamps. A fetch or parse failure
// stops the import; bookmarks added from earlier pages are kept.
type ImportGitHubStars struct {
	stars sources.StarFetcher
	add   Command
}

func NewImportGitHubStars(store Storage, stars sources.StarFetcher) *ImportGitHubStars {
	return &ImportGitHubStars{stars: stars, add: NewAddBookmark(store)}
}

func (c *ImportGitHubStars) Execute(ctx context.Context, data Data) (Result, error) {
	username, _ := data["github_username"].(string)
	username = strings.TrimSpace(username)
	if username == "" {
		return Result{}, fmt.Errorf("%w: missing github_username", ErrInvalidInput)
	}
	preserve, _ := data["preserve_timestamps"].(bool)

	imported := 0
	next := c.stars.StarsURL(username)
	for page := 1; next != ""; page++ {
		p, err := c.stars.FetchPage(ctx, next)
		if err != nil {
			return Result{}, fmt.Errorf("%w: page %d after %d bookmarks: %w", ErrImport, page, imported, err)
		}
		next = p.Next

		for _, star := range p.Stars {
			item := extractBookmark(star.Repo)
			if preserve {
				ts, err := time.Parse(sources.StarredAtLayout, star.StarredAt)
				if err != nil {
					return Result{}, fmt.Errorf("%w: page %d after %d bookmarks: starred_at %q: %w",
						ErrImport, page, imported, star.StarredAt, err)
				}
				item["timestamp"] = ts
			}
			if _, err := c.add.Execute(ctx, item); err != nil {
				return Result{}, fmt.Errorf("%w: page %d after %d bookmarks: %w", ErrImport, page, imported, err)
			}
			imported++
		}
		slog.Debug("stars page imported", "page", page, "items", len(p.Stars), "total", imported)
	}

	slog.Info("github stars imported", "user", username, "count", imported)

	return Result{Message: fmt.Sprintf("Imported %d bookmarks from starred repos!", imported)}, nil
}

func extractBookmark(repo sources.Repo) Data {
	var notes any
	if repo.Description != nil {
		notes = *repo.Description
	}
	return Data{
		"title": repo.Name,
		"url":   repo.HTMLURL,
		"notes": notes,
	}
}
