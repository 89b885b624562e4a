package sources

import "context"

// StarFetcher pages through a user's starred repositories. The import loop
// follows Next until it is empty.
type StarFetcher interface {
	// StarsURL returns the first page URL for username.
	StarsURL(username string) string
	// FetchPage fetches one page and the URL of the page after it.
	FetchPage(ctx context.Context, pageURL string) (StarPage, error)
}
