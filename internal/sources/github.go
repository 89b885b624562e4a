package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tomnomnom/linkheader"
)

// StarredAtLayout is the fixed format of the starred_at field.
const StarredAtLayout = "2006-01-02T15:04:05Z"

// starMediaType makes the API wrap each repository together with the time it
// was starred.
const starMediaType = "application/vnd.github.v3.star+json"

const (
	DefaultAPIURL  = "https://api.github.com"
	DefaultTimeout = 30 * time.Second
)

type Star struct {
	StarredAt string `json:"starred_at"`
	Repo      Repo   `json:"repo"`
}

type Repo struct {
	Name        string  `json:"name"`
	HTMLURL     string  `json:"html_url"`
	Description *string `json:"description"`
}

// StarPage is one page of stars. Next is empty on the last page.
type StarPage struct {
	Stars []Star
	Next  string
}

// GitHub reads starred repositories from the GitHub REST API.
type GitHub struct {
	client  *http.Client
	baseURL string
	perPage int
}

// NewGitHub returns a client against baseURL (DefaultAPIURL when empty). A
// zero timeout means DefaultTimeout.
func NewGitHub(baseURL string, timeout time.Duration, perPage int) *GitHub {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GitHub{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		perPage: perPage,
	}
}

func (g *GitHub) StarsURL(username string) string {
	u := fmt.Sprintf("%s/users/%s/starred", g.baseURL, url.PathEscape(username))
	if g.perPage > 0 {
		u += fmt.Sprintf("?per_page=%d", g.perPage)
	}
	return u
}

func (g *GitHub) FetchPage(ctx context.Context, pageURL string) (StarPage, error) {
	slog.Debug("fetching stars page", "url", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return StarPage{}, err
	}
	req.Header.Set("Accept", starMediaType)

	resp, err := g.client.Do(req)
	if err != nil {
		return StarPage{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return StarPage{}, fmt.Errorf("github returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var stars []Star
	if err := json.NewDecoder(resp.Body).Decode(&stars); err != nil {
		return StarPage{}, fmt.Errorf("decoding stars: %w", err)
	}

	return StarPage{Stars: stars, Next: nextLink(resp.Header.Values("Link"))}, nil
}

func nextLink(headers []string) string {
	for _, l := range linkheader.ParseMultiple(headers) {
		if l.Rel == "next" {
			return l.URL
		}
	}
	return ""
}
