package notes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultReaderURL is the Jina Reader endpoint; the target URL is appended.
const DefaultReaderURL = "https://r.jina.ai/"

// Limit content size to avoid excessive token usage
const maxContentLen = 50000

// Reader fetches the readable text of a web page through a reader service.
type Reader struct {
	client  *http.Client
	baseURL string
}

func NewReader(baseURL string, timeout time.Duration) *Reader {
	if baseURL == "" {
		baseURL = DefaultReaderURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Reader{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Read returns the text content of targetURL, truncated to maxContentLen.
func (r *Reader) Read(ctx context.Context, targetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+url.QueryEscape(targetURL), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reader returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentLen))
	if err != nil {
		return "", err
	}

	return string(body), nil
}
