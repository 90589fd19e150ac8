package scrape

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Some publishers reject requests that do not identify as a desktop browser.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher downloads article pages and extracts their readable text.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher wires an HTTP client; nil selects a default with a 30s timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{httpClient: client}
}

// FetchArticleText downloads url and extracts its readable text. Failures are
// per-article and recoverable: they are logged and reported as an empty result.
func (f *Fetcher) FetchArticleText(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("error building article request", "url", url, "error", err)
		return ""
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		slog.Warn("error fetching article", "url", url, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("article fetch returned non-2xx status", "url", url, "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("error reading article body", "url", url, "error", err)
		return ""
	}

	return ExtractText(string(body))
}
