package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"tickerbrief/internal/model"
)

const (
	defaultBaseURL = "https://stocknewsapi.com/api/v1"
	pageSize       = 10
	maxPages       = 10
	scrapeWorkers  = 4
)

// ErrInsufficientNews reports that the provider ran out of usable articles
// before the requested count was reached.
var ErrInsufficientNews = errors.New("not enough usable news articles")

// deniedMarkers drops low-value sources whose pages carry no article text.
var deniedMarkers = []string{"youtube"}

// ArticleFetcher scrapes the readable text behind an article URL. An empty
// result means the page was unreachable or had no usable content.
type ArticleFetcher interface {
	FetchArticleText(ctx context.Context, url string) string
}

// StockNewsClient lists recent news for a ticker from the paginated
// stocknews API and scrapes each surviving item's page.
type StockNewsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	fetcher    ArticleFetcher
}

func NewStockNewsClient(apiKey string, fetcher ArticleFetcher) *StockNewsClient {
	return &StockNewsClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		fetcher:    fetcher,
	}
}

// ListNews pages through the provider, 1-based, until at least minItems
// articles with scraped text have been collected. Page size is fixed, so the
// final page may push the result past minItems. A provider error on any page
// fails the whole call; running past maxPages yields ErrInsufficientNews.
func (c *StockNewsClient) ListNews(ctx context.Context, ticker string, minItems int) ([]*model.Article, error) {
	var articles []*model.Article

	for page := 1; len(articles) < minItems; page++ {
		if page > maxPages {
			return nil, fmt.Errorf("%w: collected %d of %d after %d pages", ErrInsufficientNews, len(articles), minItems, maxPages)
		}

		batch, err := c.fetchPage(ctx, ticker, page)
		if err != nil {
			return nil, err
		}

		articles = append(articles, batch...)
	}

	return articles, nil
}

func (c *StockNewsClient) fetchPage(ctx context.Context, ticker string, page int) ([]*model.Article, error) {
	q := url.Values{}
	q.Set("tickers", ticker)
	q.Set("items", strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	q.Set("token", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("stocknews request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stocknews fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("stocknews returned status %d for page %d", resp.StatusCode, page)
	}

	var raw snResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("stocknews decode: %w", err)
	}

	kept := make([]*model.Article, 0, len(raw.Data))
	for _, item := range raw.Data {
		if item.NewsURL == "" || isDenied(item.NewsURL) {
			continue
		}
		kept = append(kept, &model.Article{
			URL:          item.NewsURL,
			Title:        item.Title,
			ShortContent: item.Text,
		})
	}

	c.scrapeAll(ctx, kept)

	// A record without scraped text carries no value downstream; drop it.
	surviving := kept[:0]
	for _, a := range kept {
		if a.LongContent != "" {
			surviving = append(surviving, a)
		}
	}

	return surviving, nil
}

// scrapeAll fills LongContent for a page of articles through a small bounded
// pool, so one slow publisher does not serialize the whole page.
func (c *StockNewsClient) scrapeAll(ctx context.Context, articles []*model.Article) {
	sem := make(chan struct{}, scrapeWorkers)
	var wg sync.WaitGroup

	for _, a := range articles {
		wg.Add(1)
		sem <- struct{}{}
		go func(a *model.Article) {
			defer wg.Done()
			defer func() { <-sem }()
			a.LongContent = c.fetcher.FetchArticleText(ctx, a.URL)
		}(a)
	}

	wg.Wait()
}

func isDenied(u string) bool {
	for _, marker := range deniedMarkers {
		if strings.Contains(u, marker) {
			return true
		}
	}
	return false
}

type snResponse struct {
	Data []snItem `json:"data"`
}

type snItem struct {
	NewsURL string `json:"news_url"`
	Title   string `json:"title"`
	Text    string `json:"text"`
}
