package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL     = "https://www.alphavantage.co/query"
	sentimentFeedLimit = 50
)

// AlphaVantageClient covers the three AlphaVantage functions the service
// needs: symbol search, news sentiment and the daily time series.
type AlphaVantageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ResolveTicker returns the first US-listed symbol matching companyName, in
// provider order, or "" when nothing matches.
func (c *AlphaVantageClient) ResolveTicker(ctx context.Context, companyName string) (string, error) {
	var raw symbolSearchResponse
	err := c.query(ctx, url.Values{
		"function": {"SYMBOL_SEARCH"},
		"keywords": {companyName},
	}, &raw)
	if err != nil {
		return "", err
	}

	for _, match := range raw.BestMatches {
		if match.Region != "United States" {
			continue
		}
		return match.Symbol, nil
	}

	return "", nil
}

// GetSentiment aggregates the provider's recent per-article sentiment entries
// for ticker into a single relevance-weighted score. Returns nil when no feed
// item carries a sentiment entry for this exact ticker.
func (c *AlphaVantageClient) GetSentiment(ctx context.Context, ticker string) (*Sentiment, error) {
	var raw newsSentimentResponse
	err := c.query(ctx, url.Values{
		"function": {"NEWS_SENTIMENT"},
		"tickers":  {ticker},
		"limit":    {strconv.Itoa(sentimentFeedLimit)},
	}, &raw)
	if err != nil {
		return nil, err
	}

	var pairs []sentimentPair
	for _, item := range raw.Feed {
		for _, ts := range item.TickerSentiment {
			if ts.Ticker != ticker {
				continue
			}

			relevance, err := strconv.ParseFloat(ts.RelevanceScore, 64)
			if err != nil {
				continue
			}
			polarity, err := strconv.ParseFloat(ts.SentimentScore, 64)
			if err != nil {
				continue
			}

			pairs = append(pairs, sentimentPair{relevance: relevance, polarity: polarity})
		}
	}

	return aggregateSentiment(pairs), nil
}

// DailySeries returns the provider's daily time-series object for symbol
// verbatim.
func (c *AlphaVantageClient) DailySeries(ctx context.Context, symbol string) (json.RawMessage, error) {
	var raw map[string]json.RawMessage
	err := c.query(ctx, url.Values{
		"function": {"TIME_SERIES_DAILY"},
		"symbol":   {symbol},
	}, &raw)
	if err != nil {
		return nil, err
	}

	series, ok := raw["Time Series (Daily)"]
	if !ok {
		return nil, fmt.Errorf("alphavantage response for %s has no daily series", symbol)
	}

	return series, nil
}

func (c *AlphaVantageClient) query(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("alphavantage returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("alphavantage decode: %w", err)
	}

	return nil
}

type symbolSearchResponse struct {
	BestMatches []struct {
		Symbol string `json:"1. symbol"`
		Region string `json:"4. region"`
	} `json:"bestMatches"`
}

type newsSentimentResponse struct {
	Feed []struct {
		TickerSentiment []struct {
			Ticker         string `json:"ticker"`
			RelevanceScore string `json:"relevance_score"`
			SentimentScore string `json:"ticker_sentiment_score"`
		} `json:"ticker_sentiment"`
	} `json:"feed"`
}
