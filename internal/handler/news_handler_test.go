package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"tickerbrief/internal/cache"
	"tickerbrief/internal/model"
)

type fakeLister struct {
	articles []*model.Article
	err      error
	calls    int
}

func (f *fakeLister) ListNews(ctx context.Context, ticker string, minItems int) ([]*model.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	// Hand out fresh copies so a previous request's summarization does not
	// leak into the next.
	out := make([]*model.Article, len(f.articles))
	for i, a := range f.articles {
		copied := *a
		out[i] = &copied
	}
	return out, nil
}

type fakeSummarizer struct {
	mu      sync.Mutex
	calls   int
	failFor string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if title == f.failFor {
		return "", errors.New("provider unavailable")
	}
	return "summary of " + title, nil
}

func newTestNewsRouter(lister *fakeLister, summarizer *fakeSummarizer, store cache.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(lister, summarizer, store)
	r.GET("/news", h.GetNews)
	r.GET("/news/summarized", h.GetSummarizedNews)
	return r
}

func listedArticles() []*model.Article {
	return []*model.Article{
		{URL: "https://example.com/a", Title: "A", ShortContent: "teaser a", LongContent: "long a"},
		{URL: "https://example.com/b", Title: "B", ShortContent: "teaser b", LongContent: "long b"},
		{URL: "https://example.com/c", Title: "C", ShortContent: "teaser c", LongContent: "long c"},
	}
}

func TestGetNews_ReturnsListing(t *testing.T) {
	lister := &fakeLister{articles: listedArticles()}
	r := newTestNewsRouter(lister, &fakeSummarizer{}, cache.NewMemory(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?ticker=ACME", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, len(res.News))
	assert.Equal(t, "https://example.com/a", res.News[0].URL)
	assert.Equal(t, "teaser a", res.News[0].ShortContent)
}

func TestGetNews_MissingTicker(t *testing.T) {
	r := newTestNewsRouter(&fakeLister{}, &fakeSummarizer{}, cache.NewMemory(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res["error"])
}

func TestGetNews_ListerError(t *testing.T) {
	lister := &fakeLister{err: errors.New("upstream down")}
	r := newTestNewsRouter(lister, &fakeSummarizer{}, cache.NewMemory(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?ticker=ACME", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.NotEqual(t, "", res["error"])
}

func TestGetSummarizedNews_ReturnsSummaries(t *testing.T) {
	lister := &fakeLister{articles: listedArticles()}
	summarizer := &fakeSummarizer{}
	r := newTestNewsRouter(lister, summarizer, cache.NewMemory(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/summarized?ticker=ACME", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SummarizedNewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, len(res.News))
	assert.Equal(t, "summary of A", res.News[0].Summary)
	assert.Equal(t, "https://example.com/a", res.News[0].URL)
}

func TestGetSummarizedNews_CacheIdempotence(t *testing.T) {
	lister := &fakeLister{articles: listedArticles()}
	summarizer := &fakeSummarizer{}
	r := newTestNewsRouter(lister, summarizer, cache.NewMemory(time.Minute))

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest("GET", "/news/summarized?ticker=ACME", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	listerCalls := lister.calls
	summarizerCalls := summarizer.calls

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest("GET", "/news/summarized?ticker=ACME", nil))
	assert.Equal(t, http.StatusOK, second.Code)

	// Byte-identical body, zero further upstream calls.
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, listerCalls, lister.calls)
	assert.Equal(t, summarizerCalls, summarizer.calls)
}

func TestGetSummarizedNews_PartialFailureKeepsSiblings(t *testing.T) {
	lister := &fakeLister{articles: listedArticles()}
	summarizer := &fakeSummarizer{failFor: "B"}
	r := newTestNewsRouter(lister, summarizer, cache.NewMemory(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/summarized?ticker=ACME", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SummarizedNewsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, len(res.News))

	bySummary := map[string]string{}
	for _, item := range res.News {
		bySummary[item.Title] = item.Summary
	}
	assert.Equal(t, "summary of A", bySummary["A"])
	assert.Equal(t, "", bySummary["B"])
	assert.Equal(t, "summary of C", bySummary["C"])
}

func TestGetSummarizedNews_MissingTicker(t *testing.T) {
	r := newTestNewsRouter(&fakeLister{}, &fakeSummarizer{}, cache.NewMemory(time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news/summarized", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQueryCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "absent uses default", query: "", want: defaultNewsCount},
		{name: "valid value", query: "count=7", want: 7},
		{name: "non-numeric uses default", query: "count=abc", want: defaultNewsCount},
		{name: "zero uses default", query: "count=0", want: defaultNewsCount},
		{name: "negative uses default", query: "count=-2", want: defaultNewsCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/news?"+tt.query, nil)

			assert.Equal(t, tt.want, getQueryCount(c))
		})
	}
}
