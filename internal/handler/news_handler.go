package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tickerbrief/internal/cache"
	"tickerbrief/internal/model"
	"tickerbrief/pkg/llm"
)

const defaultNewsCount = 3

type NewsLister interface {
	ListNews(ctx context.Context, ticker string, minItems int) ([]*model.Article, error)
}

type NewsHandler struct {
	lister     NewsLister
	summarizer llm.Summarizer
	cache      cache.Store
}

func NewNewsHandler(lister NewsLister, summarizer llm.Summarizer, store cache.Store) *NewsHandler {
	return &NewsHandler{lister: lister, summarizer: summarizer, cache: store}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker not provided"})
		return
	}

	articles, err := h.lister.ListNews(c.Request.Context(), ticker, getQueryCount(c))
	if err != nil {
		slog.Error("error listing news", "ticker", ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]NewsItemResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, NewsItemResponse{
			URL:          a.URL,
			Title:        a.Title,
			ShortContent: a.ShortContent,
		})
	}

	c.JSON(http.StatusOK, NewsResponse{News: items})
}

func (h *NewsHandler) GetSummarizedNews(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker not provided"})
		return
	}

	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx, ticker); ok {
		c.JSON(http.StatusOK, SummarizedNewsResponse{News: cached})
		return
	}

	articles, err := h.lister.ListNews(ctx, ticker, getQueryCount(c))
	if err != nil {
		slog.Error("error listing news", "ticker", ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	llm.SummarizeAll(ctx, h.summarizer, articles)

	items := make([]model.SummarizedArticle, 0, len(articles))
	for _, a := range articles {
		items = append(items, model.SummarizedArticle{
			URL:     a.URL,
			Title:   a.Title,
			Summary: a.LongContentSummary,
		})
	}

	h.cache.Set(ctx, ticker, items)

	c.JSON(http.StatusOK, SummarizedNewsResponse{News: items})
}

func getQueryCount(c *gin.Context) int {
	raw := c.Query("count")
	if raw == "" {
		return defaultNewsCount
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		slog.Warn("invalid count parameter, using default", "value", raw, "default", defaultNewsCount)
		return defaultNewsCount
	}

	return count
}
