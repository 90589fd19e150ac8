package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tickerbrief/pkg/market"
)

type MarketData interface {
	ResolveTicker(ctx context.Context, companyName string) (string, error)
	GetSentiment(ctx context.Context, ticker string) (*market.Sentiment, error)
	DailySeries(ctx context.Context, symbol string) (json.RawMessage, error)
}

type MarketHandler struct {
	client MarketData
}

func NewMarketHandler(client MarketData) *MarketHandler {
	return &MarketHandler{client: client}
}

// GetSentiment is best-effort: provider failures degrade to a null sentiment
// rather than an error response.
func (h *MarketHandler) GetSentiment(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker not provided"})
		return
	}

	sentiment, err := h.client.GetSentiment(c.Request.Context(), ticker)
	if err != nil {
		slog.Warn("error computing sentiment", "ticker", ticker, "error", err)
		sentiment = nil
	}

	c.JSON(http.StatusOK, gin.H{"sentiment": sentiment})
}

func (h *MarketHandler) GetTicker(c *gin.Context) {
	companyName := c.Query("company_name")
	if companyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company name not provided"})
		return
	}

	symbol, err := h.client.ResolveTicker(c.Request.Context(), companyName)
	if err != nil {
		slog.Warn("error resolving ticker", "company_name", companyName, "error", err)
		symbol = ""
	}

	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company name not found"})
		return
	}

	c.JSON(http.StatusOK, TickerResponse{Ticker: symbol})
}

func (h *MarketHandler) GetDailySeries(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker not provided"})
		return
	}

	series, err := h.client.DailySeries(c.Request.Context(), ticker)
	if err != nil {
		slog.Error("error fetching daily series", "ticker", ticker, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeseries": series})
}

func (h *MarketHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
