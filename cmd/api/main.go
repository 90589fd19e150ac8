package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tickerbrief/internal/cache"
	"tickerbrief/internal/handler"
	"tickerbrief/pkg/llm"
	"tickerbrief/pkg/market"
	"tickerbrief/pkg/news"
	"tickerbrief/pkg/scrape"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	marketClient := market.NewAlphaVantageClient(os.Getenv("ALPHA_VANTAGE_API_KEY"))
	marketHandler := handler.NewMarketHandler(marketClient)

	fetcher := scrape.NewFetcher(nil)
	lister := news.NewStockNewsClient(os.Getenv("STOCKNEWS_API_KEY"), fetcher)

	var summarizer llm.Summarizer
	if os.Getenv("SUMMARY_PROVIDER") == "anthropic" {
		summarizer = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	} else {
		summarizer = llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	}

	ttl := cache.DefaultTTL
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid CACHE_TTL: %v", err)
		}
		ttl = parsed
	}

	var store cache.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStore, err := cache.NewRedis(redisURL, ttl)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		store = cache.NewMemory(ttl)
	}

	newsHandler := handler.NewNewsHandler(lister, summarizer, store)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/sentiment", marketHandler.GetSentiment)
	r.GET("/ticker", marketHandler.GetTicker)
	r.GET("/news", newsHandler.GetNews)
	r.GET("/news/summarized", newsHandler.GetSummarizedNews)
	r.GET("/timeseries/daily", marketHandler.GetDailySeries)
	r.GET("/health", marketHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
