package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"tickerbrief/internal/model"
)

const keyPrefix = "tickerbrief:summaries:"

// Redis is a Store shared across service instances. Cache errors are soft:
// a broken Redis degrades every lookup to a miss.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(redisURL string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, ticker string) ([]model.SummarizedArticle, bool) {
	data, err := r.client.Get(ctx, keyPrefix+ticker).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("error reading summary cache", "ticker", ticker, "error", err)
		}
		return nil, false
	}

	var articles []model.SummarizedArticle
	if err := json.Unmarshal(data, &articles); err != nil {
		slog.Warn("error decoding summary cache entry", "ticker", ticker, "error", err)
		return nil, false
	}

	return articles, true
}

func (r *Redis) Set(ctx context.Context, ticker string, articles []model.SummarizedArticle) {
	data, err := json.Marshal(articles)
	if err != nil {
		slog.Warn("error encoding summary cache entry", "ticker", ticker, "error", err)
		return
	}

	if err := r.client.Set(ctx, keyPrefix+ticker, data, r.ttl).Err(); err != nil {
		slog.Warn("error writing summary cache", "ticker", ticker, "error", err)
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
