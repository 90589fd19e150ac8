package cache

import (
	"context"
	"time"

	"tickerbrief/internal/model"
)

const DefaultTTL = 15 * time.Minute

// Store maps a ticker to its previously summarized articles. Implementations
// must be safe for concurrent use; entries expire after the TTL chosen at
// construction. Concurrent misses for the same ticker may race to populate
// an entry; last writer wins.
type Store interface {
	Get(ctx context.Context, ticker string) ([]model.SummarizedArticle, bool)
	Set(ctx context.Context, ticker string, articles []model.SummarizedArticle)
}
