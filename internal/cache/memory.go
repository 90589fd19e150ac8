package cache

import (
	"context"
	"sync"
	"time"

	"tickerbrief/internal/model"
)

type entry struct {
	articles  []model.SummarizedArticle
	expiresAt time.Time
}

// Memory is a process-local Store with per-entry expiry.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, entries: make(map[string]entry)}
}

func (m *Memory) Get(ctx context.Context, ticker string) ([]model.SummarizedArticle, bool) {
	m.mu.RLock()
	e, ok := m.entries[ticker]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, ticker)
		m.mu.Unlock()
		return nil, false
	}

	return e.articles, true
}

func (m *Memory) Set(ctx context.Context, ticker string, articles []model.SummarizedArticle) {
	m.mu.Lock()
	m.entries[ticker] = entry{articles: articles, expiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
}
