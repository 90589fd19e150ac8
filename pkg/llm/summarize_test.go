package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-playground/assert/v2"

	"tickerbrief/internal/model"
)

// fakeSummarizer fails or returns empty output for chosen titles and counts
// every call it receives.
type fakeSummarizer struct {
	mu       sync.Mutex
	calls    int
	failFor  string
	emptyFor string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if title == f.failFor {
		return "", errors.New("provider unavailable")
	}
	if title == f.emptyFor {
		return "", nil
	}
	return "summary of " + title, nil
}

func TestSummarizeAll_PopulatesSummaries(t *testing.T) {
	articles := []*model.Article{
		{Title: "A", LongContent: "text a"},
		{Title: "B", LongContent: "text b"},
	}

	s := &fakeSummarizer{}
	SummarizeAll(context.Background(), s, articles)

	assert.Equal(t, "summary of A", articles[0].LongContentSummary)
	assert.Equal(t, "summary of B", articles[1].LongContentSummary)
	assert.Equal(t, 2, s.calls)
}

func TestSummarizeAll_OneFailureDoesNotAbortSiblings(t *testing.T) {
	articles := []*model.Article{
		{Title: "A", LongContent: "text a"},
		{Title: "B", LongContent: "text b"},
		{Title: "C", LongContent: "text c"},
	}

	s := &fakeSummarizer{failFor: "B"}
	SummarizeAll(context.Background(), s, articles)

	assert.Equal(t, "summary of A", articles[0].LongContentSummary)
	assert.Equal(t, "", articles[1].LongContentSummary)
	assert.Equal(t, "summary of C", articles[2].LongContentSummary)
	assert.Equal(t, 3, s.calls)
}

func TestSummarizeAll_EmptyOutputLeavesSummaryAbsent(t *testing.T) {
	articles := []*model.Article{
		{Title: "A", LongContent: "text a"},
	}

	s := &fakeSummarizer{emptyFor: "A"}
	SummarizeAll(context.Background(), s, articles)

	assert.Equal(t, "", articles[0].LongContentSummary)
}

func TestSummarizeAll_SkipsArticlesWithoutContent(t *testing.T) {
	articles := []*model.Article{
		{Title: "A", LongContent: ""},
		{Title: "B", LongContent: "text b"},
	}

	s := &fakeSummarizer{}
	SummarizeAll(context.Background(), s, articles)

	assert.Equal(t, 1, s.calls)
	assert.Equal(t, "", articles[0].LongContentSummary)
	assert.Equal(t, "summary of B", articles[1].LongContentSummary)
}

func TestSummarizeAll_NoArticles(t *testing.T) {
	s := &fakeSummarizer{}
	SummarizeAll(context.Background(), s, nil)

	assert.Equal(t, 0, s.calls)
}
