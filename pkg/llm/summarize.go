package llm

import (
	"context"
	"log/slog"
	"sync"

	"tickerbrief/internal/model"
)

// SummarizeAll issues one summarization request per article concurrently and
// returns once every request has settled. Failures stay local to their
// article: the record's LongContentSummary is simply left empty, and the
// other requests run to completion.
func SummarizeAll(ctx context.Context, s Summarizer, articles []*model.Article) {
	var wg sync.WaitGroup

	for _, a := range articles {
		if a.LongContent == "" {
			continue
		}

		wg.Add(1)
		go func(a *model.Article) {
			defer wg.Done()

			summary, err := s.Summarize(ctx, a.Title, a.LongContent)
			if err != nil {
				slog.Warn("error summarizing article", "url", a.URL, "error", err)
				return
			}
			if summary == "" {
				slog.Warn("empty summary for article", "url", a.URL)
				return
			}

			a.LongContentSummary = summary
		}(a)
	}

	wg.Wait()
}
