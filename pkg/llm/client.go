package llm

import "context"

const summaryPrompt = `I have extracted text content from a news article. The news article title is %s. The content is noisy due to parsing. Please summarize the article given this text data I have extracted:
%s

Summary:`

// Summarizer produces a plain-text summary for one scraped article.
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (string, error)
}
