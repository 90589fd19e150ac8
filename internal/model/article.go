package model

// Article tracks one news item through a single request. URL, Title and
// ShortContent come from the listing provider and never change. LongContent
// is scraped from the article page when the record is built; records whose
// scrape produced nothing are dropped before they reach a caller.
// LongContentSummary is filled in by the summarization step and may stay
// empty when that step fails for this article.
type Article struct {
	URL                string
	Title              string
	ShortContent       string
	LongContent        string
	LongContentSummary string
}

// SummarizedArticle is the cacheable projection of a summarized Article.
type SummarizedArticle struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}
