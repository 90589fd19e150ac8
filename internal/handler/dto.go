package handler

import "tickerbrief/internal/model"

type NewsItemResponse struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	ShortContent string `json:"short_content"`
}

type NewsResponse struct {
	News []NewsItemResponse `json:"news"`
}

type SummarizedNewsResponse struct {
	News []model.SummarizedArticle `json:"news"`
}

type TickerResponse struct {
	Ticker string `json:"ticker"`
}
