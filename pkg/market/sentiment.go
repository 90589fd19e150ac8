package market

import "math"

// Sentiment is the relevance-weighted aggregate of the provider's per-article
// scores for one ticker, recomputed on every request.
type Sentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

type sentimentPair struct {
	relevance float64
	polarity  float64
}

// aggregateSentiment weights each article's polarity by a softmax over the
// relevance scores, so highly relevant coverage dominates the aggregate. An
// empty pair set has no defined weighting and yields nil.
func aggregateSentiment(pairs []sentimentPair) *Sentiment {
	if len(pairs) == 0 {
		return nil
	}

	var total float64
	for _, p := range pairs {
		total += math.Exp(p.relevance)
	}

	var score float64
	for _, p := range pairs {
		score += math.Exp(p.relevance) / total * p.polarity
	}

	score = math.Round(score*10000) / 10000

	return &Sentiment{Score: score, Label: sentimentLabel(score)}
}

// sentimentLabel applies the provider's documented score bands.
func sentimentLabel(score float64) string {
	switch {
	case score <= -0.35:
		return "Bearish"
	case score <= -0.15:
		return "Somewhat-Bearish"
	case score < 0.15:
		return "Neutral"
	case score < 0.35:
		return "Somewhat-Bullish"
	default:
		return "Bullish"
	}
}
