package report

import (
	"testing"

	"feedback-insights/internal/domain"
)

func repeatSentiment(n int, s domain.Sentiment) []domain.Feedback {
	out := make([]domain.Feedback, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Feedback{Sentiment: s})
	}
	return out
}

func TestAggregatePercentages(t *testing.T) {
	var records []domain.Feedback
	records = append(records, repeatSentiment(6, domain.SentimentPositive)...)
	records = append(records, repeatSentiment(3, domain.SentimentNeutral)...)
	records = append(records, repeatSentiment(1, domain.SentimentNegative)...)

	stats := Aggregate(records)
	if stats.Total != 10 {
		t.Fatalf("ожидали total 10, получили %d", stats.Total)
	}
	if stats.PositivePercent != 60 || stats.NeutralPercent != 30 || stats.NegativePercent != 10 {
		t.Fatalf("ожидали 60/30/10, получили %d/%d/%d", stats.PositivePercent, stats.NeutralPercent, stats.NegativePercent)
	}
}

func TestAggregateEmptySet(t *testing.T) {
	stats := Aggregate(nil)
	if stats.Total != 0 {
		t.Fatalf("ожидали total 0")
	}
	if stats.PositivePercent != 0 || stats.NeutralPercent != 0 || stats.NegativePercent != 0 {
		t.Fatalf("на пустом наборе все проценты должны быть нулями")
	}
}

func TestAggregateUnrecognizedSentiment(t *testing.T) {
	records := []domain.Feedback{
		{Sentiment: domain.SentimentPositive},
		{Sentiment: "angry"},
		{Sentiment: "POSITIVE"},
	}
	stats := Aggregate(records)
	if stats.Total != 3 {
		t.Fatalf("total учитывает все записи, получили %d", stats.Total)
	}
	if got := stats.Positive + stats.Neutral + stats.Negative; got != 1 {
		t.Fatalf("нераспознанные тональности не должны попадать в корзины, получили %d", got)
	}
}

func TestAggregateRoundsHalfAwayFromZero(t *testing.T) {
	var records []domain.Feedback
	records = append(records, repeatSentiment(1, domain.SentimentPositive)...)
	records = append(records, repeatSentiment(7, domain.SentimentNeutral)...)

	stats := Aggregate(records)
	if stats.PositivePercent != 13 {
		t.Fatalf("12.5%% должны округляться вверх до 13, получили %d", stats.PositivePercent)
	}
	if stats.NeutralPercent != 88 {
		t.Fatalf("87.5%% должны округляться вверх до 88, получили %d", stats.NeutralPercent)
	}
}

func TestAggregateAgreesWithFilteredSubset(t *testing.T) {
	records := []domain.Feedback{
		{ID: 1, Sentiment: domain.SentimentNegative, Timestamp: 3},
		{ID: 2, Sentiment: domain.SentimentPositive, Timestamp: 2},
		{ID: 3, Sentiment: domain.SentimentNegative, Timestamp: 1},
		{ID: 4, Sentiment: "angry", Timestamp: 4},
	}
	full := Aggregate(records)
	subset := Aggregate(FilterSort(records, domain.FilterNegative, domain.SortRecent))
	if subset.Total != full.Negative {
		t.Fatalf("счётчик негатива по подмножеству (%d) не совпал с полной статистикой (%d)", subset.Total, full.Negative)
	}
}
