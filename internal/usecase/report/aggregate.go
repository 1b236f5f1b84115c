package report

import (
	"math"

	"feedback-insights/internal/domain"
)

// Aggregate считает количество отзывов и долю каждой тональности.
// Совпадение тональности строгое, без нормализации регистра; нераспознанные
// значения попадают только в Total. Процент округляется до ближайшего
// целого, половина — от нуля (math.Round); на пустом наборе все поля нули.
func Aggregate(records []domain.Feedback) domain.SummaryStats {
	stats := domain.SummaryStats{Total: len(records)}
	for _, r := range records {
		switch r.Sentiment {
		case domain.SentimentPositive:
			stats.Positive++
		case domain.SentimentNeutral:
			stats.Neutral++
		case domain.SentimentNegative:
			stats.Negative++
		}
	}
	if stats.Total == 0 {
		return stats
	}
	stats.PositivePercent = percent(stats.Positive, stats.Total)
	stats.NeutralPercent = percent(stats.Neutral, stats.Total)
	stats.NegativePercent = percent(stats.Negative, stats.Total)
	return stats
}

func percent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}
