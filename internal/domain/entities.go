package domain

import "time"

// Sentiment описывает тональность отзыва. Закрытое множество значений,
// любая другая строка считается нераспознанной.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment проверяет строку на принадлежность к закрытому множеству
// тональностей. Используется на границе приёма данных; при чтении из
// хранилища нераспознанные значения сохраняются как есть.
func ParseSentiment(raw string) (Sentiment, bool) {
	switch Sentiment(raw) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(raw), true
	}
	return "", false
}

// Feedback представляет один отзыв клиента.
type Feedback struct {
	ID        int64
	User      string
	Comment   string
	Source    string
	Sentiment Sentiment
	Timestamp int64
}

// SummaryStats содержит агрегированные показатели по набору отзывов.
// Проценты округлены независимо друг от друга, их сумма не обязана
// равняться 100.
type SummaryStats struct {
	Total           int
	Positive        int
	Neutral         int
	Negative        int
	PositivePercent int
	NeutralPercent  int
	NegativePercent int
}

// InsightReport содержит текстовые выводы по набору отзывов: итоговое
// предложение, список тем и список рекомендаций. Пустому набору отзывов
// соответствует фиксированный маркер в Summary при nil-списках.
type InsightReport struct {
	Summary string
	Themes  []string
	Actions []string
}

// ReportView — итоговая модель представления отчёта, собираемая заново на
// каждый запрос.
type ReportView struct {
	ID          string
	GeneratedAt time.Time
	Stats       SummaryStats
	Insights    InsightReport
	Records     []Feedback
}
