package web

import (
	"time"

	"feedback-insights/internal/domain"
)

// Record — JSON-представление отзыва для страницы и API.
type Record struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Comment   string `json:"comment"`
	Source    string `json:"source"`
	Sentiment string `json:"sentiment"`
	Timestamp int64  `json:"timestamp"`
}

// NewRecord конвертирует доменный отзыв в DTO.
func NewRecord(r domain.Feedback) Record {
	return Record{
		ID:        r.ID,
		User:      r.User,
		Comment:   r.Comment,
		Source:    r.Source,
		Sentiment: string(r.Sentiment),
		Timestamp: r.Timestamp,
	}
}

// NewRecords конвертирует срез доменных отзывов в DTO.
func NewRecords(records []domain.Feedback) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, NewRecord(r))
	}
	return out
}

// Stats — JSON-представление агрегированных показателей.
type Stats struct {
	Total           int `json:"total"`
	Positive        int `json:"positive"`
	Neutral         int `json:"neutral"`
	Negative        int `json:"negative"`
	PositivePercent int `json:"positive_percent"`
	NeutralPercent  int `json:"neutral_percent"`
	NegativePercent int `json:"negative_percent"`
}

// Insights — JSON-представление текстовых выводов.
type Insights struct {
	Summary string   `json:"summary"`
	Themes  []string `json:"themes"`
	Actions []string `json:"actions"`
}

// Report — JSON-представление полного отчёта.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Stats       Stats     `json:"stats"`
	Insights    Insights  `json:"insights"`
	Records     []Record  `json:"records"`
}

// NewReport конвертирует модель представления в DTO.
func NewReport(view domain.ReportView) Report {
	return Report{
		ID:          view.ID,
		GeneratedAt: view.GeneratedAt,
		Stats: Stats{
			Total:           view.Stats.Total,
			Positive:        view.Stats.Positive,
			Neutral:         view.Stats.Neutral,
			Negative:        view.Stats.Negative,
			PositivePercent: view.Stats.PositivePercent,
			NeutralPercent:  view.Stats.NeutralPercent,
			NegativePercent: view.Stats.NegativePercent,
		},
		Insights: Insights{
			Summary: view.Insights.Summary,
			Themes:  view.Insights.Themes,
			Actions: view.Insights.Actions,
		},
		Records: NewRecords(view.Records),
	}
}
