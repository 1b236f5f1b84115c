package domain

import "context"

// FeedbackRepo управляет хранилищем отзывов.
type FeedbackRepo interface {
	ListAll(ctx context.Context) ([]Feedback, error)
	Create(ctx context.Context, fb Feedback) (Feedback, error)
}

// ReportService строит модель представления отчёта по всем отзывам.
type ReportService interface {
	BuildReport(ctx context.Context) (ReportView, error)
}
