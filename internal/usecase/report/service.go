// Package report реализует движок аналитики отзывов: агрегацию тональностей,
// эвристические выводы и детерминированную фильтрацию/сортировку записей.
// Изменяемого состояния нет — всё считается заново на каждый запрос.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"feedback-insights/internal/domain"
	"feedback-insights/internal/infra/metrics"
)

// ErrStoreNotConfigured возвращается когда сервис собран без хранилища
// отзывов.
var ErrStoreNotConfigured = errors.New("хранилище отзывов не настроено")

// Service строит модель представления отчёта: загрузка отзывов, агрегация,
// выводы и сборка в одну структуру. Состояния между запросами нет.
type Service struct {
	repo domain.FeedbackRepo
}

var _ domain.ReportService = (*Service)(nil)

// NewService создаёт сервис отчётов.
func NewService(repo domain.FeedbackRepo) *Service {
	return &Service{repo: repo}
}

// BuildReport загружает все отзывы и собирает статистику, выводы и полный
// список записей. Ошибка загрузки терминальна для запроса: ни ретраев, ни
// частичного отчёта.
func (s *Service) BuildReport(ctx context.Context) (domain.ReportView, error) {
	if s.repo == nil {
		return domain.ReportView{}, ErrStoreNotConfigured
	}

	start := time.Now()
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.ReportView{}, fmt.Errorf("загрузка отзывов: %w", err)
	}

	stats := Aggregate(records)
	view := domain.ReportView{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Stats:       stats,
		Insights:    GenerateInsights(records, stats),
		Records:     records,
	}
	metrics.ReportBuildSeconds.Observe(time.Since(start).Seconds())
	return view, nil
}
