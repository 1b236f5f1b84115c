package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"feedback-insights/internal/adapters/repo"
	"feedback-insights/internal/adapters/web"
	"feedback-insights/internal/domain"
	"feedback-insights/internal/infra/config"
	"feedback-insights/internal/infra/db"
	httpinfra "feedback-insights/internal/infra/http"
	loginfra "feedback-insights/internal/infra/log"
	"feedback-insights/internal/infra/metrics"
	"feedback-insights/internal/usecase/report"
)

func main() {
	cfg := config.Load()
	logger := loginfra.NewLogger(cfg.AppEnv)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(cfg.PGDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("api: нет подключения к БД")
	}
	defer pool.Close()

	feedbackRepo := repo.NewPostgres(pool)
	reportService := report.NewService(feedbackRepo)
	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("api: не удалось подготовить рендерер")
	}

	srv := httpinfra.NewServer(logger.With().Str("component", "http").Logger())
	registerRoutes(srv, reportService, feedbackRepo, renderer, logger)

	metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), cfg.MetricsAddr)

	go func() {
		logger.Info().Msg("api: старт")
		if err := srv.Start(":" + strconv.Itoa(cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("api: сервер остановлен")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("api: остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func registerRoutes(srv *httpinfra.Server, reportService domain.ReportService, feedbackRepo domain.FeedbackRepo, renderer *web.Renderer, logger zerolog.Logger) {
	srv.Router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		filter, ok := domain.ParseSentimentFilter(r.URL.Query().Get("sentiment"))
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sentiment filter")
			return
		}
		sortKey, ok := domain.ParseSortKey(r.URL.Query().Get("sort"))
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sort key")
			return
		}

		view, err := reportService.BuildReport(r.Context())
		if err != nil {
			writeReportError(w, logger, err)
			return
		}
		metrics.ReportRequestsTotal.Inc()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.RenderReport(w, view, filter, sortKey); err != nil {
			logger.Error().Err(err).Msg("api: рендер отчёта")
		}
	})

	srv.Router.Get("/api/v1/report", func(w http.ResponseWriter, r *http.Request) {
		view, err := reportService.BuildReport(r.Context())
		if err != nil {
			writeReportError(w, logger, err)
			return
		}
		metrics.ReportRequestsTotal.Inc()
		writeJSON(w, http.StatusOK, web.NewReport(view))
	})

	srv.Router.Get("/api/v1/report/records", func(w http.ResponseWriter, r *http.Request) {
		filter, ok := domain.ParseSentimentFilter(r.URL.Query().Get("sentiment"))
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sentiment filter")
			return
		}
		sortKey, ok := domain.ParseSortKey(r.URL.Query().Get("sort"))
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sort key")
			return
		}

		records, err := feedbackRepo.ListAll(r.Context())
		if err != nil {
			logger.Error().Err(err).Msg("api: загрузка отзывов")
			writeError(w, http.StatusInternalServerError, "failed to load feedback: "+err.Error())
			return
		}
		metrics.IncRecordQuery(string(filter), string(sortKey))
		writeJSON(w, http.StatusOK, web.NewRecords(report.FilterSort(records, filter, sortKey)))
	})

	srv.Router.Post("/api/v1/feedback", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req submitFeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.User == "" || req.Comment == "" || req.Source == "" {
			writeError(w, http.StatusBadRequest, "user, comment and source are required")
			return
		}
		sentiment, ok := domain.ParseSentiment(req.Sentiment)
		if !ok {
			writeError(w, http.StatusBadRequest, "sentiment must be one of: positive, neutral, negative")
			return
		}

		created, err := feedbackRepo.Create(r.Context(), domain.Feedback{
			User:      req.User,
			Comment:   req.Comment,
			Source:    req.Source,
			Sentiment: sentiment,
			Timestamp: req.Timestamp,
		})
		if err != nil {
			logger.Error().Err(err).Msg("api: сохранение отзыва")
			writeError(w, http.StatusInternalServerError, "failed to store feedback")
			return
		}
		metrics.FeedbackIngestedTotal.Inc()
		writeJSON(w, http.StatusCreated, web.NewRecord(created))
	})
}

// writeReportError разводит ошибку конфигурации и сбой запроса к хранилищу:
// это разные диагностики, обе терминальны и без ретраев.
func writeReportError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	if errors.Is(err, report.ErrStoreNotConfigured) {
		writeError(w, http.StatusServiceUnavailable, "feedback store is not configured")
		return
	}
	logger.Error().Err(err).Msg("api: построение отчёта")
	writeError(w, http.StatusInternalServerError, "failed to build report: "+err.Error())
}

type submitFeedbackRequest struct {
	User      string `json:"user"`
	Comment   string `json:"comment"`
	Source    string `json:"source"`
	Sentiment string `json:"sentiment"`
	Timestamp int64  `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg})
}
