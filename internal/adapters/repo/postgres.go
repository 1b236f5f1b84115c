package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"feedback-insights/internal/domain"
	"feedback-insights/internal/infra/metrics"
)

// Postgres реализует domain.FeedbackRepo на основе pgxpool.
//
// Контракт со схемой: таблица feedback с колонками id (bigserial),
// "user", comment, source, sentiment (text) и timestamp (bigint, unix-секунды,
// по умолчанию текущее время). Чтение терпимо к битым строкам: NULL в
// comment превращается в пустую строку, нераспознанный sentiment
// возвращается как есть.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ domain.FeedbackRepo = (*Postgres)(nil)

// NewPostgres создаёт адаптер БД.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) connCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, 5*time.Second)
}

// ListAll возвращает все отзывы в порядке вставки.
func (p *Postgres) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	ctx, cancel := p.connCtx(ctx)
	defer cancel()

	start := time.Now()
	rows, err := p.pool.Query(ctx, `
SELECT id, "user", comment, source, sentiment, "timestamp"
FROM feedback
ORDER BY id
`)
	metrics.ObserveNetworkRequest("postgres", "feedback_list_all", "feedback", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Feedback
	for rows.Next() {
		var (
			fb        domain.Feedback
			comment   sql.NullString
			sentiment string
		)
		if err := rows.Scan(&fb.ID, &fb.User, &comment, &fb.Source, &sentiment, &fb.Timestamp); err != nil {
			return nil, err
		}
		if comment.Valid {
			fb.Comment = comment.String
		}
		fb.Sentiment = domain.Sentiment(sentiment)
		records = append(records, fb)
	}
	return records, rows.Err()
}

// Create сохраняет отзыв. Нулевой Timestamp заменяется текущим временем на
// стороне базы.
func (p *Postgres) Create(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	ctx, cancel := p.connCtx(ctx)
	defer cancel()

	start := time.Now()
	var sentiment string
	err := p.pool.QueryRow(ctx, `
INSERT INTO feedback ("user", comment, source, sentiment, "timestamp")
VALUES ($1, $2, $3, $4, CASE WHEN $5 > 0 THEN $5 ELSE extract(epoch FROM now())::bigint END)
RETURNING id, "user", comment, source, sentiment, "timestamp"
`, fb.User, fb.Comment, fb.Source, string(fb.Sentiment), fb.Timestamp).
		Scan(&fb.ID, &fb.User, &fb.Comment, &fb.Source, &sentiment, &fb.Timestamp)
	metrics.ObserveNetworkRequest("postgres", "feedback_insert", "feedback", start, err)
	if err != nil {
		return domain.Feedback{}, err
	}
	fb.Sentiment = domain.Sentiment(sentiment)
	return fb, nil
}
