package report

import (
	"fmt"
	"strings"

	"feedback-insights/internal/domain"
)

// NoFeedbackSummary — фиксированный маркер отчёта без отзывов. Вместо
// пустых списков генератор возвращает только этот маркер.
const NoFeedbackSummary = "No feedback available yet."

const (
	// excerptLimit — длина цитаты из первого негативного отзыва в символах.
	excerptLimit = 50
	// consolidationThreshold — с какого числа каналов рекомендуется
	// консолидация приёма отзывов.
	consolidationThreshold = 3
	// positiveShareTarget — порог доли позитивных отзывов в процентах,
	// разделяющий два варианта финальной рекомендации.
	positiveShareTarget = 50
	// summarySourcesShown — сколько каналов перечисляется в итоговом
	// предложении.
	summarySourcesShown = 3
)

// themeRule связывает набор ключевых слов с меткой темы. Совпадение —
// поиск подстроки по склеенному тексту всех комментариев в нижнем регистре.
type themeRule struct {
	Label    string
	Keywords []string
}

// themeRules — таблица эвристик; порядок правил задаёт порядок тем в отчёте.
var themeRules = []themeRule{
	{Label: "Performance Issues", Keywords: []string{"slow", "performance"}},
	{Label: "Bugs & Stability", Keywords: []string{"bug", "crash"}},
	{Label: "User Interface", Keywords: []string{"ui", "interface", "design"}},
	{Label: "Feature Requests", Keywords: []string{"feature", "missing"}},
	{Label: "User Experience", Keywords: []string{"onboarding", "confusing"}},
}

// fallbackThemes возвращается целиком, когда ни одно правило не сработало.
// Частичного смешивания с совпавшими темами не бывает.
var fallbackThemes = []string{"General Feedback", "Product Experience", "Feature Requests"}

// GenerateInsights строит текстовые выводы по отзывам и уже посчитанной
// статистике. Функция чистая и возвращает сырой текст: экранирование HTML —
// обязанность слоя отображения, ровно один раз.
func GenerateInsights(records []domain.Feedback, stats domain.SummaryStats) domain.InsightReport {
	if stats.Total == 0 {
		return domain.InsightReport{Summary: NoFeedbackSummary}
	}

	sources := distinctSources(records)
	shown := sources
	if len(shown) > summarySourcesShown {
		shown = shown[:summarySourcesShown]
	}

	summary := fmt.Sprintf(
		"Collected %d feedback entries: %d positive, %d neutral, %d negative. Feedback arrived through %d distinct channels (%s).",
		stats.Total, stats.Positive, stats.Neutral, stats.Negative,
		len(sources), strings.Join(shown, ", "),
	)

	return domain.InsightReport{
		Summary: summary,
		Themes:  detectThemes(records),
		Actions: buildActions(records, stats, len(sources)),
	}
}

// distinctSources возвращает каналы в порядке первого появления, без
// дубликатов.
func distinctSources(records []domain.Feedback) []string {
	seen := make(map[string]struct{}, len(records))
	order := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Source]; ok {
			continue
		}
		seen[r.Source] = struct{}{}
		order = append(order, r.Source)
	}
	return order
}

func detectThemes(records []domain.Feedback) []string {
	var blob strings.Builder
	for _, r := range records {
		blob.WriteString(strings.ToLower(r.Comment))
		blob.WriteString(" ")
	}
	text := blob.String()

	var themes []string
	for _, rule := range themeRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				themes = append(themes, rule.Label)
				break
			}
		}
	}
	if len(themes) == 0 {
		return append([]string(nil), fallbackThemes...)
	}
	return themes
}

// buildActions собирает рекомендации в фиксированном порядке: негатив,
// консолидация каналов и ровно один из двух финальных вариантов.
func buildActions(records []domain.Feedback, stats domain.SummaryStats, sourceCount int) []string {
	var actions []string

	if stats.Negative > 0 {
		if excerpt, ok := firstNegativeExcerpt(records); ok {
			actions = append(actions, fmt.Sprintf(
				"Address %d negative feedback item(s), starting with: \"%s\"",
				stats.Negative, excerpt,
			))
		}
	}

	if sourceCount > consolidationThreshold {
		actions = append(actions, fmt.Sprintf(
			"Feedback is spread across %d channels; consider consolidating intake into fewer of them.",
			sourceCount,
		))
	}

	if stats.PositivePercent >= positiveShareTarget {
		actions = append(actions, fmt.Sprintf(
			"Strong positive sentiment (%d%%); keep reinforcing what customers already like.",
			stats.PositivePercent,
		))
	} else {
		actions = append(actions,
			"Positive sentiment is below half; prioritize the negative and neutral themes above.",
		)
	}

	return actions
}

// firstNegativeExcerpt возвращает цитату из первого негативного отзыва в
// порядке следования: первые 50 символов с многоточием.
func firstNegativeExcerpt(records []domain.Feedback) (string, bool) {
	for _, r := range records {
		if r.Sentiment != domain.SentimentNegative {
			continue
		}
		runes := []rune(r.Comment)
		if len(runes) > excerptLimit {
			runes = runes[:excerptLimit]
		}
		return string(runes) + "...", true
	}
	return "", false
}
