package report

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"feedback-insights/internal/domain"
)

// Коллатор для сортировки по имени пользователя с учётом локали.
// collate.Collator не потокобезопасен, доступ сериализуется мьютексом.
var (
	collatorMu   sync.Mutex
	userCollator = collate.New(language.English)
)

// FilterSort возвращает новый срез отзывов: сначала фильтрация по
// тональности, затем стабильная сортировка по выбранному ключу. Входной
// срез никогда не мутируется; одинаковый вход даёт одинаковый результат при
// любом числе повторных вызовов. Значения filter и key считаются уже
// провалидированными на границе.
func FilterSort(records []domain.Feedback, filter domain.SentimentFilter, key domain.SortKey) []domain.Feedback {
	out := make([]domain.Feedback, 0, len(records))
	for _, r := range records {
		if filter == domain.FilterAll || string(r.Sentiment) == string(filter) {
			out = append(out, r)
		}
	}

	switch key {
	case domain.SortRecent:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	case domain.SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	case domain.SortUser:
		collatorMu.Lock()
		sort.SliceStable(out, func(i, j int) bool {
			return userCollator.CompareString(out[i].User, out[j].User) < 0
		})
		collatorMu.Unlock()
	}

	return out
}
