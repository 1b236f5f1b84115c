package domain

// SentimentFilter задаёт фильтр списка отзывов: либо конкретная тональность,
// либо "all" без отсева.
type SentimentFilter string

const (
	FilterAll      SentimentFilter = "all"
	FilterPositive SentimentFilter = "positive"
	FilterNeutral  SentimentFilter = "neutral"
	FilterNegative SentimentFilter = "negative"
)

// ParseSentimentFilter валидирует значение фильтра. Пустая строка означает
// отсутствие выбора и приводится к "all".
func ParseSentimentFilter(raw string) (SentimentFilter, bool) {
	if raw == "" {
		return FilterAll, true
	}
	switch SentimentFilter(raw) {
	case FilterAll, FilterPositive, FilterNeutral, FilterNegative:
		return SentimentFilter(raw), true
	}
	return "", false
}

// SortKey задаёт порядок сортировки списка отзывов.
type SortKey string

const (
	SortRecent SortKey = "recent"
	SortOldest SortKey = "oldest"
	SortUser   SortKey = "user"
)

// ParseSortKey валидирует ключ сортировки. Пустая строка приводится к
// сортировке по убыванию времени.
func ParseSortKey(raw string) (SortKey, bool) {
	if raw == "" {
		return SortRecent, true
	}
	switch SortKey(raw) {
	case SortRecent, SortOldest, SortUser:
		return SortKey(raw), true
	}
	return "", false
}
