package report

import (
	"testing"

	"feedback-insights/internal/domain"
)

func TestFilterSortRecentAndOldest(t *testing.T) {
	records := []domain.Feedback{
		{ID: 1, Timestamp: 100, Sentiment: domain.SentimentPositive},
		{ID: 2, Timestamp: 300, Sentiment: domain.SentimentPositive},
		{ID: 3, Timestamp: 200, Sentiment: domain.SentimentPositive},
	}

	recent := FilterSort(records, domain.FilterAll, domain.SortRecent)
	if recent[0].Timestamp != 300 || recent[1].Timestamp != 200 || recent[2].Timestamp != 100 {
		t.Fatalf("ожидали порядок 300,200,100, получили %d,%d,%d", recent[0].Timestamp, recent[1].Timestamp, recent[2].Timestamp)
	}

	oldest := FilterSort(records, domain.FilterAll, domain.SortOldest)
	for i := range oldest {
		if oldest[i].ID != recent[len(recent)-1-i].ID {
			t.Fatalf("oldest должен быть обратным к recent без совпадающих меток времени")
		}
	}
}

func TestFilterKeepsOnlyExactMatches(t *testing.T) {
	records := []domain.Feedback{
		{ID: 1, Sentiment: domain.SentimentPositive},
		{ID: 2, Sentiment: domain.SentimentNegative},
		{ID: 3, Sentiment: "angry"},
		{ID: 4, Sentiment: domain.SentimentPositive},
	}

	positive := FilterSort(records, domain.FilterPositive, domain.SortOldest)
	if len(positive) != 2 || positive[0].ID != 1 || positive[1].ID != 4 {
		t.Fatalf("ожидали записи 1 и 4, получили %v", positive)
	}

	all := FilterSort(records, domain.FilterAll, domain.SortOldest)
	if len(all) != 4 {
		t.Fatalf("фильтр all пропускает всё, включая нераспознанные тональности, получили %d", len(all))
	}
}

func TestFilterSortDoesNotMutateInput(t *testing.T) {
	records := []domain.Feedback{
		{ID: 1, Timestamp: 100},
		{ID: 2, Timestamp: 300},
		{ID: 3, Timestamp: 200},
	}
	_ = FilterSort(records, domain.FilterAll, domain.SortRecent)
	if records[0].ID != 1 || records[1].ID != 2 || records[2].ID != 3 {
		t.Fatalf("входной срез не должен изменяться: %v", records)
	}
}

func TestFilterSortStableOnEqualKeys(t *testing.T) {
	records := []domain.Feedback{
		{ID: 1, Timestamp: 100, User: "alice"},
		{ID: 2, Timestamp: 100, User: "alice"},
		{ID: 3, Timestamp: 100, User: "alice"},
	}

	byTime := FilterSort(records, domain.FilterAll, domain.SortRecent)
	if byTime[0].ID != 1 || byTime[1].ID != 2 || byTime[2].ID != 3 {
		t.Fatalf("при равных метках времени порядок должен сохраняться: %v", byTime)
	}

	byUser := FilterSort(records, domain.FilterAll, domain.SortUser)
	if byUser[0].ID != 1 || byUser[1].ID != 2 || byUser[2].ID != 3 {
		t.Fatalf("при равных именах порядок должен сохраняться: %v", byUser)
	}
}

func TestFilterSortIdempotent(t *testing.T) {
	records := []domain.Feedback{
		{ID: 1, Timestamp: 100},
		{ID: 2, Timestamp: 300},
		{ID: 3, Timestamp: 200},
	}
	once := FilterSort(records, domain.FilterAll, domain.SortRecent)
	twice := FilterSort(once, domain.FilterAll, domain.SortRecent)
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("повторная сортировка не должна менять порядок: %v vs %v", once, twice)
		}
	}
}

func TestSortUserLocaleAware(t *testing.T) {
	records := []domain.Feedback{
		{ID: 1, User: "Bob"},
		{ID: 2, User: "alice"},
	}
	byUser := FilterSort(records, domain.FilterAll, domain.SortUser)
	if byUser[0].User != "alice" || byUser[1].User != "Bob" {
		t.Fatalf("ожидали сортировку по локали (alice раньше Bob), получили %v", byUser)
	}
}
