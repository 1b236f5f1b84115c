package domain

import "testing"

func TestParseSentiment(t *testing.T) {
	for _, raw := range []string{"positive", "neutral", "negative"} {
		if _, ok := ParseSentiment(raw); !ok {
			t.Fatalf("ожидали валидную тональность %q", raw)
		}
	}
	for _, raw := range []string{"", "POSITIVE", "angry", " positive"} {
		if _, ok := ParseSentiment(raw); ok {
			t.Fatalf("значение %q не должно проходить валидацию", raw)
		}
	}
}

func TestParseSentimentFilter(t *testing.T) {
	if f, ok := ParseSentimentFilter(""); !ok || f != FilterAll {
		t.Fatalf("пустой фильтр должен приводиться к all, получили %q", f)
	}
	if _, ok := ParseSentimentFilter("positive"); !ok {
		t.Fatalf("фильтр positive валиден")
	}
	if _, ok := ParseSentimentFilter("Positive"); ok {
		t.Fatalf("фильтр чувствителен к регистру")
	}
}

func TestParseSortKey(t *testing.T) {
	if k, ok := ParseSortKey(""); !ok || k != SortRecent {
		t.Fatalf("пустой ключ должен приводиться к recent, получили %q", k)
	}
	for _, raw := range []string{"recent", "oldest", "user"} {
		if _, ok := ParseSortKey(raw); !ok {
			t.Fatalf("ключ %q валиден", raw)
		}
	}
	if _, ok := ParseSortKey("name"); ok {
		t.Fatalf("неизвестный ключ должен отклоняться")
	}
}
