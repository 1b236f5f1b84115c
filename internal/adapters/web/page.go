package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"feedback-insights/internal/domain"
	"feedback-insights/internal/usecase/report"
)

// Renderer отвечает за HTML-представление отчёта. Всё свободнотекстовое
// содержимое экранируется здесь и только здесь — контекстным
// автоэкранированием html/template; генератор выводов отдаёт сырой текст.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer разбирает шаблон страницы отчёта.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"fmtTime":    formatTimestamp,
		"badgeClass": badgeClass,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("разбор шаблона: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type control struct {
	Value  string
	Label  string
	Active bool
}

type pageData struct {
	Report      domain.ReportView
	Stats       domain.SummaryStats
	Insights    domain.InsightReport
	Rows        []Record
	RecordsJSON template.JS
	Filter      string
	Sort        string
	Filters     []control
	Sorts       []control
}

var filterControls = []struct{ Value, Label string }{
	{Value: string(domain.FilterAll), Label: "All"},
	{Value: string(domain.FilterPositive), Label: "Positive"},
	{Value: string(domain.FilterNeutral), Label: "Neutral"},
	{Value: string(domain.FilterNegative), Label: "Negative"},
}

var sortControls = []struct{ Value, Label string }{
	{Value: string(domain.SortRecent), Label: "Newest"},
	{Value: string(domain.SortOldest), Label: "Oldest"},
	{Value: string(domain.SortUser), Label: "By user"},
}

// RenderReport пишет страницу отчёта. Таблица записей для первичного
// рендера строится тем же FilterSort, который обслуживает и последующие
// запросы страницы, поэтому оба рендера всегда согласованы.
func (r *Renderer) RenderReport(w io.Writer, view domain.ReportView, filter domain.SentimentFilter, key domain.SortKey) error {
	rows := NewRecords(report.FilterSort(view.Records, filter, key))

	// json.Marshal экранирует <, > и & в \u003c-последовательности, поэтому
	// вставка в скрипт не может разорвать тег.
	payload, err := json.Marshal(NewRecords(view.Records))
	if err != nil {
		return fmt.Errorf("сериализация записей: %w", err)
	}

	data := pageData{
		Report:      view,
		Stats:       view.Stats,
		Insights:    view.Insights,
		Rows:        rows,
		RecordsJSON: template.JS(payload),
		Filter:      string(filter),
		Sort:        string(key),
	}
	for _, c := range filterControls {
		data.Filters = append(data.Filters, control{Value: c.Value, Label: c.Label, Active: c.Value == data.Filter})
	}
	for _, c := range sortControls {
		data.Sorts = append(data.Sorts, control{Value: c.Value, Label: c.Label, Active: c.Value == data.Sort})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("рендер шаблона: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}

func badgeClass(sentiment string) string {
	switch sentiment {
	case "positive", "neutral", "negative":
		return sentiment
	}
	return "unknown"
}
