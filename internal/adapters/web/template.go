package web

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Customer Feedback Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f5f6f8; color: #1f2430; }
.wrap { max-width: 960px; margin: 0 auto; padding: 24px 16px 48px; }
h1 { font-size: 1.6rem; margin-bottom: 4px; }
.meta { color: #6b7280; font-size: 0.8rem; margin-bottom: 24px; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 12px; margin-bottom: 24px; }
.card { background: #fff; border-radius: 8px; padding: 16px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.card .num { font-size: 1.8rem; font-weight: 700; }
.card .pct { color: #6b7280; font-size: 0.85rem; }
section { margin-bottom: 24px; }
h2 { font-size: 1.1rem; margin-bottom: 8px; }
.summary { background: #fff; border-radius: 8px; padding: 16px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
.themes span { display: inline-block; background: #e8edff; color: #3b4a9f; border-radius: 999px; padding: 4px 12px; margin: 0 6px 6px 0; font-size: 0.85rem; }
.actions li { margin-bottom: 6px; }
.controls { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 12px; align-items: center; }
.controls .group-label { color: #6b7280; font-size: 0.85rem; margin-right: 4px; }
button.control { border: 1px solid #d1d5db; background: #fff; border-radius: 6px; padding: 6px 14px; cursor: pointer; font-size: 0.85rem; }
button.control.active { background: #3b4a9f; border-color: #3b4a9f; color: #fff; }
table { width: 100%; border-collapse: collapse; background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
th, td { text-align: left; padding: 10px 12px; border-bottom: 1px solid #eef0f3; font-size: 0.9rem; vertical-align: top; }
th { background: #f9fafb; color: #6b7280; font-size: 0.8rem; text-transform: uppercase; }
.badge { border-radius: 999px; padding: 2px 10px; font-size: 0.8rem; white-space: nowrap; }
.badge.positive { background: #dcf5e7; color: #157347; }
.badge.neutral { background: #edeff2; color: #495057; }
.badge.negative { background: #fde3e3; color: #b02a37; }
.badge.unknown { background: #fff3cd; color: #8a6d1a; }
.count { color: #6b7280; font-size: 0.85rem; margin-bottom: 8px; }
</style>
</head>
<body>
<div class="wrap">
<h1>Customer Feedback Report</h1>
<p class="meta">Report {{.Report.ID}} · generated {{.Report.GeneratedAt.Format "2006-01-02 15:04:05"}} UTC</p>

<div class="cards">
<div class="card"><div class="num">{{.Stats.Total}}</div><div class="pct">total entries</div></div>
<div class="card"><div class="num">{{.Stats.Positive}}</div><div class="pct">positive · {{.Stats.PositivePercent}}%</div></div>
<div class="card"><div class="num">{{.Stats.Neutral}}</div><div class="pct">neutral · {{.Stats.NeutralPercent}}%</div></div>
<div class="card"><div class="num">{{.Stats.Negative}}</div><div class="pct">negative · {{.Stats.NegativePercent}}%</div></div>
</div>

<section>
<h2>Summary</h2>
<p class="summary">{{.Insights.Summary}}</p>
</section>

{{if .Insights.Themes}}
<section>
<h2>Themes</h2>
<div class="themes">{{range .Insights.Themes}}<span>{{.}}</span>{{end}}</div>
</section>
{{end}}

{{if .Insights.Actions}}
<section>
<h2>Actionable insights</h2>
<ul class="actions">{{range .Insights.Actions}}<li>{{.}}</li>{{end}}</ul>
</section>
{{end}}

<section>
<h2>Feedback entries</h2>
<div class="controls">
<span class="group-label">Sentiment:</span>
{{range .Filters}}<button type="button" class="control{{if .Active}} active{{end}}" data-filter="{{.Value}}">{{.Label}}</button>{{end}}
<span class="group-label">Sort:</span>
{{range .Sorts}}<button type="button" class="control{{if .Active}} active{{end}}" data-sort="{{.Value}}">{{.Label}}</button>{{end}}
</div>
<p class="count"><span id="records-count">{{len .Rows}}</span> entries shown</p>
<table>
<thead><tr><th>User</th><th>Comment</th><th>Source</th><th>Sentiment</th><th>Time (UTC)</th></tr></thead>
<tbody id="records-body">
{{range .Rows}}
<tr>
<td>{{.User}}</td>
<td>{{.Comment}}</td>
<td>{{.Source}}</td>
<td><span class="badge {{badgeClass .Sentiment}}">{{.Sentiment}}</span></td>
<td>{{fmtTime .Timestamp}}</td>
</tr>
{{end}}
</tbody>
</table>
</section>
</div>

<script>
(function () {
	var state = { sentiment: {{.Filter}}, sort: {{.Sort}} };
	// Полный набор записей доступен клиентскому окружению как есть.
	window.reportRecords = {{.RecordsJSON}};

	function fmtTime(ts) {
		return new Date(ts * 1000).toISOString().slice(0, 16).replace('T', ' ');
	}

	function badgeClass(s) {
		return (s === 'positive' || s === 'neutral' || s === 'negative') ? s : 'unknown';
	}

	function textCell(value) {
		var td = document.createElement('td');
		td.textContent = value;
		return td;
	}

	function renderRows(rows) {
		var tbody = document.getElementById('records-body');
		tbody.textContent = '';
		rows.forEach(function (r) {
			var tr = document.createElement('tr');
			tr.appendChild(textCell(r.user));
			tr.appendChild(textCell(r.comment));
			tr.appendChild(textCell(r.source));
			var td = document.createElement('td');
			var badge = document.createElement('span');
			badge.className = 'badge ' + badgeClass(r.sentiment);
			badge.textContent = r.sentiment;
			td.appendChild(badge);
			tr.appendChild(td);
			tr.appendChild(textCell(fmtTime(r.timestamp)));
			tbody.appendChild(tr);
		});
		document.getElementById('records-count').textContent = String(rows.length);
	}

	function setActive(attr, value) {
		document.querySelectorAll('button[data-' + attr + ']').forEach(function (btn) {
			btn.classList.toggle('active', btn.getAttribute('data-' + attr) === value);
		});
	}

	function refresh() {
		var query = '?sentiment=' + encodeURIComponent(state.sentiment) + '&sort=' + encodeURIComponent(state.sort);
		fetch('/api/v1/report/records' + query)
			.then(function (resp) {
				if (!resp.ok) { throw new Error('request failed: ' + resp.status); }
				return resp.json();
			})
			.then(renderRows)
			.catch(function () { /* при ошибке сети таблица остаётся прежней */ });
	}

	document.querySelectorAll('button[data-filter]').forEach(function (btn) {
		btn.addEventListener('click', function () {
			state.sentiment = btn.getAttribute('data-filter');
			setActive('filter', state.sentiment);
			refresh();
		});
	});

	document.querySelectorAll('button[data-sort]').forEach(function (btn) {
		btn.addEventListener('click', function () {
			state.sort = btn.getAttribute('data-sort');
			setActive('sort', state.sort);
			refresh();
		});
	});
})();
</script>
</body>
</html>
`
