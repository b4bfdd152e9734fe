package output

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/daryltucker/solver-radar/internal/chart"
)

// ChartJSURL is loaded by every generated page.
const ChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js"

// FuncMap is shared by the report page and the web dashboard.
var FuncMap = template.FuncMap{
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("2006-01-02 15:04:05")
	},
	"chartJS": func() string { return ChartJSURL },
}

const tmplBase = `{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{block "title" .}}Visualisation Result{{end}}</title>
    <script src="{{chartJS}}"></script>
    <style>
        * { box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; color: #333; padding: 16px; margin: 0; }
        h1 { font-size: 1.5em; font-weight: bold; margin-bottom: 16px; }
        .timestamp { color: #666; margin-bottom: 24px; }
        .charts { display: flex; flex-wrap: wrap; justify-content: center; gap: 32px; }
        .chart { width: 100%; max-width: 32rem; background: white; padding: 16px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .dropzone { width: 100%; max-width: 28rem; border: 2px dashed #999; padding: 16px; margin-bottom: 16px; background: white; }
        .dropzone.loaded { border-color: #27ae60; }
        .flash { max-width: 28rem; padding: 8px 12px; margin-bottom: 16px; border-radius: 4px; background: #fdecea; color: #c0392b; }
        button { padding: 6px 14px; }
    </style>
</head>
<body>
{{block "content" .}}{{end}}
</body>
</html>{{end}}

{{define "radar-charts"}}
<div class="charts">
{{- range .}}
    <div class="chart"><canvas id="radar-{{.Class}}"></canvas></div>
{{- end}}
</div>
<script>
const radarCharts = {{.}};
for (const c of radarCharts) {
    new Chart(document.getElementById('radar-' + c.class), {
        type: 'radar',
        data: { labels: c.labels, datasets: c.datasets },
        options: {
            plugins: {
                title: { display: true, text: c.title },
                legend: { display: true, position: 'top' },
            },
            scales: {
                r: {
                    angleLines: { display: true },
                    suggestedMin: c.suggestedMin,
                    suggestedMax: c.suggestedMax,
                    ticks: { backdropColor: 'transparent' },
                },
            },
        },
    });
}
</script>
{{end}}`

const tmplReport = `{{define "content"}}
<h1>Visualisation Result</h1>
<p class="timestamp">Generated: {{fmtTime .GeneratedAt}} &middot; time limit {{.TimeLimit}}s</p>
{{template "radar-charts" .Charts}}
{{end}}`

// NewTemplate returns the shared layout with page appended. Pages define
// "content" and optionally "title".
func NewTemplate(page string) (*template.Template, error) {
	t, err := template.New("page").Funcs(FuncMap).Parse(tmplBase)
	if err != nil {
		return nil, err
	}
	return t.Parse(page)
}

var reportTmpl = template.Must(NewTemplate(tmplReport))

// RenderHTML writes the standalone report page.
func RenderHTML(w io.Writer, r chart.Report) error {
	return reportTmpl.ExecuteTemplate(w, "base", r)
}

// SaveHTML writes the report page to path.
func SaveHTML(path string, r chart.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderHTML(f, r); err != nil {
		f.Close()
		return fmt.Errorf("render html: %w", err)
	}
	return f.Close()
}
