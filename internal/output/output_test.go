package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/daryltucker/solver-radar/internal/chart"
	"github.com/daryltucker/solver-radar/internal/config"
	"github.com/daryltucker/solver-radar/internal/model"
)

func f64(v float64) *float64 { return &v }

func sampleReport() chart.Report {
	data := map[model.ProblemClass][]model.BenchmarkInstance{
		model.ClassCOP: {
			{Solvers: []model.SolverResult{{Solver: "DEFAULT", Optim: f64(5)}}},
			{Solvers: []model.SolverResult{{Solver: "DEFAULT"}}},
		},
		model.ClassCSP: {},
	}
	return chart.NewReport(data, config.DefaultConfig(), time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.json")
	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}
	if err := w.Write(sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Solvers []string `json:"solvers"`
		Charts  []struct {
			Class    string   `json:"class"`
			Labels   []string `json:"labels"`
			Datasets []struct {
				Label string `json:"label"`
				Data  []int  `json:"data"`
			} `json:"datasets"`
		} `json:"charts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(doc.Charts) != 2 || doc.Charts[0].Class != "cop" {
		t.Fatalf("charts=%+v", doc.Charts)
	}
	if got := doc.Charts[0].Datasets[0].Data; !reflect.DeepEqual(got, []int{1, 1, 0, 0, 1}) {
		t.Errorf("DEFAULT data=%v", got)
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}
	for _, rd := range sampleReport().Charts {
		if err := w.Write(rd); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	// header + 2 solvers * 5 COP categories + 2 solvers * 4 CSP categories
	if len(rows) != 1+10+8 {
		t.Fatalf("rows=%d, want 19", len(rows))
	}
	if !reflect.DeepEqual(rows[0], CSVHeader) {
		t.Errorf("header=%v", rows[0])
	}
	if want := []string{"cop", "DEFAULT", "No sol", "1", "2"}; !reflect.DeepEqual(rows[5], want) {
		t.Errorf("row 5=%v, want %v", rows[5], want)
	}
	if want := []string{"csp", "LCG", "No sol", "0", "0"}; !reflect.DeepEqual(rows[18], want) {
		t.Errorf("last row=%v, want %v", rows[18], want)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	want := sampleReport()

	var buf bytes.Buffer
	if err := WriteMsgpack(&buf, want); err != nil {
		t.Fatalf("WriteMsgpack: %v", err)
	}
	got, err := ReadMsgpack(&buf)
	if err != nil {
		t.Fatalf("ReadMsgpack: %v", err)
	}

	if !got.GeneratedAt.Equal(want.GeneratedAt) {
		t.Errorf("generated_at=%v, want %v", got.GeneratedAt, want.GeneratedAt)
	}
	if len(got.Charts) != 2 || got.Charts[0].Title != want.Charts[0].Title {
		t.Fatalf("charts=%+v", got.Charts)
	}
	if !reflect.DeepEqual(got.Charts[0].Datasets[1].Data, want.Charts[0].Datasets[1].Data) {
		t.Errorf("LCG data=%v", got.Charts[0].Datasets[1].Data)
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, sampleReport()); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		ChartJSURL,
		`id="radar-cop"`,
		`id="radar-csp"`,
		`"title":"COP (2 instances)"`,
		`type: 'radar'`,
		"<h1>Visualisation Result</h1>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderImage(t *testing.T) {
	cop, _ := sampleReport().Chart(model.ClassCOP)

	var svg bytes.Buffer
	if err := RenderImage(&svg, cop, "svg", 600, 400); err != nil {
		t.Fatalf("svg: %v", err)
	}
	if !strings.Contains(svg.String(), "<svg") {
		t.Error("svg output missing <svg")
	}

	var png bytes.Buffer
	if err := RenderImage(&png, cop, "PNG", 600, 400); err != nil {
		t.Fatalf("png: %v", err)
	}
	if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")) {
		t.Error("png output missing signature")
	}

	if err := RenderImage(&svg, cop, "gif", 600, 400); err == nil {
		t.Error("expected unsupported format error")
	}

	empty := chart.Build(model.ClassCSP, nil, config.DefaultConfig())
	if err := RenderImage(&svg, empty, "svg", 600, 400); !errors.Is(err, ErrNoData) {
		t.Errorf("err=%v, want ErrNoData", err)
	}
}

func TestParseCSSColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		a       uint8
		ok      bool
	}{
		{"rgb(54, 162, 235)", 54, 162, 235, 255, true},
		{"rgba(255, 99, 132, 0.2)", 255, 99, 132, 51, true},
		{"#ff0000", 255, 0, 0, 255, true},
		{"#00ff0080", 0, 255, 0, 128, true},
		{"rgb(300, 0, 0)", 0, 0, 0, 0, false},
		{"rgb(1, 2)", 0, 0, 0, 0, false},
		{"#zzzzzz", 0, 0, 0, 0, false},
		{"blue", 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		c, ok := parseCSSColor(tt.in)
		if ok != tt.ok {
			t.Errorf("parseCSSColor(%q) ok=%v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && (c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a) {
			t.Errorf("parseCSSColor(%q)=%+v", tt.in, c)
		}
	}
}

func TestSummaryTable(t *testing.T) {
	cop, _ := sampleReport().Chart(model.ClassCOP)
	out := SummaryTable(cop)

	for _, want := range []string{"COP (2 instances)", "DEFAULT", "LCG", "No sol"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummary_EmptyChart(t *testing.T) {
	r := chart.NewReport(nil, config.DefaultConfig(), time.Now())

	var buf bytes.Buffer
	PrintSummary(&buf, r)

	if !strings.Contains(buf.String(), "COP: no data loaded") {
		t.Errorf("summary=%q", buf.String())
	}
}

func TestConfigureLogger(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	ConfigureLogger("warn", "json", &buf)
	Logger.Info("hidden")
	Logger.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected JSON warn line, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "WARNING": slog.LevelWarn, "error": slog.LevelError, "": slog.LevelInfo, "bogus": slog.LevelInfo,
	} {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestRenderImage_CountsAboveSuggestedMax(t *testing.T) {
	rd := chart.RadarData{
		Class:        model.ClassCOP,
		Title:        "COP (250 instances)",
		Labels:       []string{"Best", "Fastest", "No sol"},
		SuggestedMax: 60,
		Datasets: []chart.Dataset{
			{Label: "DEFAULT", Data: model.CountVector{250, 250, 0}, BorderColor: "rgb(54, 162, 235)"},
			{Label: "LCG", Data: model.CountVector{0}, BorderColor: "not-a-colour"},
		},
	}

	var svg bytes.Buffer
	if err := RenderImage(&svg, rd, "svg", 600, 400); err != nil {
		t.Fatalf("svg: %v", err)
	}
	for _, want := range []string{"<svg", "DEFAULT", "LCG"} {
		if !strings.Contains(svg.String(), want) {
			t.Errorf("svg missing %q", want)
		}
	}
}
