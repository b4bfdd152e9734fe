/*
PURPOSE:
  High-level runner that orchestrates a batch render.
  Loads the COP and CSP files -> aggregates -> writes every requested output.

REQUIREMENTS:
  User-specified:
  - Produce the two radar plots from one COP file and one CSP file.
  - Log results to JSON/CSV (plus msgpack, HTML and images on request).

  Implementation-discovered:
  - Both files are independent, so they are decoded concurrently.
  - Image renderers fail on empty plots; those are skipped with a warning.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/ingest, internal/chart, internal/output

ERROR HANDLING:
  - A file that fails to parse aborts the run (no prior state exists in batch mode).
  - Output write failures abort the run; earlier files stay on disk.

IMPLEMENTATION RULES:
  - Each goroutine writes only its own workspace slot.
  - Output names are <base>.<ext> (images: <base>_<class>.<ext>) inside OutputDir.

USAGE:
  res, err := engine.Run(ctx, cfg, engine.Inputs{COP: "cop.json", CSP: "csp.json"})

RELATED FILES:
  - internal/cli/render.go
*/

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/solver-radar/internal/chart"
	"github.com/daryltucker/solver-radar/internal/config"
	"github.com/daryltucker/solver-radar/internal/ingest"
	"github.com/daryltucker/solver-radar/internal/model"
	"github.com/daryltucker/solver-radar/internal/output"
)

// DefaultBaseName names output files when Inputs.BaseName is empty.
const DefaultBaseName = "radar"

// Inputs are the files of one batch render. Either path may be empty, in
// which case that plot is rendered empty.
type Inputs struct {
	COP      string
	CSP      string
	BaseName string
}

// Result lists what a run produced.
type Result struct {
	Report chart.Report
	Files  []string
}

// Run executes a full render.
func Run(ctx context.Context, cfg *config.Config, in Inputs) (*Result, error) {
	ws := ingest.NewWorkspace()
	if err := LoadAll(ctx, ws, map[model.ProblemClass]string{
		model.ClassCOP: in.COP,
		model.ClassCSP: in.CSP,
	}); err != nil {
		return nil, err
	}

	report := BuildReport(ws, cfg, time.Now())
	for _, rd := range report.Charts {
		for _, ds := range rd.Datasets {
			output.Logger.Info("Aggregated", "class", rd.Class, "solver", ds.Label, "counts", chart.Summary(rd.Labels, ds.Data))
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	base := in.BaseName
	if base == "" {
		base = DefaultBaseName
	}
	files, err := WriteOutputs(cfg, report, base)
	return &Result{Report: report, Files: files}, err
}

// LoadAll decodes every non-empty path into its slot concurrently.
func LoadAll(ctx context.Context, ws *ingest.Workspace, paths map[model.ProblemClass]string) error {
	g, gctx := errgroup.WithContext(ctx)
	for class, path := range paths {
		if path == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return loadFile(ws, class, path)
		})
	}
	return g.Wait()
}

func loadFile(ws *ingest.Workspace, class model.ProblemClass, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s file: %w", class.Title(), err)
	}
	defer f.Close()

	if err := ws.Load(class, filepath.Base(path), f); err != nil {
		return fmt.Errorf("load %s file %s: %w", class.Title(), path, err)
	}
	return nil
}

// BuildReport turns the loaded slots into a report. Unloaded slots yield
// empty plots.
func BuildReport(ws *ingest.Workspace, cfg *config.Config, now time.Time) chart.Report {
	data := make(map[model.ProblemClass][]model.BenchmarkInstance, len(model.Classes))
	for class, slot := range ws.Snapshot() {
		if slot.Loaded {
			data[class] = slot.Instances
		}
	}
	return chart.NewReport(data, cfg, now)
}

// WriteOutputs writes every format listed in cfg.Formats and returns the paths written.
func WriteOutputs(cfg *config.Config, report chart.Report, base string) ([]string, error) {
	var files []string
	path := func(ext string) string { return filepath.Join(cfg.OutputDir, base+"."+ext) }

	if cfg.HasFormat(config.FormatJSON) {
		p := path("json")
		w, err := output.NewJSONWriter(p)
		if err != nil {
			return files, fmt.Errorf("failed to init JSON writer at %s: %w", p, err)
		}
		err = w.Write(report)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return files, fmt.Errorf("failed to write JSON report: %w", err)
		}
		files = append(files, p)
	}

	if cfg.HasFormat(config.FormatCSV) {
		p := path("csv")
		w, err := output.NewCSVWriter(p)
		if err != nil {
			return files, fmt.Errorf("failed to init CSV writer at %s: %w", p, err)
		}
		for _, rd := range report.Charts {
			if err = w.Write(rd); err != nil {
				break
			}
		}
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return files, fmt.Errorf("failed to write CSV report: %w", err)
		}
		files = append(files, p)
	}

	if cfg.HasFormat(config.FormatMsgpack) {
		p := path("msgpack")
		if err := output.SaveMsgpack(p, report); err != nil {
			return files, fmt.Errorf("failed to write msgpack report: %w", err)
		}
		files = append(files, p)
	}

	if cfg.HasFormat(config.FormatHTML) {
		p := path("html")
		if err := output.SaveHTML(p, report); err != nil {
			return files, fmt.Errorf("failed to write HTML report: %w", err)
		}
		files = append(files, p)
	}

	for _, format := range []string{config.FormatSVG, config.FormatPNG} {
		if !cfg.HasFormat(format) {
			continue
		}
		for _, rd := range report.Charts {
			if len(rd.Datasets) == 0 {
				output.Logger.Warn("Skipping image for empty chart", "class", rd.Class, "format", format)
				continue
			}
			p := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s.%s", base, rd.Class, format))
			if err := output.SaveImage(p, rd, format, cfg.ChartWidth, cfg.ChartHeight); err != nil {
				return files, fmt.Errorf("failed to render %s chart: %w", rd.Class, err)
			}
			files = append(files, p)
		}
	}

	for _, f := range files {
		output.Logger.Info("Wrote output", "path", f)
	}
	return files, nil
}
