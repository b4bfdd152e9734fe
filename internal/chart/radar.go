// Package chart builds chart-ready radar data from benchmark instances.
//
// The output mirrors the Chart.js radar data structure so the HTML page can
// hand it to the library unchanged; the static renderers in internal/output
// read the same structure.
package chart

import (
	"fmt"
	"strings"

	"github.com/daryltucker/solver-radar/internal/aggregate"
	"github.com/daryltucker/solver-radar/internal/config"
	"github.com/daryltucker/solver-radar/internal/model"
)

// Dataset is one overlay series: a solver configuration's count vector.
type Dataset struct {
	Label                     string            `json:"label" msgpack:"label"`
	Data                      model.CountVector `json:"data" msgpack:"data"`
	Fill                      bool              `json:"fill" msgpack:"fill"`
	BackgroundColor           string            `json:"backgroundColor" msgpack:"backgroundColor"`
	BorderColor               string            `json:"borderColor" msgpack:"borderColor"`
	PointBackgroundColor      string            `json:"pointBackgroundColor" msgpack:"pointBackgroundColor"`
	PointBorderColor          string            `json:"pointBorderColor" msgpack:"pointBorderColor"`
	PointHoverBackgroundColor string            `json:"pointHoverBackgroundColor" msgpack:"pointHoverBackgroundColor"`
	PointHoverBorderColor     string            `json:"pointHoverBorderColor" msgpack:"pointHoverBorderColor"`
}

// RadarData is one radar plot: category labels plus one dataset per configuration.
type RadarData struct {
	Class        model.ProblemClass `json:"class" msgpack:"class"`
	Title        string             `json:"title" msgpack:"title"`
	Instances    int                `json:"instances" msgpack:"instances"`
	Labels       []string           `json:"labels" msgpack:"labels"`
	Datasets     []Dataset          `json:"datasets" msgpack:"datasets"`
	SuggestedMin int                `json:"suggestedMin" msgpack:"suggestedMin"`
	SuggestedMax int                `json:"suggestedMax" msgpack:"suggestedMax"`
}

// palette colours configurations without an explicit entry, in order.
var palette = []config.SolverColor{
	{Background: "rgba(75, 192, 192, 0.2)", Border: "rgb(75, 192, 192)"},
	{Background: "rgba(255, 159, 64, 0.2)", Border: "rgb(255, 159, 64)"},
	{Background: "rgba(153, 102, 255, 0.2)", Border: "rgb(153, 102, 255)"},
	{Background: "rgba(255, 205, 86, 0.2)", Border: "rgb(255, 205, 86)"},
	{Background: "rgba(201, 203, 207, 0.2)", Border: "rgb(201, 203, 207)"},
}

// Build aggregates instances and wraps the counts as radar data.
// Nil instances (nothing loaded yet) give empty labels and datasets.
func Build(class model.ProblemClass, instances []model.BenchmarkInstance, cfg *config.Config) RadarData {
	rd := RadarData{
		Class:        class,
		Title:        Title(class, len(instances)),
		Instances:    len(instances),
		Labels:       []string{},
		Datasets:     []Dataset{},
		SuggestedMin: 0,
		SuggestedMax: cfg.SuggestedMax,
	}
	if instances == nil {
		return rd
	}

	counts := aggregate.Count(class, instances, cfg.Solvers, cfg.TimeLimit)
	rd.Labels = append(rd.Labels, aggregate.Categories(class)...)
	colors := Colors(cfg)
	for _, name := range cfg.Solvers {
		rd.Datasets = append(rd.Datasets, newDataset(name, counts[name], colors[name]))
	}
	return rd
}

// Title is the plot heading, e.g. "COP (42 instances)".
func Title(class model.ProblemClass, instances int) string {
	return fmt.Sprintf("%s (%d instances)", class.Title(), instances)
}

// Colors resolves a colour scheme for every configured solver. Configured
// entries win; the rest take palette entries in solver order.
func Colors(cfg *config.Config) map[string]config.SolverColor {
	out := make(map[string]config.SolverColor, len(cfg.Solvers))
	next := 0
	for _, name := range cfg.Solvers {
		if c, ok := cfg.Colors[name]; ok && c.Border != "" {
			if c.Background == "" {
				c.Background = c.Border
			}
			out[name] = c
			continue
		}
		out[name] = palette[next%len(palette)]
		next++
	}
	return out
}

func newDataset(name string, data model.CountVector, c config.SolverColor) Dataset {
	return Dataset{
		Label:                     name,
		Data:                      data,
		Fill:                      true,
		BackgroundColor:           c.Background,
		BorderColor:               c.Border,
		PointBackgroundColor:      c.Border,
		PointBorderColor:          "#fff",
		PointHoverBackgroundColor: "#fff",
		PointHoverBorderColor:     c.Border,
	}
}

// Summary renders counts as "Best=1 Fastest=1 ..." for log lines.
func Summary(labels []string, data model.CountVector) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		if i < len(data) {
			parts = append(parts, fmt.Sprintf("%s=%d", strings.ReplaceAll(label, " ", "_"), data[i]))
		}
	}
	return strings.Join(parts, " ")
}
