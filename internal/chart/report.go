package chart

import (
	"time"

	"github.com/daryltucker/solver-radar/internal/config"
	"github.com/daryltucker/solver-radar/internal/model"
)

// Report bundles one radar plot per problem class.
type Report struct {
	GeneratedAt time.Time   `json:"generated_at" msgpack:"generated_at"`
	Solvers     []string    `json:"solvers" msgpack:"solvers"`
	TimeLimit   float64     `json:"time_limit" msgpack:"time_limit"`
	Charts      []RadarData `json:"charts" msgpack:"charts"`
}

// NewReport builds a report in model.Classes order. A class missing from
// data is rendered as an empty chart.
func NewReport(data map[model.ProblemClass][]model.BenchmarkInstance, cfg *config.Config, now time.Time) Report {
	r := Report{
		GeneratedAt: now,
		Solvers:     append([]string(nil), cfg.Solvers...),
		TimeLimit:   cfg.TimeLimit,
		Charts:      make([]RadarData, 0, len(model.Classes)),
	}
	for _, class := range model.Classes {
		r.Charts = append(r.Charts, Build(class, data[class], cfg))
	}
	return r
}

// Chart returns the plot for class, if present.
func (r Report) Chart(class model.ProblemClass) (RadarData, bool) {
	for _, rd := range r.Charts {
		if rd.Class == class {
			return rd, true
		}
	}
	return RadarData{}, false
}
