/*
PURPOSE:
  Folds per-instance solver results into per-configuration count vectors
  that feed the radar charts.

REQUIREMENTS:
  User-specified:
  - COP: 5 categories [Best, Fastest, Slower, Worst, No sol].
  - CSP: 4 categories [Best, Fastest, Slower, No sol].
  - A configuration missing from an instance counts as unsolved.

  Implementation-discovered:
  - Result lookup is by name, first match wins.
  - Slower/Worst (COP) are never filled: classification is per
    configuration, there is no cross-configuration ranking yet.

ARCHITECTURE INTEGRATION:
  - Called by: internal/chart, internal/engine, internal/server
  - Uses: internal/model

ERROR HANDLING:
  - None. Absent data is substituted with defaults, never reported.

IMPLEMENTATION RULES:
  - Pure functions. The result depends only on the multiset of instances.
  - Every configured name gets a vector, even with zero instances.

USAGE:
  counts := aggregate.COP(instances, []string{"DEFAULT", "LCG"}, model.DefaultTimeLimit)

SELF-HEALING INSTRUCTIONS:
  - If categories change, update the label lists and the slot constants together.

RELATED FILES:
  - internal/aggregate/resolve.go
  - internal/chart/radar.go

MAINTENANCE:
  - Cross-configuration ranking (Slower/Worst) would compare Optim and
    TimeBestBound across the resolved entries of one instance.
*/

package aggregate

import "github.com/daryltucker/solver-radar/internal/model"

// COP category slots.
const (
	COPBest = iota
	COPFastest
	COPSlower
	COPWorst
	COPNoSol
)

// CSP category slots. CSPSlower holds results that were resolved but not
// satisfied (UNSAT or any other non-UNKNOWN status).
const (
	CSPBest = iota
	CSPFastest
	CSPSlower
	CSPNoSol
)

// COPCategories are the chart labels for optimization results, in slot order.
var COPCategories = []string{"Best", "Fastest", "Slower", "Worst", "No sol"}

// CSPCategories are the chart labels for satisfaction results, in slot order.
var CSPCategories = []string{"Best", "Fastest", "Slower", "No sol"}

// Categories returns the label list for a problem class.
func Categories(class model.ProblemClass) []string {
	if class == model.ClassCOP {
		return COPCategories
	}
	return CSPCategories
}

// COP counts optimization outcomes per solver configuration.
// timelimit only backfills TimeBestBound; classification never reads it.
func COP(instances []model.BenchmarkInstance, solvers []string, timelimit float64) model.Counts {
	names := unique(solvers)
	result := newCounts(names, len(COPCategories))

	for _, inst := range instances {
		idx := Index(inst)
		for _, name := range names {
			entry := ResolveCOP(idx, name, timelimit)
			vec := result[name]
			if entry.Solved() {
				vec[COPBest]++
				vec[COPFastest]++
			} else {
				vec[COPNoSol]++
			}
		}
	}

	return result
}

// CSP counts satisfaction outcomes per solver configuration.
func CSP(instances []model.BenchmarkInstance, solvers []string, timelimit float64) model.Counts {
	names := unique(solvers)
	result := newCounts(names, len(CSPCategories))

	for _, inst := range instances {
		idx := Index(inst)
		for _, name := range names {
			entry := ResolveCSP(idx, name, timelimit)
			vec := result[name]
			switch entry.Status {
			case model.StatusSAT:
				vec[CSPBest]++
				vec[CSPFastest]++
			case model.StatusUnknown:
				vec[CSPNoSol]++
			default:
				vec[CSPSlower]++
			}
		}
	}

	return result
}

// Count dispatches to COP or CSP.
func Count(class model.ProblemClass, instances []model.BenchmarkInstance, solvers []string, timelimit float64) model.Counts {
	if class == model.ClassCOP {
		return COP(instances, solvers, timelimit)
	}
	return CSP(instances, solvers, timelimit)
}

func newCounts(solvers []string, slots int) model.Counts {
	result := make(model.Counts, len(solvers))
	for _, name := range solvers {
		result[name] = make(model.CountVector, slots)
	}
	return result
}

// unique drops repeated names so a configuration listed twice is counted once.
func unique(solvers []string) []string {
	seen := make(map[string]struct{}, len(solvers))
	out := make([]string, 0, len(solvers))
	for _, name := range solvers {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
