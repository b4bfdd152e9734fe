package ingest

import "github.com/daryltucker/solver-radar/internal/model"

// SolverStat describes how often a configuration name occurs in a file.
type SolverStat struct {
	Name      string
	Instances int
	Solved    int
}

// Survey lists every configuration name found in instances, in order of
// first appearance. An instance counts once per name; Solved counts
// instances whose first matching record has an optimum or a SAT status.
func Survey(instances []model.BenchmarkInstance) []SolverStat {
	var stats []SolverStat
	index := make(map[string]int)
	for _, inst := range instances {
		seen := make(map[string]bool, len(inst.Solvers))
		for _, res := range inst.Solvers {
			if seen[res.Solver] {
				continue
			}
			seen[res.Solver] = true

			i, ok := index[res.Solver]
			if !ok {
				i = len(stats)
				index[res.Solver] = i
				stats = append(stats, SolverStat{Name: res.Solver})
			}
			stats[i].Instances++
			if solved(res) {
				stats[i].Solved++
			}
		}
	}
	return stats
}

func solved(res model.SolverResult) bool {
	if res.Optim != nil && *res.Optim != model.NoOptimum {
		return true
	}
	return res.Status != nil && *res.Status == model.StatusSAT
}
