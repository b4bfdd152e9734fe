package aggregate

import "github.com/daryltucker/solver-radar/internal/model"

// ResultIndex maps a solver configuration name to its result within one instance.
type ResultIndex map[string]model.SolverResult

// Index builds the name lookup for an instance. When a name appears more
// than once the first entry wins.
func Index(inst model.BenchmarkInstance) ResultIndex {
	idx := make(ResultIndex, len(inst.Solvers))
	for _, r := range inst.Solvers {
		if _, seen := idx[r.Solver]; seen {
			continue
		}
		idx[r.Solver] = r
	}
	return idx
}

// COPEntry is an optimization result with defaults applied.
type COPEntry struct {
	Optim         float64
	BestBound     *float64
	TimeBestBound float64
}

// Solved reports whether an optimal value was found.
func (e COPEntry) Solved() bool {
	return e.Optim != model.NoOptimum
}

// CSPEntry is a satisfaction result with defaults applied.
type CSPEntry struct {
	Status string
	Time   float64
}

// ResolveCOP returns the entry for name, substituting NoOptimum, a nil
// bound and timelimit for whatever is missing.
func ResolveCOP(idx ResultIndex, name string, timelimit float64) COPEntry {
	entry := COPEntry{Optim: model.NoOptimum, TimeBestBound: timelimit}
	r, ok := idx[name]
	if !ok {
		return entry
	}
	if r.Optim != nil {
		entry.Optim = *r.Optim
	}
	entry.BestBound = r.BestBound
	if r.TimeBestBound != nil {
		entry.TimeBestBound = *r.TimeBestBound
	}
	return entry
}

// ResolveCSP returns the entry for name, substituting UNKNOWN and timelimit
// for whatever is missing.
func ResolveCSP(idx ResultIndex, name string, timelimit float64) CSPEntry {
	entry := CSPEntry{Status: model.StatusUnknown, Time: timelimit}
	r, ok := idx[name]
	if !ok {
		return entry
	}
	if r.Status != nil {
		entry.Status = *r.Status
	}
	if r.Time != nil {
		entry.Time = *r.Time
	}
	return entry
}
