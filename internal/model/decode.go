package model

import "encoding/json"

// UnmarshalJSON decodes an instance, tolerating a missing or malformed
// "solvers" member. Anything that is not an object becomes an instance
// with no results.
func (b *BenchmarkInstance) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*b = BenchmarkInstance{}
		return nil
	}

	var out BenchmarkInstance
	if v, ok := raw["solvers"]; ok {
		if err := json.Unmarshal(v, &out.Solvers); err != nil {
			out.Solvers = nil
		}
	}
	*b = out
	return nil
}

// UnmarshalJSON decodes a solver result field by field. A field holding
// the wrong JSON type is treated as absent so callers fall back to the
// documented defaults instead of rejecting the file.
func (r *SolverResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = SolverResult{}
		return nil
	}

	var out SolverResult
	if name := optionalString(raw, "solver"); name != nil {
		out.Solver = *name
	}
	out.Optim = optionalFloat(raw, "optim")
	out.BestBound = optionalFloat(raw, "best_bound")
	out.TimeBestBound = optionalFloat(raw, "time_best_bound")
	out.Status = optionalString(raw, "status")
	out.Time = optionalFloat(raw, "time")
	*r = out
	return nil
}

func optionalFloat(raw map[string]json.RawMessage, key string) *float64 {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	var f *float64
	if err := json.Unmarshal(v, &f); err != nil {
		return nil
	}
	return f
}

func optionalString(raw map[string]json.RawMessage, key string) *string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil
	}
	return s
}
