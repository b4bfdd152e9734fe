/*
PURPOSE:
  Defines the core data structures used throughout Solver Radar.
  These models represent uploaded benchmark results and the count
  vectors derived from them.

REQUIREMENTS:
  User-specified:
  - One instance holds the results of every solver configuration run on it.
  - Optimization (COP) and satisfaction (CSP) results share one record shape.

  Implementation-discovered:
  - Optional numeric fields must distinguish "absent" from zero, so they are pointers.
  - Uploaded files are hand-edited; a field of the wrong JSON type must not
    reject the whole file (see decode.go).

ARCHITECTURE INTEGRATION:
  - Used by: internal/ingest, internal/aggregate, internal/chart, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs). Decoding leniency lives in decode.go.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - JSON tags must match the benchmark export format (snake_case).

USAGE:
  var instances []model.BenchmarkInstance
  json.Unmarshal(data, &instances)

SELF-HEALING INSTRUCTIONS:
  - If the benchmark exporter adds fields, add them here and in decode.go.

RELATED FILES:
  - internal/model/decode.go
  - internal/aggregate/aggregate.go

MAINTENANCE:
  - Update when the benchmark export format changes.
*/

package model

import (
	"fmt"
	"strings"
)

// NoOptimum is the optim value substituted when no optimal value was found.
const NoOptimum = -1

// DefaultTimeLimit is the fallback, in seconds, for absent timing fields.
const DefaultTimeLimit = 1200

// Satisfaction statuses reported by the solver.
const (
	StatusSAT     = "SAT"
	StatusUNSAT   = "UNSAT"
	StatusUnknown = "UNKNOWN"
)

// DefaultSolvers are the solver configurations compared out of the box.
var DefaultSolvers = []string{"DEFAULT", "LCG"}

// ProblemClass identifies which kind of benchmark a file holds.
type ProblemClass string

const (
	ClassCOP ProblemClass = "cop"
	ClassCSP ProblemClass = "csp"
)

// Classes lists every problem class in display order.
var Classes = []ProblemClass{ClassCOP, ClassCSP}

// ParseClass maps user input ("cop", "CSP", ...) to a ProblemClass.
func ParseClass(s string) (ProblemClass, error) {
	switch ProblemClass(strings.ToLower(strings.TrimSpace(s))) {
	case ClassCOP:
		return ClassCOP, nil
	case ClassCSP:
		return ClassCSP, nil
	}
	return "", fmt.Errorf("unknown problem class %q (want cop or csp)", s)
}

// Title is the upper-case label used in chart titles.
func (c ProblemClass) Title() string {
	switch c {
	case ClassCOP:
		return "COP"
	case ClassCSP:
		return "CSP"
	}
	return string(c)
}

// BenchmarkInstance is one evaluated problem instance.
type BenchmarkInstance struct {
	Solvers []SolverResult `json:"solvers" msgpack:"solvers"`
}

// SolverResult is the outcome of one solver configuration on one instance.
// COP files fill Optim/BestBound/TimeBestBound, CSP files fill Status/Time.
type SolverResult struct {
	Solver        string   `json:"solver" msgpack:"solver"`
	Optim         *float64 `json:"optim,omitempty" msgpack:"optim,omitempty"`
	BestBound     *float64 `json:"best_bound,omitempty" msgpack:"best_bound,omitempty"`
	TimeBestBound *float64 `json:"time_best_bound,omitempty" msgpack:"time_best_bound,omitempty"`
	Status        *string  `json:"status,omitempty" msgpack:"status,omitempty"`
	Time          *float64 `json:"time,omitempty" msgpack:"time,omitempty"`
}

// CountVector holds one counter per outcome category.
type CountVector []int

// Sum returns the total of all slots.
func (v CountVector) Sum() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// Counts maps a solver configuration name to its count vector.
type Counts map[string]CountVector
