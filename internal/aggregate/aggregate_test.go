package aggregate

import (
	"encoding/json"
	"math/rand"
	"reflect"
	"testing"

	"github.com/daryltucker/solver-radar/internal/model"
)

func decode(t *testing.T, data string) []model.BenchmarkInstance {
	t.Helper()
	var out []model.BenchmarkInstance
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return out
}

func TestCOP_Example(t *testing.T) {
	instances := decode(t, `[{"solvers":[{"solver":"DEFAULT","optim":5}]}, {"solvers":[{"solver":"DEFAULT"}]}]`)

	got := COP(instances, model.DefaultSolvers, model.DefaultTimeLimit)

	want := model.Counts{
		"DEFAULT": {1, 1, 0, 0, 1},
		"LCG":     {0, 0, 0, 0, 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("COP()=%v, want %v", got, want)
	}
}

func TestCSP_Example(t *testing.T) {
	instances := decode(t, `[{"solvers":[{"solver":"LCG","status":"SAT"}]}]`)

	got := CSP(instances, model.DefaultSolvers, model.DefaultTimeLimit)

	want := model.Counts{
		"DEFAULT": {0, 0, 0, 1},
		"LCG":     {1, 1, 0, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CSP()=%v, want %v", got, want)
	}
}

func TestCOP_Classification(t *testing.T) {
	tests := []struct {
		name string
		data string
		want model.CountVector
	}{
		{"optimum found", `[{"solvers":[{"solver":"LCG","optim":0}]}]`, model.CountVector{1, 1, 0, 0, 0}},
		{"negative optimum", `[{"solvers":[{"solver":"LCG","optim":-3}]}]`, model.CountVector{1, 1, 0, 0, 0}},
		{"explicit sentinel", `[{"solvers":[{"solver":"LCG","optim":-1}]}]`, model.CountVector{0, 0, 0, 0, 1}},
		{"null optim", `[{"solvers":[{"solver":"LCG","optim":null,"best_bound":4}]}]`, model.CountVector{0, 0, 0, 0, 1}},
		{"missing entry", `[{"solvers":[{"solver":"DEFAULT","optim":2}]}]`, model.CountVector{0, 0, 0, 0, 1}},
		{"no solvers member", `[{}]`, model.CountVector{0, 0, 0, 0, 1}},
		{"empty list", `[]`, model.CountVector{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := COP(decode(t, tt.data), []string{"LCG"}, model.DefaultTimeLimit)
			if !reflect.DeepEqual(got["LCG"], tt.want) {
				t.Errorf("LCG=%v, want %v", got["LCG"], tt.want)
			}
		})
	}
}

func TestCSP_Classification(t *testing.T) {
	tests := []struct {
		name string
		data string
		want model.CountVector
	}{
		{"sat", `[{"solvers":[{"solver":"DEFAULT","status":"SAT"}]}]`, model.CountVector{1, 1, 0, 0}},
		{"unsat", `[{"solvers":[{"solver":"DEFAULT","status":"UNSAT"}]}]`, model.CountVector{0, 0, 1, 0}},
		{"unknown", `[{"solvers":[{"solver":"DEFAULT","status":"UNKNOWN"}]}]`, model.CountVector{0, 0, 0, 1}},
		{"other status", `[{"solvers":[{"solver":"DEFAULT","status":"MEMOUT"}]}]`, model.CountVector{0, 0, 1, 0}},
		{"lower-case sat is not SAT", `[{"solvers":[{"solver":"DEFAULT","status":"sat"}]}]`, model.CountVector{0, 0, 1, 0}},
		{"absent status", `[{"solvers":[{"solver":"DEFAULT","time":3}]}]`, model.CountVector{0, 0, 0, 1}},
		{"missing entry", `[{"solvers":[]}]`, model.CountVector{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CSP(decode(t, tt.data), []string{"DEFAULT"}, model.DefaultTimeLimit)
			if !reflect.DeepEqual(got["DEFAULT"], tt.want) {
				t.Errorf("DEFAULT=%v, want %v", got["DEFAULT"], tt.want)
			}
		})
	}
}

func TestCOP_FirstMatchWins(t *testing.T) {
	instances := decode(t, `[{"solvers":[{"solver":"LCG"},{"solver":"LCG","optim":9}]}]`)

	got := COP(instances, []string{"LCG"}, model.DefaultTimeLimit)

	if want := (model.CountVector{0, 0, 0, 0, 1}); !reflect.DeepEqual(got["LCG"], want) {
		t.Errorf("LCG=%v, want %v", got["LCG"], want)
	}
}

func TestCOP_SlowerAndWorstStayZero(t *testing.T) {
	instances := decode(t, `[
		{"solvers":[{"solver":"DEFAULT","optim":5,"time_best_bound":1},{"solver":"LCG","optim":7,"time_best_bound":100}]},
		{"solvers":[{"solver":"DEFAULT","optim":3},{"solver":"LCG"}]}
	]`)

	got := COP(instances, model.DefaultSolvers, model.DefaultTimeLimit)

	for name, vec := range got {
		if vec[COPSlower] != 0 || vec[COPWorst] != 0 {
			t.Errorf("%s: slower=%d worst=%d, want 0", name, vec[COPSlower], vec[COPWorst])
		}
	}
}

func TestDuplicateConfigNamesCountedOnce(t *testing.T) {
	instances := decode(t, `[{"solvers":[{"solver":"LCG","status":"SAT"}]}]`)

	got := CSP(instances, []string{"LCG", "LCG"}, model.DefaultTimeLimit)

	if want := (model.CountVector{1, 1, 0, 0}); !reflect.DeepEqual(got["LCG"], want) {
		t.Errorf("LCG=%v, want %v", got["LCG"], want)
	}
}

const mixedCOP = `[
	{"solvers":[{"solver":"DEFAULT","optim":5},{"solver":"LCG","optim":4}]},
	{"solvers":[{"solver":"DEFAULT"},{"solver":"LCG","optim":1}]},
	{"solvers":[{"solver":"LCG","optim":-1}]},
	{"solvers":[]},
	{"solvers":[{"solver":"DEFAULT","optim":0},{"solver":"OTHER","optim":2}]}
]`

const mixedCSP = `[
	{"solvers":[{"solver":"DEFAULT","status":"SAT"},{"solver":"LCG","status":"UNSAT"}]},
	{"solvers":[{"solver":"DEFAULT","status":"UNKNOWN"},{"solver":"LCG","status":"SAT"}]},
	{"solvers":[{"solver":"LCG"}]},
	{"solvers":[{"solver":"DEFAULT","status":"UNSAT"}]}
]`

func TestProperties(t *testing.T) {
	cases := []struct {
		class     model.ProblemClass
		data      string
		noSol     int
		fastest   int
		isNoSolFn func(idx ResultIndex, name string) bool
	}{
		{
			class: model.ClassCOP, data: mixedCOP, noSol: COPNoSol, fastest: COPFastest,
			isNoSolFn: func(idx ResultIndex, name string) bool {
				return !ResolveCOP(idx, name, model.DefaultTimeLimit).Solved()
			},
		},
		{
			class: model.ClassCSP, data: mixedCSP, noSol: CSPNoSol, fastest: CSPFastest,
			isNoSolFn: func(idx ResultIndex, name string) bool {
				return ResolveCSP(idx, name, model.DefaultTimeLimit).Status == model.StatusUnknown
			},
		},
	}

	for _, tc := range cases {
		t.Run(string(tc.class), func(t *testing.T) {
			instances := decode(t, tc.data)
			got := Count(tc.class, instances, model.DefaultSolvers, model.DefaultTimeLimit)

			for _, name := range model.DefaultSolvers {
				vec := got[name]
				if len(vec) != len(Categories(tc.class)) {
					t.Fatalf("%s: len=%d, want %d", name, len(vec), len(Categories(tc.class)))
				}

				// Best and Fastest always move together.
				if vec[0] != vec[1] {
					t.Errorf("%s: best=%d fastest=%d", name, vec[0], vec[1])
				}

				// Each instance lands in exactly one path besides the Fastest duplicate.
				if total := vec.Sum() - vec[tc.fastest]; total != len(instances) {
					t.Errorf("%s: sum without fastest=%d, want %d", name, total, len(instances))
				}

				wantNoSol := 0
				for _, inst := range instances {
					if tc.isNoSolFn(Index(inst), name) {
						wantNoSol++
					}
				}
				if vec[tc.noSol] != wantNoSol {
					t.Errorf("%s: no sol=%d, want %d", name, vec[tc.noSol], wantNoSol)
				}
			}
		})
	}
}

func TestOrderIndependence(t *testing.T) {
	for _, tc := range []struct {
		class model.ProblemClass
		data  string
	}{
		{model.ClassCOP, mixedCOP},
		{model.ClassCSP, mixedCSP},
	} {
		instances := decode(t, tc.data)
		want := Count(tc.class, instances, model.DefaultSolvers, model.DefaultTimeLimit)

		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 20; i++ {
			shuffled := append([]model.BenchmarkInstance(nil), instances...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

			got := Count(tc.class, shuffled, model.DefaultSolvers, model.DefaultTimeLimit)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("%s shuffle %d: %v, want %v", tc.class, i, got, want)
			}
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	idx := Index(model.BenchmarkInstance{})

	cop := ResolveCOP(idx, "DEFAULT", 300)
	if cop.Optim != model.NoOptimum || cop.BestBound != nil || cop.TimeBestBound != 300 {
		t.Errorf("ResolveCOP defaults = %+v", cop)
	}

	csp := ResolveCSP(idx, "DEFAULT", 300)
	if csp.Status != model.StatusUnknown || csp.Time != 300 {
		t.Errorf("ResolveCSP defaults = %+v", csp)
	}
}

func TestCategories(t *testing.T) {
	if got := Categories(model.ClassCOP); len(got) != 5 || got[4] != "No sol" {
		t.Errorf("COP categories = %v", got)
	}
	if got := Categories(model.ClassCSP); len(got) != 4 || got[2] != "Slower" {
		t.Errorf("CSP categories = %v", got)
	}
}
