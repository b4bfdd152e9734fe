package model

import (
	"encoding/json"
	"testing"
)

func TestSolverResult_UnmarshalJSON_AllFields(t *testing.T) {
	data := `{"solver":"LCG","optim":12.5,"best_bound":10,"time_best_bound":3.2,"status":"SAT","time":4}`

	var r SolverResult
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if r.Solver != "LCG" {
		t.Errorf("solver=%q, want LCG", r.Solver)
	}
	if r.Optim == nil || *r.Optim != 12.5 {
		t.Errorf("optim=%v, want 12.5", r.Optim)
	}
	if r.BestBound == nil || *r.BestBound != 10 {
		t.Errorf("best_bound=%v, want 10", r.BestBound)
	}
	if r.TimeBestBound == nil || *r.TimeBestBound != 3.2 {
		t.Errorf("time_best_bound=%v, want 3.2", r.TimeBestBound)
	}
	if r.Status == nil || *r.Status != StatusSAT {
		t.Errorf("status=%v, want SAT", r.Status)
	}
	if r.Time == nil || *r.Time != 4 {
		t.Errorf("time=%v, want 4", r.Time)
	}
}

func TestSolverResult_UnmarshalJSON_NullAndMalformedFieldsAreAbsent(t *testing.T) {
	data := `{"solver":"DEFAULT","optim":"oops","best_bound":null,"status":7,"time":[1]}`

	var r SolverResult
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if r.Solver != "DEFAULT" {
		t.Errorf("solver=%q, want DEFAULT", r.Solver)
	}
	if r.Optim != nil {
		t.Errorf("optim=%v, want nil", *r.Optim)
	}
	if r.BestBound != nil {
		t.Errorf("best_bound=%v, want nil", *r.BestBound)
	}
	if r.Status != nil {
		t.Errorf("status=%v, want nil", *r.Status)
	}
	if r.Time != nil {
		t.Errorf("time=%v, want nil", *r.Time)
	}
}

func TestBenchmarkInstance_UnmarshalJSON_Tolerant(t *testing.T) {
	data := `[{"solvers":[{"solver":"DEFAULT","optim":5}]}, {"solvers":"nope"}, 42, {}, {"solvers":[3,{"solver":"LCG"}]}]`

	var got []BenchmarkInstance
	if err := json.Unmarshal([]byte(data), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got) != 5 {
		t.Fatalf("instances=%d, want 5", len(got))
	}
	if len(got[0].Solvers) != 1 || got[0].Solvers[0].Solver != "DEFAULT" {
		t.Errorf("instance 0 = %+v", got[0])
	}
	for _, i := range []int{1, 2, 3} {
		if len(got[i].Solvers) != 0 {
			t.Errorf("instance %d solvers=%d, want 0", i, len(got[i].Solvers))
		}
	}
	if len(got[4].Solvers) != 2 || got[4].Solvers[0].Solver != "" || got[4].Solvers[1].Solver != "LCG" {
		t.Errorf("instance 4 = %+v", got[4])
	}
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		in      string
		want    ProblemClass
		wantErr bool
	}{
		{"cop", ClassCOP, false},
		{"CSP", ClassCSP, false},
		{" Cop ", ClassCOP, false},
		{"sat", "", true},
	}
	for _, tt := range tests {
		got, err := ParseClass(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClass(%q) err=%v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClass(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountVector_Sum(t *testing.T) {
	if got := (CountVector{1, 1, 0, 0, 3}).Sum(); got != 5 {
		t.Errorf("sum=%d, want 5", got)
	}
	if got := CountVector(nil).Sum(); got != 0 {
		t.Errorf("nil sum=%d, want 0", got)
	}
}
