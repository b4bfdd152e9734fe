package ingest

import (
	"reflect"
	"strings"
	"testing"
)

func TestSurvey(t *testing.T) {
	instances, err := Decode(strings.NewReader(`[
		{"solvers":[{"solver":"LCG","optim":-1},{"solver":"DEFAULT","optim":4},{"solver":"LCG","optim":2}]},
		{"solvers":[{"solver":"DEFAULT","status":"SAT"},{"solver":"EXTRA"}]},
		{"solvers":[]}
	]`))
	if err != nil {
		t.Fatal(err)
	}

	got := Survey(instances)
	want := []SolverStat{
		{Name: "LCG", Instances: 1, Solved: 0},
		{Name: "DEFAULT", Instances: 2, Solved: 2},
		{Name: "EXTRA", Instances: 1, Solved: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Survey=%+v, want %+v", got, want)
	}

	if got := Survey(nil); len(got) != 0 {
		t.Errorf("Survey(nil)=%+v", got)
	}
}
