package finder

import (
	"math/rand"
	"sort"
	"testing"
)

func TestCompareResults_TieBreaks(t *testing.T) {
	tests := []struct {
		name string
		a, b Result
		want int // sign
	}{
		{"higher score first", Result{Score: 0.9}, Result{Score: 0.5}, -1},
		{"lower score last", Result{Score: 0.1}, Result{Score: 0.5}, 1},
		{"epsilon-equal falls through", Result{Score: 0.5, Path: "a"}, Result{Score: 0.5 + 1e-12, Path: "bb"}, -1},
		{"shorter path first", Result{Score: 0.5, Path: "ab"}, Result{Score: 0.5, Path: "abc"}, -1},
		{"lexicographic", Result{Score: 0.5, Path: "abc"}, Result{Score: 0.5, Path: "abd"}, -1},
		{"input order last resort", Result{Score: 0.5, Path: "x", InputOrder: 1}, Result{Score: 0.5, Path: "x", InputOrder: 2}, -1},
		{"identical", Result{Score: 0.5, Path: "x", InputOrder: 3}, Result{Score: 0.5, Path: "x", InputOrder: 3}, 0},
	}

	for _, tt := range tests {
		got := compareResults(tt.a, tt.b)
		switch {
		case tt.want < 0 && got >= 0,
			tt.want > 0 && got <= 0,
			tt.want == 0 && got != 0:
			t.Errorf("%s: compareResults = %d, want sign %d", tt.name, got, tt.want)
		}
	}
}

func TestTopCollector_KeepsBestN(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	all := make([]Result, 500)
	for i := range all {
		all[i] = Result{
			Path:       pathForIndex(i),
			Score:      rng.Float64(),
			InputOrder: i,
		}
	}

	const limit = 25
	tc := newTopCollector(limit)
	for _, r := range all {
		tc.Consider(r)
	}
	got := tc.Results()

	want := append([]Result(nil), all...)
	sort.Slice(want, func(i, j int) bool {
		return compareResults(want[i], want[j]) < 0
	})
	want = want[:limit]

	if len(got) != limit {
		t.Fatalf("collector kept %d results, want %d", len(got), limit)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopCollector_UnderCapacity(t *testing.T) {
	tc := newTopCollector(10)
	tc.Consider(Result{Path: "b", Score: 0.2})
	tc.Consider(Result{Path: "a", Score: 0.8})

	got := tc.Results()
	if len(got) != 2 || got[0].Path != "a" || got[1].Path != "b" {
		t.Errorf("unexpected collector contents: %+v", got)
	}
}
