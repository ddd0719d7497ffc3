package finder

import "testing"

func TestIgnoreMatcher_Basics(t *testing.T) {
	m := ParseIgnorePatterns(`
# build artifacts
*.log
/anchored.txt
build/
node_modules
!keep.log
docs/*.tmp
`)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"app.log", false, true},
		{"nested/dir/app.log", false, true},
		{"keep.log", false, false},             // negation wins
		{"anchored.txt", false, true},
		{"sub/anchored.txt", false, false},     // anchored to root
		{"build", true, true},
		{"build", false, false},                // dir-only pattern
		{"node_modules", true, true},
		{"node_modules", false, true},          // no trailing slash: files too
		{"vendor/node_modules", true, true},    // component match
		{"docs/cache.tmp", false, true},
		{"other/cache.tmp", false, false},      // slash pattern is path-relative
		{"main.go", false, false},
	}

	for _, tt := range tests {
		if got := m.Match(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Match(%q, isDir=%v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestIgnoreMatcher_LastRuleWins(t *testing.T) {
	m := ParseIgnorePatterns("*.txt\n!important.txt\nimportant.txt\n")
	if !m.Match("important.txt", false) {
		t.Error("later re-ignore should override the negation")
	}
}

func TestIgnoreMatcher_NilAndEmpty(t *testing.T) {
	var nilMatcher *IgnoreMatcher
	if nilMatcher.Match("anything", false) {
		t.Error("nil matcher should never match")
	}
	if ParseIgnorePatterns("# only comments\n\n").Match("anything", false) {
		t.Error("empty rule set should never match")
	}
}
