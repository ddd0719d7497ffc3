package finder

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// IgnoreMatcher holds gitignore-style exclusion rules applied to
// slash-separated paths relative to the scan root. Supported syntax:
// comments, blank lines, `!` negation, trailing `/` directory-only
// patterns, leading `/` anchoring, and `*`/`?`/`[...]` wildcards.
// Later rules override earlier ones.
type IgnoreMatcher struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	pattern  string
	negate   bool
	dirOnly  bool
	anchored bool
	hasSlash bool
}

// ParseIgnorePatterns builds a matcher from gitignore file content.
func ParseIgnorePatterns(content string) *IgnoreMatcher {
	m := &IgnoreMatcher{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := ignorePattern{pattern: line}
		if strings.HasPrefix(p.pattern, "!") {
			p.negate = true
			p.pattern = p.pattern[1:]
		}
		if strings.HasSuffix(p.pattern, "/") {
			p.dirOnly = true
			p.pattern = strings.TrimSuffix(p.pattern, "/")
		}
		if strings.HasPrefix(p.pattern, "/") {
			p.anchored = true
			p.pattern = p.pattern[1:]
		}
		p.hasSlash = strings.Contains(p.pattern, "/")
		if p.pattern == "" {
			continue
		}
		m.patterns = append(m.patterns, p)
	}
	return m
}

// Match reports whether relPath should be excluded. The last matching
// rule decides; negated rules re-include.
func (m *IgnoreMatcher) Match(relPath string, isDir bool) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}

	ignored := false
	base := path.Base(relPath)

	for _, p := range m.patterns {
		if p.dirOnly && !isDir {
			continue
		}
		if !p.matches(relPath, base) {
			continue
		}
		ignored = !p.negate
	}
	return ignored
}

func (p *ignorePattern) matches(relPath, base string) bool {
	if p.anchored || p.hasSlash {
		ok, err := path.Match(p.pattern, relPath)
		return err == nil && ok
	}
	// An unanchored pattern without a slash matches any path component.
	if ok, err := path.Match(p.pattern, base); err == nil && ok {
		return true
	}
	rest := relPath
	for {
		idx := strings.IndexByte(rest, '/')
		if idx < 0 {
			return false
		}
		if ok, err := path.Match(p.pattern, rest[:idx]); err == nil && ok {
			return true
		}
		rest = rest[idx+1:]
	}
}

// loadIgnoreFile reads the root's .gitignore if present. A missing or
// unreadable file just means no exclusion rules.
func loadIgnoreFile(rootPath string) *IgnoreMatcher {
	content, err := os.ReadFile(filepath.Join(rootPath, ".gitignore"))
	if err != nil {
		return nil
	}
	return ParseIgnorePatterns(string(content))
}
