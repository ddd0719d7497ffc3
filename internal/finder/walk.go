package finder

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Scan walks the filesystem under the root path breadth-first and
// replaces the candidate list with slash-separated relative paths.
// Names are NFC-normalized so queries match the composed form
// regardless of how the filesystem stores them. Signatures for the new
// candidates start unset and are filled in lazily by ranking passes.
func (f *Finder) Scan(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	matcher := loadIgnoreFile(f.rootPath)

	type dirNode struct {
		absPath string
		relPath string
	}

	paths := make([]string, 0, 1024)
	queue := []dirNode{{absPath: f.rootPath, relPath: ""}}

	for len(queue) > 0 && len(paths) < f.maxFiles {
		if err := ctx.Err(); err != nil {
			return err
		}

		node := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(node.absPath)
		if err != nil {
			// Unreadable directories are skipped, not fatal.
			continue
		}

		for _, entry := range entries {
			if len(paths) >= f.maxFiles {
				break
			}

			name := entry.Name()
			fullPath := filepath.Join(node.absPath, name)
			rel := joinRelPath(node.relPath, norm.NFC.String(name))

			if f.shouldSkip(rel, name, fullPath, entry.IsDir(), matcher) {
				continue
			}

			if entry.IsDir() {
				queue = append(queue, dirNode{absPath: fullPath, relPath: rel})
				continue
			}

			paths = append(paths, rel)
		}
	}

	f.mu.Lock()
	f.paths = paths
	f.masks = make([]uint32, len(paths))
	f.gen++
	f.mu.Unlock()
	f.cache.clear()

	return nil
}

func (f *Finder) shouldSkip(relPath, name, absPath string, isDir bool, matcher *IgnoreMatcher) bool {
	if isDir && name == ".git" {
		return true
	}
	if f.hideHidden && isHidden(absPath, name) {
		return true
	}
	if matcher != nil && matcher.Match(relPath, isDir) {
		return true
	}
	return false
}

func joinRelPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "/" + child
}
