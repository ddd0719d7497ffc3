//go:build !windows

package finder

// isHidden checks if a file is hidden on this platform (Unix-like)
func isHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}
