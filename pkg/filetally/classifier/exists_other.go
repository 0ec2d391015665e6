//go:build !unix

package classifier

import "os"

// exists reports whether path names an accessible filesystem entry.
// On platforms without access(2) it falls back to stat.
func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
