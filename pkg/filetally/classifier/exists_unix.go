//go:build unix

package classifier

import "golang.org/x/sys/unix"

// exists reports whether path names an accessible filesystem entry.
func exists(path string) bool {
	if path == "" {
		return false
	}
	return unix.Access(path, unix.F_OK) == nil
}
