//go:build unix

package store

import (
	"os"

	"golang.org/x/sys/unix"
)

// currentUmask reads the process umask. unix.Umask can only be read by
// setting it, so the old value is restored right away.
func currentUmask() os.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return os.FileMode(mask)
}
