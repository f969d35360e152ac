//go:build !unix

package store

import "os"

func currentUmask() os.FileMode {
	return 0
}
