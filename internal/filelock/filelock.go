// Package filelock serializes access to the ignore-list manifest. A run
// holds an exclusive flock around the whole read-modify-write so a manifest
// is never composed from a half-written predecessor.
package filelock

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// lockSuffix is appended to the guarded path to form the sibling lock file.
const lockSuffix = ".lock"

// WithLock runs fn while holding an exclusive lock derived from path.
// The sibling lock file is removed afterwards on a best-effort basis.
func WithLock(path string, fn func() error) error {
	lockPath := path + lockSuffix
	fl := flock.New(lockPath)

	if err := fl.Lock(); err != nil {
		return fmt.Errorf("acquiring lock on %s: %w", lockPath, err)
	}
	defer func() {
		_ = fl.Unlock()
		_ = os.Remove(lockPath)
	}()

	return fn()
}
