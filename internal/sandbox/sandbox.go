// Package sandbox confines every file mutation metascrub performs to the
// search root. Deletion, ignore-list rewriting, and renamespacing all go
// through it, so a symlink planted inside the tree cannot redirect a
// mutation outside the root.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve checks that targetPath (relative to root, or absolute under it)
// stays within root after symlink resolution and returns the resolved
// absolute path.
func Resolve(root, targetPath string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root: %w", err)
	}
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", fmt.Errorf("resolving root symlinks: %w", err)
	}

	candidate := targetPath
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(realRoot, candidate)
	}
	candidate = filepath.Clean(candidate)

	resolved, err := resolveExisting(candidate)
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}

	// Trailing separator so "root2" does not prefix-match "root".
	prefix := realRoot + string(filepath.Separator)
	if resolved != realRoot && !strings.HasPrefix(resolved, prefix) {
		return "", fmt.Errorf("path '%s' resolves to '%s' outside the search root '%s'", targetPath, resolved, realRoot)
	}

	return resolved, nil
}

// resolveExisting resolves symlinks for the longest existing prefix of path
// and reattaches the remainder, so not-yet-existing paths still validate.
func resolveExisting(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	dir := filepath.Dir(path)
	if dir == path {
		return path, nil
	}

	resolvedDir, err := resolveExisting(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedDir, filepath.Base(path)), nil
}

// Remove deletes a single file within the root.
func Remove(root, targetPath string) error {
	resolved, err := Resolve(root, targetPath)
	if err != nil {
		return err
	}
	return os.Remove(resolved)
}

// Rename moves oldPath to newPath, requiring both to stay within the root.
func Rename(root, oldPath, newPath string) error {
	oldResolved, err := Resolve(root, oldPath)
	if err != nil {
		return err
	}
	newResolved, err := Resolve(root, newPath)
	if err != nil {
		return err
	}
	return os.Rename(oldResolved, newResolved)
}

// Write atomically replaces the file at targetPath within the root. The
// content lands via a temp file in the same directory plus rename, so a
// crashed run never leaves a partial write behind.
func Write(root, targetPath string, content []byte, perm os.FileMode) error {
	resolved, err := Resolve(root, targetPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(resolved)
	tmp, err := os.CreateTemp(dir, ".metascrub-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, resolved); err != nil {
		return fmt.Errorf("replacing %s: %w", resolved, err)
	}

	done = true
	return nil
}
