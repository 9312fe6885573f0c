// Package scan locates target directories in a project tree. The walk is
// best-effort: unreadable entries are recorded as skips and never abort the
// run, and directory entries are visited in lexical order so results are
// deterministic across platforms.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// SkipEntry records a single entry the walk could not inspect, with the
// reason it was passed over. Skips are diagnostics, not failures.
type SkipEntry struct {
	Path   string
	Reason string
}

// Result holds the outcome of one scan.
type Result struct {
	// Matches are the directories whose base name equals the target name,
	// in depth-first lexical discovery order.
	Matches []string

	// Skipped lists entries that could not be read or descended into.
	Skipped []SkipEntry
}

// Scan walks root depth-first and collects every directory whose base name
// equals targetName. Directories whose base name is in ignored are never
// entered, so a target nested exclusively under an ignored directory is
// unreachable; an ignored-named directory that itself matches targetName is
// still emitted from its parent's listing.
//
// The only fatal condition is a root that does not exist or is not a
// directory. Everything below root is best-effort.
func Scan(ctx context.Context, root, targetName string, ignored map[string]bool) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("search root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search root %s is not a directory", root)
	}

	res := &Result{}
	if err := walk(ctx, root, targetName, ignored, res); err != nil {
		return nil, err
	}
	return res, nil
}

func walk(ctx context.Context, dir, targetName string, ignored map[string]bool, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		res.Skipped = append(res.Skipped, SkipEntry{Path: dir, Reason: err.Error()})
		return nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		if name == targetName {
			res.Matches = append(res.Matches, path)
		}
		if ignored[name] {
			continue
		}
		if err := walk(ctx, path, targetName, ignored, res); err != nil {
			return err
		}
	}
	return nil
}
