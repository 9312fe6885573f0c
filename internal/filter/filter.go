// Package filter classifies the direct file children of a matched target
// directory against a criterion marker.
package filter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mhollis/metascrub/internal/scan"
)

// Result holds one directory's classification.
type Result struct {
	// Actionable are files whose content does not contain the marker.
	Actionable []string

	// Conforming are files whose content contains the marker.
	Conforming []string

	// Skipped lists files that could not be read. A skipped file is never
	// actionable and never conforming — its state is simply unknown. This
	// mirrors the scanner's best-effort policy; callers that care surface
	// the entries as diagnostics.
	Skipped []scan.SkipEntry
}

// NonConforming inspects the direct children of dir. Only regular files at
// that one level are classified; subdirectories are ignored entirely — the
// target directories are flat containers of object descriptors. The marker
// test is literal, case-sensitive substring containment of the file's full
// text, with no trimming.
func NonConforming(dir, marker string) *Result {
	res := &Result{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		res.Skipped = append(res.Skipped, scan.SkipEntry{Path: dir, Reason: err.Error()})
		return res
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			reason := "not a regular file"
			if err != nil {
				reason = err.Error()
			}
			res.Skipped = append(res.Skipped, scan.SkipEntry{Path: path, Reason: reason})
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			res.Skipped = append(res.Skipped, scan.SkipEntry{Path: path, Reason: err.Error()})
			continue
		}

		if strings.Contains(string(content), marker) {
			res.Conforming = append(res.Conforming, path)
		} else {
			res.Actionable = append(res.Actionable, path)
		}
	}

	return res
}
