// Package ignorelist maintains the append-only ignore-list manifest at the
// search root. Existing lines are never removed, reordered, or rewritten;
// new entries are appended once, under a managed header comment.
package ignorelist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhollis/metascrub/internal/filelock"
	"github.com/mhollis/metascrub/internal/sandbox"
)

// commentPrefix marks lines that never count as path entries.
const commentPrefix = "#"

// Header is the managed comment inserted once, above the first block of
// entries metascrub adds.
const Header = "# added by metascrub — excluded from deployment"

// Result reports what one Record call did.
type Result struct {
	// Added are the root-relative paths appended this run, in input order.
	Added []string

	// AlreadyPresent are paths that were deduplicated away, either against
	// the existing file or within the batch.
	AlreadyPresent []string
}

// Record appends the root-relative form of each absolute path to the
// ignore-list file named name under root. Entries already present — matched
// by exact trimmed line equality — are skipped, as are repeats within the
// batch. With nothing new to add the file is left byte-for-byte untouched,
// so repeated runs are idempotent. An empty batch is a safe no-op.
//
// Relative paths always use forward slashes; the manifest format is
// separator-normalized for portability.
func Record(root, name string, absPaths []string) (*Result, error) {
	res := &Result{}
	if len(absPaths) == 0 {
		return res, nil
	}

	relPaths := make([]string, 0, len(absPaths))
	for _, p := range absPaths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil, fmt.Errorf("relativizing %s: %w", p, err)
		}
		relPaths = append(relPaths, filepath.ToSlash(rel))
	}

	path := filepath.Join(root, name)

	err := filelock.WithLock(path, func() error {
		existing, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading ignore-list %s: %w", path, err)
		}
		content := string(existing)

		present := presentEntries(content)
		hasHeader := hasLine(content, Header)

		for _, rel := range relPaths {
			if present[rel] {
				res.AlreadyPresent = append(res.AlreadyPresent, rel)
				continue
			}
			present[rel] = true
			res.Added = append(res.Added, rel)
		}

		if len(res.Added) == 0 {
			return nil
		}

		var b strings.Builder
		b.WriteString(content)
		if content != "" && !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		if !hasHeader {
			if content != "" {
				b.WriteString("\n")
			}
			b.WriteString(Header)
			b.WriteString("\n")
		}
		for _, rel := range res.Added {
			b.WriteString(rel)
			b.WriteString("\n")
		}

		if err := sandbox.Write(root, name, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("writing ignore-list %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// presentEntries returns the trimmed, non-blank, non-comment lines of the
// manifest as a membership set.
func presentEntries(content string) map[string]bool {
	present := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, commentPrefix) {
			continue
		}
		present[t] = true
	}
	return present
}

// hasLine reports whether content contains the given line exactly, trimmed.
func hasLine(content, want string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
