// Package rename rewrites a namespace token across a project tree: inside
// file contents, and in file and directory names. It shares the scanner's
// traversal rules — lexical order, pruned ignored directories, best-effort
// per-entry skips.
package rename

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhollis/metascrub/internal/sandbox"
	"github.com/mhollis/metascrub/internal/scan"
)

// binaryProbeSize is how much of a file is inspected for a NUL byte before
// deciding it is not text.
const binaryProbeSize = 8192

// Move records one file or directory rename.
type Move struct {
	OldPath string
	NewPath string
}

// ItemError records a per-item failure that did not stop the run.
type ItemError struct {
	Path string
	Err  error
}

func (e ItemError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of one renamespacing run. In dry-run mode it
// describes what would happen; nothing is mutated.
type Result struct {
	Rewritten []string
	Renamed   []Move
	Skipped   []scan.SkipEntry
	Errors    []ItemError
}

// Renamer replaces every occurrence of From with To.
type Renamer struct {
	From string
	To   string

	// Ignored directory base names are never entered or renamed.
	Ignored map[string]bool
}

// Run walks root and applies the replacement. Directory contents are
// processed before the directory itself is renamed, so child paths stay
// valid throughout. Per-item failures are recorded and the run continues.
func (r *Renamer) Run(ctx context.Context, root string, dryRun bool) (*Result, error) {
	if r.From == "" {
		return nil, fmt.Errorf("token to replace must not be empty")
	}
	if r.From == r.To {
		return nil, fmt.Errorf("tokens are identical — nothing to do")
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("search root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search root %s is not a directory", root)
	}

	res := &Result{}
	if err := r.walk(ctx, root, root, dryRun, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Renamer) walk(ctx context.Context, root, dir string, dryRun bool, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		res.Skipped = append(res.Skipped, scan.SkipEntry{Path: dir, Reason: err.Error()})
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if r.Ignored[name] {
				continue
			}
			if err := r.walk(ctx, root, path, dryRun, res); err != nil {
				return err
			}
			r.renameEntry(root, path, name, dryRun, res)
			continue
		}
		if !entry.Type().IsRegular() {
			res.Skipped = append(res.Skipped, scan.SkipEntry{Path: path, Reason: "not a regular file"})
			continue
		}

		r.rewriteFile(root, path, dryRun, res)
		r.renameEntry(root, path, name, dryRun, res)
	}
	return nil
}

// rewriteFile replaces the token inside one file's content.
func (r *Renamer) rewriteFile(root, path string, dryRun bool, res *Result) {
	content, err := os.ReadFile(path)
	if err != nil {
		res.Skipped = append(res.Skipped, scan.SkipEntry{Path: path, Reason: err.Error()})
		return
	}

	probe := content
	if len(probe) > binaryProbeSize {
		probe = probe[:binaryProbeSize]
	}
	if bytes.IndexByte(probe, 0) >= 0 {
		res.Skipped = append(res.Skipped, scan.SkipEntry{Path: path, Reason: "binary file"})
		return
	}

	if !bytes.Contains(content, []byte(r.From)) {
		return
	}

	if !dryRun {
		updated := bytes.ReplaceAll(content, []byte(r.From), []byte(r.To))
		if err := sandbox.Write(root, path, updated, 0644); err != nil {
			res.Errors = append(res.Errors, ItemError{Path: path, Err: err})
			return
		}
	}
	res.Rewritten = append(res.Rewritten, path)
}

// renameEntry renames one file or directory whose base name contains the token.
func (r *Renamer) renameEntry(root, path, name string, dryRun bool, res *Result) {
	if !strings.Contains(name, r.From) {
		return
	}

	newName := strings.ReplaceAll(name, r.From, r.To)
	if newName == "" {
		res.Errors = append(res.Errors, ItemError{Path: path, Err: fmt.Errorf("replacement would leave an empty name")})
		return
	}
	newPath := filepath.Join(filepath.Dir(path), newName)

	if !dryRun {
		if err := sandbox.Rename(root, path, newPath); err != nil {
			res.Errors = append(res.Errors, ItemError{Path: path, Err: err})
			return
		}
	}
	res.Renamed = append(res.Renamed, Move{OldPath: path, NewPath: newPath})
}
