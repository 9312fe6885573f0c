// Package action applies the requested mutations to the actionable file set.
package action

import (
	"context"

	"github.com/google/uuid"

	"github.com/mhollis/metascrub/internal/ignorelist"
	"github.com/mhollis/metascrub/internal/sandbox"
)

// Options selects which mutations a run performs. With both flags off the
// applier touches nothing — dry reporting is the default posture.
type Options struct {
	Delete           bool
	RecordIgnoreList bool
}

// ItemError records a per-file failure that did not stop the run.
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

// Result holds the outcome of one apply operation.
type Result struct {
	// RunID identifies this invocation in diagnostics output.
	RunID string

	// Deleted are the files actually removed.
	Deleted []string

	// Recorded are the root-relative paths newly appended to the
	// ignore-list, empty when recording was off or everything was already
	// present.
	Recorded []string

	// Errors holds per-file deletion failures. They never abort the run.
	Errors []ItemError
}

// Applier performs deletions and ignore-list updates scoped to Root.
type Applier struct {
	// Root is the search root; no mutation escapes it.
	Root string

	// IgnoreFile is the base name of the ignore-list manifest at Root.
	IgnoreFile string
}

// Apply processes the actionable files. Deletions are best-effort: one
// failure is recorded and the remaining files are still processed. The
// ignore-list update runs after deletions and its failure is returned as the
// operation error — already-performed deletions are not rolled back; the two
// mutations are deliberately non-transactional.
func (a *Applier) Apply(ctx context.Context, files []string, opts Options) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}

	if opts.Delete {
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			if err := sandbox.Remove(a.Root, f); err != nil {
				res.Errors = append(res.Errors, ItemError{Path: f, Err: err})
				continue
			}
			res.Deleted = append(res.Deleted, f)
		}
	}

	if opts.RecordIgnoreList && len(files) > 0 {
		rec, err := ignorelist.Record(a.Root, a.IgnoreFile, files)
		if err != nil {
			return res, err
		}
		res.Recorded = rec.Added
	}

	return res, nil
}
