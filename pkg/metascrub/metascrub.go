// Package metascrub provides the public Go library API for metascrub.
//
// metascrub is a one-shot batch tool for project renamespacing and metadata
// cleanup. This package exposes a small client for embedding the scan,
// filter, and apply pipeline in other Go programs.
//
// # Basic Usage
//
//	client, err := metascrub.New(metascrub.Options{
//	    Root: "/path/to/project",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Report files missing the criterion marker.
//	report, err := client.Clean(ctx, metascrub.CleanOptions{})
//
//	// Delete them and record them in the ignore-list.
//	report, err = client.Clean(ctx, metascrub.CleanOptions{
//	    Delete:           true,
//	    UpdateIgnoreList: true,
//	})
package metascrub

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mhollis/metascrub/internal/action"
	"github.com/mhollis/metascrub/internal/config"
	"github.com/mhollis/metascrub/internal/filter"
	"github.com/mhollis/metascrub/internal/rename"
	"github.com/mhollis/metascrub/internal/scan"
)

// CleanOptions configures a clean operation.
type CleanOptions struct {
	Delete           bool
	UpdateIgnoreList bool
}

// RenameOptions configures a renamespacing operation.
type RenameOptions struct {
	From   string
	To     string
	DryRun bool
}

// CleanReport holds the outcome of one clean operation.
type CleanReport struct {
	// RunID identifies the invocation.
	RunID string

	// Matched are the target directories found, in discovery order.
	Matched []string

	// Actionable are the files missing the criterion marker.
	Actionable []string

	// Deleted and Recorded describe the mutations actually performed.
	Deleted  []string
	Recorded []string

	// Skipped lists entries passed over during scanning and filtering.
	Skipped []SkipEntry

	// Errors holds per-file deletion failures.
	Errors []ItemError
}

// Options configures a metascrub client.
type Options struct {
	// Root is the search root. Required.
	Root string

	// ConfigPath points at a metascrub.yaml. Empty means built-in defaults.
	ConfigPath string

	// Config overrides ConfigPath entirely when non-nil.
	Config *config.Config
}

// Client is the main entry point for the metascrub library.
type Client struct {
	root string
	cfg  *config.Config
}

// New creates a metascrub Client.
func New(opts Options) (*Client, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("root is required")
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	cfg := opts.Config
	if cfg == nil {
		if opts.ConfigPath != "" {
			cfg, err = config.Load(opts.ConfigPath)
			if err != nil {
				return nil, fmt.Errorf("loading config %s: %w", opts.ConfigPath, err)
			}
		} else {
			cfg = config.Default()
		}
	}

	return &Client{root: root, cfg: cfg}, nil
}

// Clean runs the scan → filter → apply pipeline once.
func (c *Client) Clean(ctx context.Context, opts CleanOptions) (*CleanReport, error) {
	scanned, err := scan.Scan(ctx, c.root, c.cfg.TargetDir, c.cfg.IgnoredSet())
	if err != nil {
		return nil, err
	}

	report := &CleanReport{
		Matched: scanned.Matches,
		Skipped: scanned.Skipped,
	}

	for _, dir := range scanned.Matches {
		fres := filter.NonConforming(dir, c.cfg.Marker)
		report.Actionable = append(report.Actionable, fres.Actionable...)
		report.Skipped = append(report.Skipped, fres.Skipped...)
	}

	applier := &action.Applier{Root: c.root, IgnoreFile: c.cfg.IgnoreFile}
	result, err := applier.Apply(ctx, report.Actionable, action.Options{
		Delete:           opts.Delete,
		RecordIgnoreList: opts.UpdateIgnoreList,
	})
	if result != nil {
		report.RunID = result.RunID
		report.Deleted = result.Deleted
		report.Recorded = result.Recorded
		report.Errors = result.Errors
	}
	if err != nil {
		return report, err
	}
	return report, nil
}

// Rename runs the renamespacing pass once.
func (c *Client) Rename(ctx context.Context, opts RenameOptions) (*RenameResult, error) {
	r := &rename.Renamer{
		From:    opts.From,
		To:      opts.To,
		Ignored: c.cfg.IgnoredSet(),
	}
	return r.Run(ctx, c.root, opts.DryRun)
}
