package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhollis/metascrub/internal/action"
	"github.com/mhollis/metascrub/internal/filter"
	"github.com/mhollis/metascrub/internal/scan"
)

var (
	cleanDelete         bool
	cleanNoDelete       bool
	cleanUpdateIgnore   bool
	cleanNoUpdateIgnore bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [root]",
	Short: "Find and act on non-conforming metadata files",
	Long: `Scans the tree under root (default: current directory) for target
directories, classifies each one's files against the criterion marker, and
reports the files missing it. Nothing is mutated unless --delete and/or
--update-ignore-list is given; --no-delete and --no-update-ignore-list force
either mutation off even when the config file enables it by default.

Exits non-zero only when the search root does not exist or is not a
directory, or when the ignore-list update itself fails. Finding no matches
is a normal outcome.`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// The parser tolerates unknown flags; anything flag-like left in
		// the arguments is warned about and skipped, never fatal.
		var positional []string
		for _, a := range args {
			if strings.HasPrefix(a, "-") {
				warnf("ignoring unknown flag %s", a)
				continue
			}
			positional = append(positional, a)
		}
		if len(positional) > 1 {
			return fmt.Errorf("at most one search root expected, got %d", len(positional))
		}

		root, err := searchRoot(positional)
		if err != nil {
			return err
		}

		opts := action.Options{
			Delete:           resolveToggle(cmd, cfg.Delete, "delete", "no-delete"),
			RecordIgnoreList: resolveToggle(cmd, cfg.UpdateIgnoreList, "update-ignore-list", "no-update-ignore-list"),
		}

		scanned, err := scan.Scan(cmd.Context(), root, cfg.TargetDir, cfg.IgnoredSet())
		if err != nil {
			return err
		}
		reportSkips(scanned.Skipped)

		if len(scanned.Matches) == 0 {
			info("No %s directories found under %s.", cfg.TargetDir, root)
			return nil
		}
		info("Found %d %s director%s.", len(scanned.Matches), cfg.TargetDir, plural(len(scanned.Matches), "y", "ies"))

		var actionable []string
		for _, dir := range scanned.Matches {
			fres := filter.NonConforming(dir, cfg.Marker)
			reportSkips(fres.Skipped)
			actionable = append(actionable, fres.Actionable...)
		}

		if len(actionable) == 0 {
			info("All files contain the criterion marker — nothing to do.")
			return nil
		}

		for _, f := range actionable {
			rel, relErr := filepath.Rel(root, f)
			if relErr != nil {
				rel = f
			}
			info("  %s  %s", warnColor.Sprint("missing marker"), rel)
		}

		applier := &action.Applier{Root: root, IgnoreFile: cfg.IgnoreFile}
		result, err := applier.Apply(cmd.Context(), actionable, opts)
		if err != nil {
			return err
		}
		detail("run %s", result.RunID)

		for _, e := range result.Errors {
			warnf("could not delete %s: %v", e.Path, e.Err)
		}

		if !opts.Delete && !opts.RecordIgnoreList {
			info("")
			info("Dry run — %d file(s) would be affected. Re-run with --delete and/or --update-ignore-list.", len(actionable))
			return nil
		}

		info("")
		info("%s %d found, %d deleted, %d recorded in %s, %d errors.",
			okColor.Sprint("Clean complete:"),
			len(actionable), len(result.Deleted), len(result.Recorded), cfg.IgnoreFile, len(result.Errors))
		return nil
	},
}

// reportSkips surfaces best-effort skips as diagnostics in verbose mode.
func reportSkips(skips []scan.SkipEntry) {
	for _, s := range skips {
		detail("skipped %s: %s", s.Path, s.Reason)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDelete, "delete", false, "delete files missing the criterion marker")
	cleanCmd.Flags().BoolVar(&cleanNoDelete, "no-delete", false, "force deletion off")
	cleanCmd.Flags().BoolVar(&cleanUpdateIgnore, "update-ignore-list", false, "record files missing the marker in the ignore-list")
	cleanCmd.Flags().BoolVar(&cleanNoUpdateIgnore, "no-update-ignore-list", false, "force ignore-list recording off")
	rootCmd.AddCommand(cleanCmd)
}
