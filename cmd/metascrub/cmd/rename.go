package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mhollis/metascrub/internal/rename"
)

var (
	renameFrom   string
	renameTo     string
	renameDryRun bool
)

var renameCmd = &cobra.Command{
	Use:   "rename [root]",
	Short: "Replace a namespace token across file contents and names",
	Long: `Walks the tree under root (default: current directory) and replaces every
occurrence of --from with --to, both inside text files and in file and
directory names. Ignored directories are never entered; binary files are
left alone. Use --dry-run to preview the changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		root, err := searchRoot(args)
		if err != nil {
			return err
		}

		r := &rename.Renamer{
			From:    renameFrom,
			To:      renameTo,
			Ignored: cfg.IgnoredSet(),
		}

		result, err := r.Run(cmd.Context(), root, renameDryRun)
		if err != nil {
			return err
		}
		reportSkips(result.Skipped)

		if renameDryRun {
			info("Dry run — no files modified.")
		}
		for _, f := range result.Rewritten {
			info("  rewrote  %s", f)
		}
		for _, m := range result.Renamed {
			info("  renamed  %s -> %s", m.OldPath, m.NewPath)
		}
		for _, e := range result.Errors {
			warnf("%s: %v", e.Path, e.Err)
		}

		info("")
		info("Rename complete: %d files rewritten, %d entries renamed, %d errors.",
			len(result.Rewritten), len(result.Renamed), len(result.Errors))
		return nil
	},
}

func init() {
	renameCmd.Flags().StringVar(&renameFrom, "from", "", "namespace token to replace")
	renameCmd.Flags().StringVar(&renameTo, "to", "", "replacement token")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "show what would change without modifying files")
	_ = renameCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(renameCmd)
}
