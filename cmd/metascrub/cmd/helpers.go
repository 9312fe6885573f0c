package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mhollis/metascrub/internal/config"
)

var (
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
)

// loadConfig reads the config file, falling back to built-in defaults when the
// default config path does not exist. An explicitly passed --config that is
// missing is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return cfg, nil
}

// searchRoot resolves the optional positional root argument to an absolute
// path. Existence is checked by the scanner, which owns the fatal-root error.
func searchRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving search root %s: %w", root, err)
	}
	return abs, nil
}

// resolveToggle combines a config default with a --flag/--no-flag pair.
// The negation always wins when set, so an operator can force a mutation off
// even when the config file turned it on.
func resolveToggle(cmd *cobra.Command, def bool, name, negName string) bool {
	v := def
	if cmd.Flags().Changed(name) {
		v = true
	}
	if cmd.Flags().Changed(negName) {
		v = false
	}
	return v
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// warnf prints a warning to stderr; warnings never affect the exit status.
func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warnColor.Sprintf("warning: "+format, args...))
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errColor.Sprintf("error: "+format, args...))
}
