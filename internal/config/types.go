package config

// Config represents the metascrub.yaml configuration file. It is an explicit
// value handed to the scanner and filter — nothing in this package holds
// process-level mutable state.
type Config struct {
	Version int `yaml:"version"`

	// TargetDir is the base name of the directories the scanner collects.
	TargetDir string `yaml:"target_dir"`

	// Marker is the literal substring whose presence in a file's text marks
	// it as conforming. Files without it are actionable.
	Marker string `yaml:"marker"`

	// IgnoreFile is the base name of the ignore-list manifest kept at the
	// search root.
	IgnoreFile string `yaml:"ignore_file"`

	// IgnoredDirs are directory base names the scanner never recurses into.
	IgnoredDirs []string `yaml:"ignored_dirs"`

	// Default postures for the clean command's mutations. Both can be
	// overridden per run with --delete/--no-delete and friends.
	Delete           bool `yaml:"delete"`
	UpdateIgnoreList bool `yaml:"update_ignore_list"`
}

// Default returns the built-in configuration used when no metascrub.yaml
// exists.
func Default() *Config {
	return &Config{
		Version:    1,
		TargetDir:  "dataSourceObjects",
		Marker:     "<externalDataSource>",
		IgnoreFile: ".forceignore",
		IgnoredDirs: []string{
			".git", ".svn", ".hg",
			"node_modules", "__pycache__",
			".sfdx", ".idea", ".vscode",
		},
	}
}

// IgnoredSet returns the ignored directory names as a lookup set.
func (c *Config) IgnoredSet() map[string]bool {
	set := make(map[string]bool, len(c.IgnoredDirs))
	for _, name := range c.IgnoredDirs {
		set[name] = true
	}
	return set
}
