package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a metascrub.yaml configuration file. Fields the
// file omits keep their built-in defaults; an explicitly empty ignored_dirs
// list stays empty. Returns the underlying error (satisfying os.IsNotExist)
// when the file is missing so callers can decide whether that is fatal.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if cfg.TargetDir == "" {
		errs = append(errs, "'target_dir' is required")
	} else if strings.ContainsAny(cfg.TargetDir, `/\`) {
		errs = append(errs, fmt.Sprintf("'target_dir' must be a bare directory name, got '%s'", cfg.TargetDir))
	}

	if cfg.Marker == "" {
		errs = append(errs, "'marker' is required")
	}

	if cfg.IgnoreFile == "" {
		errs = append(errs, "'ignore_file' is required")
	} else if strings.ContainsAny(cfg.IgnoreFile, `/\`) {
		errs = append(errs, fmt.Sprintf("'ignore_file' must be a bare file name at the search root, got '%s'", cfg.IgnoreFile))
	}

	for i, name := range cfg.IgnoredDirs {
		if name == "" {
			errs = append(errs, fmt.Sprintf("ignored_dirs[%d]: empty name", i))
		} else if strings.ContainsAny(name, `/\`) {
			errs = append(errs, fmt.Sprintf("ignored_dirs[%d]: must be a bare directory name, got '%s'", i, name))
		}
	}

	return errs
}
