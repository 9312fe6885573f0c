package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metascrub.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if errs := Validate(Default()); len(errs) > 0 {
		t.Errorf("default config invalid: %v", errs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := writeConfig(t, "version: 1\nmarker: NAMESPACE_OK\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Marker != "NAMESPACE_OK" {
		t.Errorf("marker = %q, want NAMESPACE_OK", cfg.Marker)
	}
	if cfg.TargetDir != Default().TargetDir {
		t.Errorf("target_dir = %q, want default %q", cfg.TargetDir, Default().TargetDir)
	}
	if cfg.IgnoreFile != Default().IgnoreFile {
		t.Errorf("ignore_file = %q, want default %q", cfg.IgnoreFile, Default().IgnoreFile)
	}
	if len(cfg.IgnoredDirs) == 0 {
		t.Error("ignored_dirs lost its defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `version: 1
target_dir: externalObjects
marker: "xmlns"
ignore_file: .deployignore
ignored_dirs: [.git, dist]
delete: true
update_ignore_list: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TargetDir != "externalObjects" || cfg.IgnoreFile != ".deployignore" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.Delete || !cfg.UpdateIgnoreList {
		t.Error("boolean defaults not applied from file")
	}
	set := cfg.IgnoredSet()
	if !set[".git"] || !set["dist"] || set["node_modules"] {
		t.Errorf("ignored set = %v", set)
	}
}

func TestLoadRejectsBadVersion(t *testing.T) {
	path := writeConfig(t, "version: 2\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "unsupported version") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsEmptyMarker(t *testing.T) {
	path := writeConfig(t, "version: 1\nmarker: \"\"\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "'marker' is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsPathsInNames(t *testing.T) {
	path := writeConfig(t, "version: 1\ntarget_dir: a/b\nignore_file: sub/.ignore\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "bare directory name") || !strings.Contains(msg, "bare file name") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "version: [oops\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
