package sandbox

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestResolveWithinRoot(t *testing.T) {
	root := t.TempDir()

	resolved, err := Resolve(root, "subdir/file.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	realRoot, _ := filepath.EvalSymlinks(root)
	if want := filepath.Join(realRoot, "subdir/file.txt"); resolved != want {
		t.Errorf("got %q, want %q", resolved, want)
	}
}

func TestResolveAcceptsAbsolutePathUnderRoot(t *testing.T) {
	root := t.TempDir()

	resolved, err := Resolve(root, filepath.Join(root, "a", "b.txt"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if filepath.Base(resolved) != "b.txt" {
		t.Errorf("unexpected resolution: %q", resolved)
	}
}

func TestResolveRejectsDotDotEscape(t *testing.T) {
	root := t.TempDir()

	_, err := Resolve(root, "sub/../../escape.txt")
	if err == nil {
		t.Fatal("expected error for .. escape")
	}
	if !strings.Contains(err.Error(), "outside the search root") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveRejectsSymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink test not reliable on Windows")
	}

	root := t.TempDir()
	outside := t.TempDir()

	link := filepath.Join(root, "escape-link")
	if err := os.Symlink(outside, link); err != nil {
		t.Fatalf("creating symlink: %v", err)
	}

	if _, err := Resolve(root, "escape-link/file.txt"); err == nil {
		t.Fatal("expected error for symlink escape")
	}
}

func TestRemoveDeletesFileInRoot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "victim.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if err := Remove(root, "victim.txt"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists")
	}
}

func TestRemoveRejectsOutsideRoot(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(t.TempDir(), "keep.txt")
	if err := os.WriteFile(outside, []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if err := Remove(root, outside); err == nil {
		t.Fatal("expected containment error")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("file outside root was removed")
	}
}

func TestWriteReplacesContentAtomically(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data.txt")
	if err := os.WriteFile(path, []byte("before"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	if err := Write(root, "data.txt", []byte("after"), 0644); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "after" {
		t.Errorf("content = %q, want %q", data, "after")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".metascrub-") {
			t.Errorf("temp file leaked: %s", e.Name())
		}
	}
}

func TestRenameWithinRoot(t *testing.T) {
	root := t.TempDir()
	old := filepath.Join(root, "old.txt")
	if err := os.WriteFile(old, []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if err := Rename(root, "old.txt", "new.txt"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "new.txt")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
}

func TestRenameRejectsDestinationOutsideRoot(t *testing.T) {
	root := t.TempDir()
	old := filepath.Join(root, "old.txt")
	if err := os.WriteFile(old, []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "stolen.txt")
	if err := Rename(root, "old.txt", dest); err == nil {
		t.Fatal("expected containment error")
	}
}
