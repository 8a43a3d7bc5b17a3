package vcpath

import (
	"path/filepath"
	"testing"
)

func TestRelativize(t *testing.T) {
	root, pathErr := NewRepositoryPath(t.TempDir())
	if pathErr != nil {
		t.Fatalf("failed to create repo path: %v", pathErr)
	}

	rel, relErr := root.Relativize("dir/file.txt")
	if relErr != nil {
		t.Fatalf("Relativize failed: %v", relErr)
	}
	if rel != "dir/file.txt" {
		t.Errorf("got %q, want %q", rel, "dir/file.txt")
	}

	abs := root.Join("a.txt")
	rel, relErr = root.Relativize(abs)
	if relErr != nil {
		t.Fatalf("Relativize failed for absolute path: %v", relErr)
	}
	if rel != "a.txt" {
		t.Errorf("got %q, want %q", rel, "a.txt")
	}
}

func TestRelativizeRejectsEscape(t *testing.T) {
	root, pathErr := NewRepositoryPath(t.TempDir())
	if pathErr != nil {
		t.Fatalf("failed to create repo path: %v", pathErr)
	}

	for _, path := range []string{"..", "../outside.txt", "a/../../b.txt"} {
		if _, relErr := root.Relativize(path); relErr == nil {
			t.Errorf("Relativize(%q) accepted a path outside the root", path)
		}
	}
}

func TestRelativizeRejectsControlDir(t *testing.T) {
	root, pathErr := NewRepositoryPath(t.TempDir())
	if pathErr != nil {
		t.Fatalf("failed to create repo path: %v", pathErr)
	}

	paths := []string{
		ControlDir,
		filepath.Join(ControlDir, ConfigFile),
		filepath.Join(ControlDir, ObjectsDir, "ab", "cdef"),
		root.Join(ControlDir, HeadFile),
	}
	for _, path := range paths {
		if _, relErr := root.Relativize(path); relErr == nil {
			t.Errorf("Relativize(%q) accepted a control directory path", path)
		}
	}
}
