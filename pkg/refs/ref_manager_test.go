package refs

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/mygit-vcs/mygit/pkg/objects"
	"github.com/mygit-vcs/mygit/pkg/repository/vcpath"
)

func newTestRefManager(t *testing.T) (*RefManager, string) {
	t.Helper()

	dir := t.TempDir()
	root, pathErr := vcpath.NewRepositoryPath(dir)
	if pathErr != nil {
		t.Fatalf("failed to create repo path: %v", pathErr)
	}

	control := root.ControlPath()
	if mkErr := os.MkdirAll(control.HeadsPath(), 0755); mkErr != nil {
		t.Fatalf("failed to create refs dir: %v", mkErr)
	}
	if writeErr := os.WriteFile(control.HeadPath(), []byte("ref: refs/heads/main\n"), 0644); writeErr != nil {
		t.Fatalf("failed to write HEAD: %v", writeErr)
	}

	return NewRefManager(control), dir
}

func testHash(seed string) objects.ObjectHash {
	sum := sha1.Sum([]byte(seed))
	return objects.ObjectHash(hex.EncodeToString(sum[:]))
}

func TestCurrentBranchFromHead(t *testing.T) {
	rm, _ := newTestRefManager(t)
	if got := rm.CurrentBranch(); got != "main" {
		t.Errorf("expected main, got %q", got)
	}
}

func TestAttachHead(t *testing.T) {
	rm, dir := newTestRefManager(t)

	if attachErr := rm.AttachHead("feature"); attachErr != nil {
		t.Fatalf("AttachHead failed: %v", attachErr)
	}

	data, readErr := os.ReadFile(filepath.Join(dir, ".mygit", "HEAD"))
	if readErr != nil {
		t.Fatalf("read HEAD failed: %v", readErr)
	}
	if string(data) != "ref: refs/heads/feature\n" {
		t.Errorf("unexpected HEAD content: %q", data)
	}

	if got := rm.CurrentBranch(); got != "feature" {
		t.Errorf("expected feature, got %q", got)
	}
}

func TestUpdateAndReadBranch(t *testing.T) {
	rm, dir := newTestRefManager(t)
	hash := testHash("tip")

	if updateErr := rm.UpdateBranch("main", hash); updateErr != nil {
		t.Fatalf("UpdateBranch failed: %v", updateErr)
	}

	got, exists, readErr := rm.ReadBranch("main")
	if readErr != nil {
		t.Fatalf("ReadBranch failed: %v", readErr)
	}
	if !exists {
		t.Fatal("branch missing after update")
	}
	if got != hash {
		t.Errorf("hash mismatch: got %s, want %s", got, hash)
	}

	// The ref file holds the bare hash with no trailing newline.
	data, fileErr := os.ReadFile(filepath.Join(dir, ".mygit", "refs", "heads", "main"))
	if fileErr != nil {
		t.Fatalf("read ref file failed: %v", fileErr)
	}
	if string(data) != hash.String() {
		t.Errorf("ref file content %q, want bare %q", data, hash)
	}
}

func TestUpdateBranchRejectsBadHash(t *testing.T) {
	rm, _ := newTestRefManager(t)
	if updateErr := rm.UpdateBranch("main", "nothex"); updateErr == nil {
		t.Error("expected error for malformed hash")
	}
}

func TestReadBranchMissing(t *testing.T) {
	rm, _ := newTestRefManager(t)

	_, exists, readErr := rm.ReadBranch("ghost")
	if readErr != nil {
		t.Fatalf("ReadBranch failed: %v", readErr)
	}
	if exists {
		t.Error("expected missing branch")
	}
}

func TestDeleteBranch(t *testing.T) {
	rm, _ := newTestRefManager(t)

	if updateErr := rm.UpdateBranch("doomed", testHash("tip")); updateErr != nil {
		t.Fatalf("UpdateBranch failed: %v", updateErr)
	}

	deleted, delErr := rm.DeleteBranch("doomed")
	if delErr != nil {
		t.Fatalf("DeleteBranch failed: %v", delErr)
	}
	if !deleted {
		t.Error("expected deletion to report true")
	}

	deleted, delErr = rm.DeleteBranch("doomed")
	if delErr != nil {
		t.Fatalf("second DeleteBranch failed: %v", delErr)
	}
	if deleted {
		t.Error("expected second deletion to report false")
	}
}

func TestListBranchesSorted(t *testing.T) {
	rm, _ := newTestRefManager(t)

	for _, name := range []string{"zeta", "alpha", "main"} {
		if updateErr := rm.UpdateBranch(name, testHash(name)); updateErr != nil {
			t.Fatalf("UpdateBranch %s failed: %v", name, updateErr)
		}
	}

	names, listErr := rm.ListBranches()
	if listErr != nil {
		t.Fatalf("ListBranches failed: %v", listErr)
	}

	want := []string{"alpha", "main", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %d branches, got %d", len(want), len(names))
	}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("position %d: got %q, want %q", i, names[i], w)
		}
	}
}

func TestBranchExists(t *testing.T) {
	rm, _ := newTestRefManager(t)

	exists, existsErr := rm.BranchExists("main")
	if existsErr != nil {
		t.Fatalf("BranchExists failed: %v", existsErr)
	}
	if exists {
		t.Error("main should not exist before its first commit")
	}

	if updateErr := rm.UpdateBranch("main", testHash("tip")); updateErr != nil {
		t.Fatalf("UpdateBranch failed: %v", updateErr)
	}

	exists, _ = rm.BranchExists("main")
	if !exists {
		t.Error("main should exist after update")
	}
}

func TestDetachedHead(t *testing.T) {
	rm, dir := newTestRefManager(t)
	hash := testHash("detached")

	if writeErr := os.WriteFile(filepath.Join(dir, ".mygit", "HEAD"), []byte(hash.String()), 0644); writeErr != nil {
		t.Fatalf("write HEAD failed: %v", writeErr)
	}

	if got := rm.DetachedHead(); got != hash {
		t.Errorf("expected detached hash %s, got %s", hash, got)
	}
}
