// Package refs manages the mutable pointers of the repository: branch
// ref files under refs/heads/ and the HEAD file.
package refs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mygit-vcs/mygit/pkg/common/fileops"
	"github.com/mygit-vcs/mygit/pkg/objects"
	"github.com/mygit-vcs/mygit/pkg/repository/vcpath"
)

const (
	// SymbolicRefPrefix marks HEAD as attached to a branch.
	SymbolicRefPrefix = "ref: "

	// BranchRefPrefix is the ref namespace for branches.
	BranchRefPrefix = "refs/heads/"
)

// RefManager reads and writes ref files. Writes go through atomic
// temp+rename so a crash cannot leave a truncated pointer.
type RefManager struct {
	control vcpath.ControlPath
}

// NewRefManager creates a ref manager for the given control directory.
func NewRefManager(control vcpath.ControlPath) *RefManager {
	return &RefManager{control: control}
}

// ReadHead returns the raw trimmed HEAD content.
func (rm *RefManager) ReadHead() (string, error) {
	content, readErr := fileops.ReadTrimmed(rm.control.HeadPath())
	if readErr != nil {
		return "", fmt.Errorf("read HEAD: %w", readErr)
	}
	return content, nil
}

// CurrentBranch parses HEAD and returns the attached branch name.
// Defaults to "main" when HEAD is unreadable or detached.
func (rm *RefManager) CurrentBranch() string {
	content, readErr := rm.ReadHead()
	if readErr != nil {
		return "main"
	}
	if ref, ok := strings.CutPrefix(content, SymbolicRefPrefix); ok {
		return strings.TrimPrefix(strings.TrimSpace(ref), BranchRefPrefix)
	}
	return "main"
}

// DetachedHead returns the raw commit hash HEAD holds in detached state,
// or empty when HEAD is attached.
func (rm *RefManager) DetachedHead() objects.ObjectHash {
	content, readErr := rm.ReadHead()
	if readErr != nil || strings.HasPrefix(content, SymbolicRefPrefix) {
		return ""
	}
	hash, parseErr := objects.ParseObjectHash(content)
	if parseErr != nil {
		return ""
	}
	return hash
}

// AttachHead rewrites HEAD to point at the given branch.
func (rm *RefManager) AttachHead(branch string) error {
	content := SymbolicRefPrefix + BranchRefPrefix + branch + "\n"
	if writeErr := fileops.AtomicWrite(rm.control.HeadPath(), []byte(content), 0o644); writeErr != nil {
		return fmt.Errorf("write HEAD: %w", writeErr)
	}
	return nil
}

// ReadBranch returns the commit hash a branch points at. The second
// return is false when the branch ref does not exist (no commits yet).
func (rm *RefManager) ReadBranch(name string) (objects.ObjectHash, bool, error) {
	content, readErr := fileops.ReadTrimmed(rm.control.BranchRefPath(name))
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read ref %s: %w", name, readErr)
	}

	hash, parseErr := objects.ParseObjectHash(content)
	if parseErr != nil {
		return "", false, fmt.Errorf("invalid ref content for %s: %w", name, parseErr)
	}

	return hash, true, nil
}

// UpdateBranch points a branch ref at the given commit hash, creating the
// ref file if needed.
func (rm *RefManager) UpdateBranch(name string, hash objects.ObjectHash) error {
	if valErr := hash.Validate(); valErr != nil {
		return fmt.Errorf("invalid hash for ref %s: %w", name, valErr)
	}

	path := rm.control.BranchRefPath(name)
	if mkErr := fileops.EnsureParentDir(path); mkErr != nil {
		return fmt.Errorf("create ref directory: %w", mkErr)
	}

	if writeErr := fileops.AtomicWrite(path, []byte(hash.String()), 0o644); writeErr != nil {
		return fmt.Errorf("write ref %s: %w", name, writeErr)
	}

	return nil
}

// DeleteBranch removes a branch ref file. Returns false when the ref did
// not exist.
func (rm *RefManager) DeleteBranch(name string) (bool, error) {
	path := rm.control.BranchRefPath(name)

	exists, statErr := fileops.Exists(path)
	if statErr != nil {
		return false, fmt.Errorf("stat ref %s: %w", name, statErr)
	}
	if !exists {
		return false, nil
	}

	if rmErr := os.Remove(path); rmErr != nil {
		return false, fmt.Errorf("delete ref %s: %w", name, rmErr)
	}

	return true, nil
}

// BranchExists checks whether a branch ref file exists.
func (rm *RefManager) BranchExists(name string) (bool, error) {
	return fileops.Exists(rm.control.BranchRefPath(name))
}

// ListBranches returns all branch names under refs/heads, sorted.
func (rm *RefManager) ListBranches() ([]string, error) {
	entries, readErr := os.ReadDir(rm.control.HeadsPath())
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list branches: %w", readErr)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
