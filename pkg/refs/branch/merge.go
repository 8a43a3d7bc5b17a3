package branch

import (
	"fmt"
	"strings"

	"github.com/mygit-vcs/mygit/pkg/common/err"
	"github.com/mygit-vcs/mygit/pkg/objects"
)

// MergeResult reports the outcome of a merge.
type MergeResult struct {
	// UpToDate is true when the current branch already contained the
	// target and nothing was done.
	UpToDate bool

	// NewHash is the current branch's tip after the merge.
	NewHash objects.ObjectHash
}

// Merge brings the named branch into the current branch. Only
// fast-forward merges are performed: when the current tip is an ancestor
// of the target tip, the current branch ref is moved forward. Divergent
// histories are refused.
func (m *Manager) Merge(name string) (MergeResult, error) {
	const op = "merge"

	targetHash, exists, readErr := m.refMgr.ReadBranch(name)
	if readErr != nil {
		return MergeResult{}, NewBranchError(err.CodeInternal, op, "read branch ref", name, readErr)
	}
	if !exists {
		return MergeResult{}, NewBranchError(err.CodeNotFound, op, "branch does not exist", name, nil)
	}

	current := m.refMgr.CurrentBranch()
	if name == current {
		return MergeResult{}, NewBranchError(err.CodeInvalidInput, op, "cannot merge a branch into itself", name, nil)
	}

	currentHash, currentExists, curErr := m.refMgr.ReadBranch(current)
	if curErr != nil {
		return MergeResult{}, NewBranchError(err.CodeInternal, op, "read current branch ref", current, curErr)
	}

	if currentExists && currentHash == targetHash {
		return MergeResult{UpToDate: true, NewHash: currentHash}, nil
	}

	// Unborn branch, or the current tip is behind the target: fast-forward.
	if !currentExists || m.isAncestor(currentHash, targetHash) {
		if refErr := m.refMgr.UpdateBranch(current, targetHash); refErr != nil {
			return MergeResult{}, NewBranchError(err.CodeInternal, op, "advance branch ref", current, refErr)
		}
		m.log.Info("fast-forwarded branch", "branch", current, "to", targetHash.Short())
		return MergeResult{NewHash: targetHash}, nil
	}

	if m.isAncestor(targetHash, currentHash) {
		return MergeResult{UpToDate: true, NewHash: currentHash}, nil
	}

	return MergeResult{}, NewBranchError(err.CodeUnsupported, op,
		"branches have diverged; only fast-forward merges are supported", name, nil)
}

// Diff compares two commits, defaulting both to the current tip when
// empty. Hashes are validated against the object store. Content diffing
// is not implemented; a summary of the endpoints is returned.
func (m *Manager) Diff(commit1, commit2 string) (string, error) {
	const op = "diff"

	from, fromErr := m.resolveDiffCommit(op, commit1)
	if fromErr != nil {
		return "", fromErr
	}
	to, toErr := m.resolveDiffCommit(op, commit2)
	if toErr != nil {
		return "", toErr
	}

	var b strings.Builder
	fmt.Fprintf(&b, "diff %s..%s\n", from.Short(), to.Short())
	if from == to {
		b.WriteString("no changes\n")
		return b.String(), nil
	}

	fromCommit, fromReadErr := m.graph.ReadCommit(from)
	if fromReadErr != nil {
		return "", fromReadErr
	}
	toCommit, toReadErr := m.graph.ReadCommit(to)
	if toReadErr != nil {
		return "", toReadErr
	}

	fmt.Fprintf(&b, "from: %s (tree %s)\n", fromCommit.Summary(), fromCommit.TreeHash.Short())
	fmt.Fprintf(&b, "to:   %s (tree %s)\n", toCommit.Summary(), toCommit.TreeHash.Short())
	b.WriteString("content diffing is not supported yet\n")
	return b.String(), nil
}

func (m *Manager) resolveDiffCommit(op, raw string) (objects.ObjectHash, error) {
	if raw == "" {
		tip, ok, tipErr := m.graph.CurrentCommit()
		if tipErr != nil {
			return "", NewBranchError(err.CodeInternal, op, "read current commit", "", tipErr)
		}
		if !ok {
			return "", NewBranchError(CodeEmptyRepository, op, "no commits to diff", "", nil)
		}
		return tip, nil
	}

	hash, parseErr := objects.ParseObjectHash(raw)
	if parseErr != nil {
		return "", NewBranchError(err.CodeValidation, op, "invalid commit hash", "", parseErr)
	}
	exists, hasErr := m.objects.HasObject(hash)
	if hasErr != nil {
		return "", NewBranchError(err.CodeInternal, op, "check commit", "", hasErr)
	}
	if !exists {
		return "", NewBranchError(err.CodeNotFound, op, "commit does not exist", "", nil)
	}
	return hash, nil
}

// isAncestor walks descendant's parent chain looking for ancestor.
// Unreadable commits end the walk; the history is linear so a single
// chain is enough.
func (m *Manager) isAncestor(ancestor, descendant objects.ObjectHash) bool {
	if ancestor == "" {
		return true
	}

	cursor := descendant
	for cursor != "" {
		if cursor == ancestor {
			return true
		}
		c, readErr := m.graph.ReadCommit(cursor)
		if readErr != nil {
			m.log.Warn("ancestry walk stopped at unreadable commit", "hash", cursor.Short(), "error", readErr)
			return false
		}
		cursor = c.ParentHash
	}

	return false
}
