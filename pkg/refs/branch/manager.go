// Package branch manages branch refs on top of the commit graph:
// creation, listing, deletion, checkout, fast-forward merge, and commit
// diffing.
package branch

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mygit-vcs/mygit/pkg/commits"
	"github.com/mygit-vcs/mygit/pkg/common/err"
	"github.com/mygit-vcs/mygit/pkg/common/logger"
	"github.com/mygit-vcs/mygit/pkg/index"
	"github.com/mygit-vcs/mygit/pkg/objects"
	"github.com/mygit-vcs/mygit/pkg/refs"
	"github.com/mygit-vcs/mygit/pkg/store"
)

// Info describes one branch for listing.
type Info struct {
	// Name is the branch name.
	Name string

	// Hash is the commit the branch points at.
	Hash objects.ObjectHash

	// IsCurrent marks the checked-out branch.
	IsCurrent bool

	// Summary is the first line of the tip commit's message, when readable.
	Summary string
}

// Manager performs branch operations. It is not safe for concurrent use;
// the repository is single-writer.
type Manager struct {
	refMgr  *refs.RefManager
	objects store.ObjectStore
	graph   *commits.Manager
	idx     *index.Manager
	log     *slog.Logger
}

// NewManager creates a branch manager.
func NewManager(refMgr *refs.RefManager, objectStore store.ObjectStore, graph *commits.Manager, idx *index.Manager, log *slog.Logger) *Manager {
	return &Manager{
		refMgr:  refMgr,
		objects: objectStore,
		graph:   graph,
		idx:     idx,
		log:     logger.OrDefault(log),
	}
}

// Create makes a new branch ref. The starting commit is startPoint when
// given (validated to exist), otherwise the current branch's tip.
// Existing branches are never overwritten.
func (m *Manager) Create(name, startPoint string) error {
	const op = "create"

	if valErr := ValidateName(name); valErr != nil {
		return valErr
	}

	exists, statErr := m.refMgr.BranchExists(name)
	if statErr != nil {
		return NewBranchError(err.CodeInternal, op, "check branch", name, statErr)
	}
	if exists {
		return NewBranchError(err.CodeAlreadyExists, op, "branch already exists", name, nil)
	}

	start, resolveErr := m.resolveStartPoint(op, name, startPoint)
	if resolveErr != nil {
		return resolveErr
	}

	if refErr := m.refMgr.UpdateBranch(name, start); refErr != nil {
		return NewBranchError(err.CodeInternal, op, "write branch ref", name, refErr)
	}

	m.log.Info("created branch", "branch", name, "at", start.Short())
	return nil
}

// Checkout moves HEAD to the named branch. When the branch is missing and
// create is true, it is first created from the current commit. The
// working directory is not rewritten; only HEAD moves. A non-empty index
// produces a warning, not a failure.
func (m *Manager) Checkout(name string, create bool) error {
	const op = "checkout"

	exists, statErr := m.refMgr.BranchExists(name)
	if statErr != nil {
		return NewBranchError(err.CodeInternal, op, "check branch", name, statErr)
	}

	if !exists {
		if !create {
			return NewBranchError(err.CodeNotFound, op, "branch does not exist", name, nil)
		}
		if createErr := m.Create(name, ""); createErr != nil {
			return createErr
		}
	}

	staged, idxErr := m.idx.Read()
	if idxErr != nil {
		return idxErr
	}
	if len(staged) > 0 {
		m.log.Warn("index has staged entries; working files are not rewritten on checkout",
			"branch", name, "staged", len(staged))
	}

	if headErr := m.refMgr.AttachHead(name); headErr != nil {
		return NewBranchError(err.CodeInternal, op, "update HEAD", name, headErr)
	}

	m.log.Info("switched branch", "branch", name)
	return nil
}

// Names returns all branch names, sorted.
func (m *Manager) Names() ([]string, error) {
	return m.refMgr.ListBranches()
}

// List returns branch infos sorted by name. Tip commits are loaded
// concurrently, one goroutine per branch.
func (m *Manager) List(ctx context.Context) ([]Info, error) {
	names, listErr := m.refMgr.ListBranches()
	if listErr != nil {
		return nil, NewBranchError(err.CodeInternal, "list", "enumerate branches", "", listErr)
	}

	current := m.refMgr.CurrentBranch()
	infos := make([]Info, len(names))

	g, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			info, infoErr := m.branchInfo(name, current)
			if infoErr != nil {
				return infoErr
			}
			infos[i] = info
			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		return nil, waitErr
	}

	return infos, nil
}

// Delete removes a branch ref. The current branch can never be deleted.
// Without force, the deletion is declined (deleted=false, no error) when
// the branch's tip is not reachable from the current branch.
func (m *Manager) Delete(name string, force bool) (bool, error) {
	const op = "delete"

	current := m.refMgr.CurrentBranch()
	if name == current {
		return false, NewBranchError(CodeCurrentBranch, op, "cannot delete the checked-out branch", name, nil)
	}

	hash, exists, readErr := m.refMgr.ReadBranch(name)
	if readErr != nil {
		return false, NewBranchError(err.CodeInternal, op, "read branch ref", name, readErr)
	}
	if !exists {
		return false, NewBranchError(err.CodeNotFound, op, "branch does not exist", name, nil)
	}

	if !force {
		currentHash, _, curErr := m.refMgr.ReadBranch(current)
		if curErr != nil {
			return false, NewBranchError(err.CodeInternal, op, "read current branch ref", current, curErr)
		}
		if hash != currentHash && !m.isAncestor(hash, currentHash) {
			m.log.Warn("branch is not merged; use force to delete", "branch", name, "at", hash.Short())
			return false, nil
		}
	}

	if _, delErr := m.refMgr.DeleteBranch(name); delErr != nil {
		return false, NewBranchError(err.CodeInternal, op, "delete branch ref", name, delErr)
	}

	m.log.Info("deleted branch", "branch", name, "was", hash.Short())
	return true, nil
}

// resolveStartPoint validates an explicit start commit, or falls back to
// the current branch's tip. An empty repository cannot be branched.
func (m *Manager) resolveStartPoint(op, name, startPoint string) (objects.ObjectHash, error) {
	if startPoint != "" {
		hash, parseErr := objects.ParseObjectHash(startPoint)
		if parseErr != nil {
			return "", NewBranchError(err.CodeValidation, op, "invalid start point", name, parseErr)
		}
		exists, hasErr := m.objects.HasObject(hash)
		if hasErr != nil {
			return "", NewBranchError(err.CodeInternal, op, "check start point", name, hasErr)
		}
		if !exists {
			return "", NewBranchError(err.CodeNotFound, op, "start point does not exist", name, nil)
		}
		return hash, nil
	}

	tip, ok, tipErr := m.graph.CurrentCommit()
	if tipErr != nil {
		return "", NewBranchError(err.CodeInternal, op, "read current commit", name, tipErr)
	}
	if !ok {
		return "", NewBranchError(CodeEmptyRepository, op, "no commit to branch from", name, nil)
	}

	return tip, nil
}

func (m *Manager) branchInfo(name, current string) (Info, error) {
	hash, _, readErr := m.refMgr.ReadBranch(name)
	if readErr != nil {
		return Info{}, NewBranchError(err.CodeInternal, "list", "read branch ref", name, readErr)
	}

	info := Info{
		Name:      name,
		Hash:      hash,
		IsCurrent: name == current,
	}

	if hash != "" {
		if c, commitErr := m.graph.ReadCommit(hash); commitErr == nil {
			info.Summary = c.Summary()
		}
	}

	return info, nil
}
