// Package commits maintains the commit graph: it turns the staged index
// into tree and commit objects and advances the current branch ref.
package commits

import (
	"fmt"
	"log/slog"

	"github.com/mygit-vcs/mygit/pkg/common/logger"
	"github.com/mygit-vcs/mygit/pkg/index"
	"github.com/mygit-vcs/mygit/pkg/objects"
	"github.com/mygit-vcs/mygit/pkg/objects/commit"
	"github.com/mygit-vcs/mygit/pkg/objects/tree"
	"github.com/mygit-vcs/mygit/pkg/refs"
	"github.com/mygit-vcs/mygit/pkg/repository"
	"github.com/mygit-vcs/mygit/pkg/store"
)

// LogEntry pairs a commit with its hash while walking history.
type LogEntry struct {
	Hash   objects.ObjectHash
	Commit *commit.Commit
}

// Manager creates commits and walks the commit chain.
type Manager struct {
	repo    *repository.Repository
	objects store.ObjectStore
	idx     *index.Manager
	refMgr  *refs.RefManager
	log     *slog.Logger
}

// NewManager creates a commit-graph manager.
func NewManager(repo *repository.Repository, objectStore store.ObjectStore, idx *index.Manager, refMgr *refs.RefManager, log *slog.Logger) *Manager {
	return &Manager{
		repo:    repo,
		objects: objectStore,
		idx:     idx,
		refMgr:  refMgr,
		log:     logger.OrDefault(log),
	}
}

// Commit snapshots the staged index as a tree, creates a commit pointing
// at the current branch tip, and advances the branch ref.
//
// When nothing is staged it returns ok=false with no error and no state
// change: "nothing to commit" is a normal result, not a failure.
//
// The index is deliberately left intact after a successful commit,
// matching the established on-disk behavior.
func (m *Manager) Commit(message, author string) (objects.ObjectHash, bool, error) {
	entries, readErr := m.idx.Read()
	if readErr != nil {
		return "", false, readErr
	}
	if len(entries) == 0 {
		m.log.Info("nothing to commit", "branch", m.CurrentBranch())
		return "", false, nil
	}

	treeHash, treeErr := m.writeTree(entries)
	if treeErr != nil {
		return "", false, treeErr
	}

	branch := m.CurrentBranch()
	parent, _, parentErr := m.refMgr.ReadBranch(branch)
	if parentErr != nil {
		return "", false, parentErr
	}

	sig, sigErr := m.resolveAuthor(author)
	if sigErr != nil {
		return "", false, sigErr
	}

	c := &commit.Commit{
		TreeHash:   treeHash,
		ParentHash: parent,
		Author:     sig,
		Committer:  sig,
		Message:    message,
	}

	commitHash, writeErr := m.objects.WriteObject(c)
	if writeErr != nil {
		return "", false, writeErr
	}

	if refErr := m.refMgr.UpdateBranch(branch, commitHash); refErr != nil {
		return "", false, refErr
	}

	m.log.Info("created commit",
		"hash", commitHash.Short(),
		"branch", branch,
		"tree", treeHash.Short(),
		"staged", len(entries))
	return commitHash, true, nil
}

// CurrentBranch returns the branch HEAD is attached to.
func (m *Manager) CurrentBranch() string {
	return m.refMgr.CurrentBranch()
}

// CurrentCommit returns the current branch's tip. ok=false means the
// branch has no commits yet.
func (m *Manager) CurrentCommit() (objects.ObjectHash, bool, error) {
	if detached := m.refMgr.DetachedHead(); detached != "" {
		return detached, true, nil
	}
	return m.refMgr.ReadBranch(m.CurrentBranch())
}

// History walks the parent chain from the current commit, yielding at
// most max entries. The walk stops quietly when an object in the chain
// cannot be read.
func (m *Manager) History(max int) ([]LogEntry, error) {
	current, ok, tipErr := m.CurrentCommit()
	if tipErr != nil {
		return nil, tipErr
	}
	if !ok {
		return []LogEntry{}, nil
	}

	var history []LogEntry
	for current != "" && len(history) < max {
		framed, readErr := store.ReadFramed(m.objects, current)
		if readErr != nil {
			m.log.Warn("history walk stopped at unreadable object", "hash", current.Short())
			break
		}

		c, parseErr := commit.ParseCommit(framed)
		if parseErr != nil {
			m.log.Warn("history walk stopped at corrupt commit", "hash", current.Short())
			break
		}

		history = append(history, LogEntry{Hash: current, Commit: c})
		current = c.ParentHash
	}

	return history, nil
}

// ReadCommit loads and parses a single commit object.
func (m *Manager) ReadCommit(hash objects.ObjectHash) (*commit.Commit, error) {
	framed, readErr := store.ReadFramed(m.objects, hash)
	if readErr != nil {
		return nil, readErr
	}
	return commit.ParseCommit(framed)
}

// writeTree serializes the index entries into a single flat tree object.
// A fresh tree is computed for every commit; content addressing makes the
// write a no-op when nothing changed.
func (m *Manager) writeTree(entries []index.Entry) (objects.ObjectHash, error) {
	treeEntries := make([]tree.Entry, 0, len(entries))
	for _, e := range entries {
		treeEntries = append(treeEntries, tree.Entry{
			Mode: e.Mode,
			Name: e.Basename(),
			Hash: e.Hash,
		})
	}

	return m.objects.WriteObject(tree.New(treeEntries))
}

// resolveAuthor builds the commit signature. An explicit author name gets
// a derived example.com email; otherwise the configured identity is used.
func (m *Manager) resolveAuthor(author string) (commit.Signature, error) {
	if author != "" {
		return commit.NewSignature(author, fmt.Sprintf("%s@example.com", author)), nil
	}

	cfg, cfgErr := m.repo.LoadConfig()
	if cfgErr != nil {
		return commit.Signature{}, cfgErr
	}
	return commit.NewSignature(cfg.User.Name, cfg.User.Email), nil
}
