package index

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"

	"github.com/mygit-vcs/mygit/pkg/common/err"
	"github.com/mygit-vcs/mygit/pkg/common/fileops"
	"github.com/mygit-vcs/mygit/pkg/common/logger"
	"github.com/mygit-vcs/mygit/pkg/objects"
	"github.com/mygit-vcs/mygit/pkg/repository/vcpath"
	"github.com/mygit-vcs/mygit/pkg/store"
)

// Manager owns the staging area: a path-sorted list of entries persisted
// as a JSON array in the control directory's index file.
//
// Invariant: at most one entry per path. Adding a staged path again
// replaces the prior entry and re-sorts the collection.
//
// Manager is not safe for concurrent writers; the repository is treated
// as single-writer (an add racing another add or a commit can lose an
// update, which is an accepted limitation).
type Manager struct {
	root    vcpath.RepositoryPath
	control vcpath.ControlPath
	objects store.ObjectStore
	log     *slog.Logger
}

// NewManager creates an index manager for the given repository root.
func NewManager(root vcpath.RepositoryPath, objectStore store.ObjectStore, log *slog.Logger) *Manager {
	return &Manager{
		root:    root,
		control: root.ControlPath(),
		objects: objectStore,
		log:     logger.OrDefault(log),
	}
}

// Read returns all staged entries in path order. A missing index file
// yields an empty list, not an error.
func (m *Manager) Read() ([]Entry, error) {
	data, readErr := os.ReadFile(m.control.IndexPath())
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return []Entry{}, nil
		}
		return nil, NewIndexError(err.CodeInternal, "read", "read index file", "", readErr)
	}

	var entries []Entry
	if jsonErr := json.Unmarshal(data, &entries); jsonErr != nil {
		return nil, NewIndexError(err.CodeInvalidFormat, "read", "parse index file", "", jsonErr)
	}
	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}

// Write persists the full entry list, overwriting the index file.
func (m *Manager) Write(entries []Entry) error {
	data, jsonErr := json.MarshalIndent(entries, "", "  ")
	if jsonErr != nil {
		return NewIndexError(err.CodeInternal, "write", "encode index", "", jsonErr)
	}

	if writeErr := fileops.AtomicWrite(m.control.IndexPath(), data, 0o644); writeErr != nil {
		return NewIndexError(err.CodeInternal, "write", "write index file", "", writeErr)
	}

	return nil
}

// Add stages a file: stores its content as a blob, captures its metadata,
// and replaces any prior entry for the same path.
func (m *Manager) Add(path string) (Entry, error) {
	const op = "add"

	relPath, relErr := m.root.Relativize(path)
	if relErr != nil {
		return Entry{}, NewIndexError(err.CodeValidation, op, "path cannot be staged", path, relErr)
	}

	absPath := m.root.Join(relPath)
	info, statErr := os.Stat(absPath)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return Entry{}, NewIndexError(err.CodeNotFound, op, "file not found", relPath, nil)
		}
		return Entry{}, NewIndexError(err.CodeInternal, op, "stat file", relPath, statErr)
	}
	if info.IsDir() {
		return Entry{}, NewIndexError(err.CodeInvalidInput, op, "path is a directory", relPath, nil)
	}

	content, readErr := os.ReadFile(absPath)
	if readErr != nil {
		return Entry{}, NewIndexError(err.CodeInternal, op, "read file", relPath, readErr)
	}

	hash, storeErr := m.objects.HashObject(content, objects.BlobType)
	if storeErr != nil {
		return Entry{}, NewIndexError(err.CodeInternal, op, "store blob", relPath, storeErr)
	}

	entry := NewEntryFromFileInfo(relPath, info, hash)

	entries, readIdxErr := m.Read()
	if readIdxErr != nil {
		return Entry{}, readIdxErr
	}

	entries = replaceEntry(entries, entry)
	if writeErr := m.Write(entries); writeErr != nil {
		return Entry{}, writeErr
	}

	m.log.Info("staged file", "path", relPath, "hash", hash.Short(), "size", entry.Size)
	return entry, nil
}

// IsEmpty reports whether nothing is staged.
func (m *Manager) IsEmpty() (bool, error) {
	entries, readErr := m.Read()
	if readErr != nil {
		return false, readErr
	}
	return len(entries) == 0, nil
}

// replaceEntry removes any existing entry for the same path, appends the
// new one, and restores path order.
func replaceEntry(entries []Entry, entry Entry) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if e.Path != entry.Path {
			out = append(out, e)
		}
	}
	out = append(out, entry)

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
