// Package vcpath provides typed filesystem paths for the repository layout.
// Keeping the path arithmetic in one place means the rest of the codebase
// never string-concatenates its way into the control directory.
package vcpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Control-directory layout names. The layout is part of the on-disk
// contract and must not change.
const (
	ControlDir = ".mygit"

	ObjectsDir = "objects"
	RefsDir    = "refs"
	HeadsDir   = "heads"
	TagsDir    = "tags"
	HeadFile   = "HEAD"
	IndexFile  = "index"
	ConfigFile = "config"
)

// RepositoryPath is the absolute path of a repository's working root.
type RepositoryPath string

// NewRepositoryPath creates a RepositoryPath from any path string,
// resolving it to an absolute path.
func NewRepositoryPath(path string) (RepositoryPath, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return RepositoryPath(abs), nil
}

// String returns the path as a string.
func (rp RepositoryPath) String() string {
	return string(rp)
}

// IsValid checks if this is an absolute path.
func (rp RepositoryPath) IsValid() bool {
	return filepath.IsAbs(string(rp))
}

// Join joins path elements to the repository root.
func (rp RepositoryPath) Join(elem ...string) string {
	parts := append([]string{string(rp)}, elem...)
	return filepath.Join(parts...)
}

// ControlPath returns the path of the .mygit control directory.
func (rp RepositoryPath) ControlPath() ControlPath {
	return ControlPath(filepath.Join(string(rp), ControlDir))
}

// Relativize resolves a user-supplied path against the repository root and
// returns it as a slash-separated path relative to the root. It fails if
// the path escapes the root or points inside the control directory.
func (rp RepositoryPath) Relativize(path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(string(rp), path)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(string(rp), abs)
	if err != nil {
		return "", fmt.Errorf("relativize %q: %w", path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes repository root", path)
	}
	if rel == ControlDir || strings.HasPrefix(rel, ControlDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q is inside the %s control directory", path, ControlDir)
	}

	return filepath.ToSlash(rel), nil
}

// ControlPath is the absolute path of the .mygit control directory.
type ControlPath string

// String returns the path as a string.
func (cp ControlPath) String() string {
	return string(cp)
}

// Join joins path elements to the control directory.
func (cp ControlPath) Join(elem ...string) string {
	parts := append([]string{string(cp)}, elem...)
	return filepath.Join(parts...)
}

// ObjectsPath returns the objects directory path.
func (cp ControlPath) ObjectsPath() string {
	return cp.Join(ObjectsDir)
}

// HeadsPath returns the refs/heads directory path.
func (cp ControlPath) HeadsPath() string {
	return cp.Join(RefsDir, HeadsDir)
}

// TagsPath returns the refs/tags directory path.
func (cp ControlPath) TagsPath() string {
	return cp.Join(RefsDir, TagsDir)
}

// HeadPath returns the HEAD file path.
func (cp ControlPath) HeadPath() string {
	return cp.Join(HeadFile)
}

// IndexPath returns the index file path.
func (cp ControlPath) IndexPath() string {
	return cp.Join(IndexFile)
}

// ConfigPath returns the config file path.
func (cp ControlPath) ConfigPath() string {
	return cp.Join(ConfigFile)
}

// BranchRefPath returns the ref file path for a branch name.
func (cp ControlPath) BranchRefPath(name string) string {
	return cp.Join(RefsDir, HeadsDir, name)
}

// ObjectFilePath returns the fan-out storage path for an object hash.
// Example: hash "abcdef..." maps to objects/ab/cdef...
func (cp ControlPath) ObjectFilePath(hash string) (string, error) {
	if len(hash) != 40 {
		return "", fmt.Errorf("invalid hash length: %d", len(hash))
	}
	return cp.Join(ObjectsDir, hash[:2], hash[2:]), nil
}
