// Package repository owns the control-directory lifecycle: creating the
// .mygit layout at init, and validating it on every subsequent open.
// The control directory's existence is the sole signal that a repository
// is initialized.
package repository

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mygit-vcs/mygit/pkg/common/err"
	"github.com/mygit-vcs/mygit/pkg/common/fileops"
	"github.com/mygit-vcs/mygit/pkg/common/logger"
	"github.com/mygit-vcs/mygit/pkg/repository/vcpath"
)

// DefaultBranch is the branch HEAD points at after init.
const DefaultBranch = "main"

// initialHead is the HEAD content written at init time.
const initialHead = "ref: refs/heads/" + DefaultBranch + "\n"

// Repository is a working root plus its .mygit control directory.
type Repository struct {
	root    vcpath.RepositoryPath
	control vcpath.ControlPath
	log     *slog.Logger
}

// Root returns the repository's working root.
func (r *Repository) Root() vcpath.RepositoryPath {
	return r.root
}

// Control returns the repository's control directory.
func (r *Repository) Control() vcpath.ControlPath {
	return r.control
}

// Init creates the control directory layout at the given root:
// objects/, refs/heads/, refs/tags/, HEAD pointing at main, an empty
// index, and a default config. Re-running init on an existing repository
// leaves its contents intact.
func Init(root vcpath.RepositoryPath, log *slog.Logger) (*Repository, error) {
	const op = "init"

	if !root.IsValid() {
		return nil, NewRepositoryError(err.CodeInvalidInput, op, "repository path must be absolute", root.String(), nil)
	}

	repo := &Repository{
		root:    root,
		control: root.ControlPath(),
		log:     logger.OrDefault(log),
	}

	dirs := []string{
		repo.control.ObjectsPath(),
		repo.control.HeadsPath(),
		repo.control.TagsPath(),
	}
	for _, dir := range dirs {
		if mkErr := fileops.EnsureDir(dir); mkErr != nil {
			return nil, NewRepositoryError(err.CodeInternal, op, "create control directory", root.String(), mkErr)
		}
	}

	headExists, statErr := fileops.Exists(repo.control.HeadPath())
	if statErr != nil {
		return nil, NewRepositoryError(err.CodeInternal, op, "check HEAD", root.String(), statErr)
	}
	if !headExists {
		if writeErr := fileops.AtomicWrite(repo.control.HeadPath(), []byte(initialHead), 0o644); writeErr != nil {
			return nil, NewRepositoryError(err.CodeInternal, op, "write HEAD", root.String(), writeErr)
		}
	}

	indexExists, statErr := fileops.Exists(repo.control.IndexPath())
	if statErr != nil {
		return nil, NewRepositoryError(err.CodeInternal, op, "check index", root.String(), statErr)
	}
	if !indexExists {
		if writeErr := fileops.AtomicWrite(repo.control.IndexPath(), []byte("[]"), 0o644); writeErr != nil {
			return nil, NewRepositoryError(err.CodeInternal, op, "write index", root.String(), writeErr)
		}
	}

	cfgExists, statErr := fileops.Exists(repo.control.ConfigPath())
	if statErr != nil {
		return nil, NewRepositoryError(err.CodeInternal, op, "check config", root.String(), statErr)
	}
	if !cfgExists {
		if cfgErr := repo.SaveConfig(DefaultConfig()); cfgErr != nil {
			return nil, cfgErr
		}
	}

	repo.log.Info("initialized repository", "control_dir", repo.control.String())
	return repo, nil
}

// Open returns a Repository for the given root, failing if the control
// directory is absent.
func Open(root vcpath.RepositoryPath, log *slog.Logger) (*Repository, error) {
	repo := &Repository{
		root:    root,
		control: root.ControlPath(),
		log:     logger.OrDefault(log),
	}

	if !fileops.IsDir(repo.control.String()) {
		return nil, NewRepositoryError(err.CodeNotFound, "open", "not a repository (missing "+vcpath.ControlDir+")", root.String(), nil)
	}

	return repo, nil
}

// Find walks up from the given directory looking for a control directory
// and opens the repository containing it.
func Find(start string, log *slog.Logger) (*Repository, error) {
	dir, absErr := filepath.Abs(start)
	if absErr != nil {
		return nil, NewRepositoryError(err.CodeInvalidInput, "find", "resolve start path", start, absErr)
	}

	for {
		if fileops.IsDir(filepath.Join(dir, vcpath.ControlDir)) {
			root, pathErr := vcpath.NewRepositoryPath(dir)
			if pathErr != nil {
				return nil, NewRepositoryError(err.CodeInvalidInput, "find", "invalid repository path", dir, pathErr)
			}
			return Open(root, log)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, NewRepositoryError(err.CodeNotFound, "find",
				"not a repository (or any parent up to mount point)", start, nil)
		}
		dir = parent
	}
}

// FindFromCwd locates the repository enclosing the current directory.
func FindFromCwd(log *slog.Logger) (*Repository, error) {
	cwd, cwdErr := os.Getwd()
	if cwdErr != nil {
		return nil, NewRepositoryError(err.CodeInternal, "find", "get working directory", "", cwdErr)
	}
	return Find(cwd, log)
}
