package main

import (
	"github.com/mygit-vcs/mygit/pkg/commits"
	"github.com/mygit-vcs/mygit/pkg/common/logger"
	"github.com/mygit-vcs/mygit/pkg/index"
	"github.com/mygit-vcs/mygit/pkg/refs"
	"github.com/mygit-vcs/mygit/pkg/refs/branch"
	"github.com/mygit-vcs/mygit/pkg/repository"
	"github.com/mygit-vcs/mygit/pkg/store"
)

// services wires all managers for one repository. Every command builds
// this once after finding the repository.
type services struct {
	repo    *repository.Repository
	objects *store.FileObjectStore
	idx     *index.Manager
	refMgr  *refs.RefManager
	graph   *commits.Manager
	branch  *branch.Manager
}

// findRepository locates the enclosing repository starting from the
// current directory and wires the managers around it.
func findRepository() (*services, error) {
	repo, err := repository.FindFromCwd(logger.Default)
	if err != nil {
		return nil, err
	}

	objectStore := store.NewFileObjectStore(repo.Control(), logger.Default)
	idx := index.NewManager(repo.Root(), objectStore, logger.Default)
	refMgr := refs.NewRefManager(repo.Control())
	graph := commits.NewManager(repo, objectStore, idx, refMgr, logger.Default)
	branchMgr := branch.NewManager(refMgr, objectStore, graph, idx, logger.Default)

	return &services{
		repo:    repo,
		objects: objectStore,
		idx:     idx,
		refMgr:  refMgr,
		graph:   graph,
		branch:  branchMgr,
	}, nil
}
