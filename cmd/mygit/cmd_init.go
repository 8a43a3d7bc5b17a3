package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/pkg/common/logger"
	"github.com/mygit-vcs/mygit/pkg/repository"
	"github.com/mygit-vcs/mygit/pkg/repository/vcpath"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new repository",
		Long: `Initialize a new repository in the current directory or specified path.
This creates a .mygit directory with all necessary subdirectories and files.
Running init in an existing repository is safe and leaves it untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			root, err := vcpath.NewRepositoryPath(absPath)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			if _, err := repository.Init(root, logger.Default); err != nil {
				return fmt.Errorf("failed to initialize repository: %w", err)
			}

			fmt.Printf("Initialized empty repository in %s\n", filepath.Join(absPath, vcpath.ControlDir))
			return nil
		},
	}

	return cmd
}
