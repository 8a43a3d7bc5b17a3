package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/cmd/ui"
)

func newBranchCmd() *cobra.Command {
	var deleteFlag bool
	var forceFlag bool
	var verboseFlag bool
	var startPoint string

	cmd := &cobra.Command{
		Use:   "branch [branch-name]",
		Short: "List, create, or delete branches",
		Long: `List, create, or delete branches.

With no arguments, lists all branches. The current branch is marked
with "*". With a name argument, creates a new branch at the current
commit (or at --start-point).

Examples:
  # List all branches
  mygit branch

  # Create a new branch
  mygit branch feature-name

  # Create a branch from a specific commit
  mygit branch feature-name --start-point=abc123...

  # Delete a merged branch
  mygit branch -d feature-name

  # Force delete a branch
  mygit branch -d -f feature-name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := findRepository()
			if err != nil {
				return err
			}

			if deleteFlag {
				if len(args) == 0 {
					return fmt.Errorf("branch name required for deletion")
				}
				name := args[0]

				deleted, err := svc.branch.Delete(name, forceFlag)
				if err != nil {
					return fmt.Errorf("failed to delete branch: %w", err)
				}
				if !deleted {
					fmt.Println(ui.WarningMessage(
						fmt.Sprintf("branch %s is not merged; use -f to delete anyway", name)))
					return nil
				}

				fmt.Printf("Deleted branch %s\n", name)
				return nil
			}

			if len(args) == 0 {
				infos, err := svc.branch.List(context.Background())
				if err != nil {
					return fmt.Errorf("failed to list branches: %w", err)
				}

				if len(infos) == 0 {
					fmt.Println("No branches found")
					return nil
				}

				for _, info := range infos {
					if verboseFlag {
						marker := "  "
						if info.IsCurrent {
							marker = "* "
						}
						fmt.Printf("%s%-20s %s %s\n", marker, info.Name, info.Hash.Short(), info.Summary)
					} else {
						fmt.Println(ui.BranchLine(info.Name, info.IsCurrent))
					}
				}

				return nil
			}

			name := args[0]
			if err := svc.branch.Create(name, startPoint); err != nil {
				return fmt.Errorf("failed to create branch: %w", err)
			}

			fmt.Printf("Created branch %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&deleteFlag, "delete", "d", false, "Delete a branch")
	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Force deletion of an unmerged branch")
	cmd.Flags().BoolVar(&verboseFlag, "show-commits", false, "Show tip commit info for each branch")
	cmd.Flags().StringVar(&startPoint, "start-point", "", "Create the branch at this commit")

	return cmd
}
