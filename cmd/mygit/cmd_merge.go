package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/cmd/ui"
)

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge a branch into the current branch",
		Long: `Merge the named branch into the current branch.
Only fast-forward merges are supported: the current branch ref is
advanced when its tip is an ancestor of the target. Divergent
histories are refused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := findRepository()
			if err != nil {
				return err
			}

			name := args[0]
			result, err := svc.branch.Merge(name)
			if err != nil {
				return fmt.Errorf("failed to merge: %w", err)
			}

			if result.UpToDate {
				fmt.Println(ui.InfoMessage("Already up to date"))
				return nil
			}

			fmt.Println(ui.SuccessMessage("Fast-forwarded to", result.NewHash.Short()))
			return nil
		},
	}

	return cmd
}
