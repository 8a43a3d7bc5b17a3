package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [commit1] [commit2]",
		Short: "Compare two commits",
		Long: `Compare two commits. Missing arguments default to the current
branch tip. Prints a summary of the two endpoints.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := findRepository()
			if err != nil {
				return err
			}

			var commit1, commit2 string
			if len(args) > 0 {
				commit1 = args[0]
			}
			if len(args) > 1 {
				commit2 = args[1]
			}

			out, err := svc.branch.Diff(commit1, commit2)
			if err != nil {
				return fmt.Errorf("failed to diff: %w", err)
			}

			fmt.Print(out)
			return nil
		},
	}

	return cmd
}
