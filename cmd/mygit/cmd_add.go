package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/cmd/ui"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [file...]",
		Short: "Add file contents to the staging area",
		Long: `Add file contents to the staging area (index).
Each file is stored as a blob object and recorded for the next commit.
Adding an already staged file replaces its entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := findRepository()
			if err != nil {
				return err
			}

			for _, path := range args {
				entry, err := svc.idx.Add(path)
				if err != nil {
					return fmt.Errorf("failed to add %s: %w", path, err)
				}
				fmt.Printf("%s %s\n", ui.Green("added:"), entry.Path)
			}

			return nil
		},
	}

	return cmd
}
