package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/cmd/ui"
)

func newCommitCmd() *cobra.Command {
	var message string
	var author string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record changes to the repository",
		Long: `Create a new commit from the staged entries.
The commit snapshots the index as a tree and links to the current
branch tip as its parent. An empty index produces no commit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return fmt.Errorf("commit message required (use -m flag)")
			}

			svc, err := findRepository()
			if err != nil {
				return err
			}

			hash, ok, err := svc.graph.Commit(message, author)
			if err != nil {
				return fmt.Errorf("failed to create commit: %w", err)
			}
			if !ok {
				fmt.Println(ui.WarningMessage("nothing to commit"))
				return nil
			}

			fmt.Printf("Committed %s: %s\n", hash.Short(), message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().StringVar(&author, "author", "", "Override the commit author name")

	return cmd
}
