package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/cmd/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the repository status",
		Long: `Show the current branch, the tip commit, and the staged entries.
The working directory itself is not scanned; only the index is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := findRepository()
			if err != nil {
				return err
			}

			branchName := svc.refMgr.CurrentBranch()
			fmt.Printf("%s %s\n", ui.Cyan(ui.IconBranch), ui.Blue("On branch "+branchName))

			tip, ok, err := svc.graph.CurrentCommit()
			if err != nil {
				return fmt.Errorf("failed to read current commit: %w", err)
			}
			if ok {
				fmt.Printf("%s %s\n", ui.Yellow(ui.IconCommit), ui.Dim("At commit "+tip.Short()))
			} else {
				fmt.Println(ui.Dim("No commits yet"))
			}

			entries, err := svc.idx.Read()
			if err != nil {
				return fmt.Errorf("failed to read index: %w", err)
			}

			fmt.Println()
			if len(entries) == 0 {
				fmt.Println(ui.Dim("  nothing staged for commit"))
				return nil
			}

			fmt.Println(ui.Section("Changes staged for commit:"))
			for _, entry := range entries {
				fmt.Println(ui.FormatStaged(entry.Path))
			}

			return nil
		},
	}

	return cmd
}
