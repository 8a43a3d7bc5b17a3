package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/cmd/ui"
	"github.com/mygit-vcs/mygit/pkg/commits"
)

func newLogCmd() *cobra.Command {
	var limit int
	var useTable bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history",
		Long: `Show the commit history of the current branch, newest first.
The walk follows parent links from the branch tip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := findRepository()
			if err != nil {
				return err
			}

			history, err := svc.graph.History(limit)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}

			if len(history) == 0 {
				fmt.Println(ui.WarningMessage("No commits yet"))
				return nil
			}

			if useTable {
				displayHistoryAsTable(history)
			} else {
				displayHistory(history)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Limit the number of commits to show")
	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")

	return cmd
}

func displayHistory(history []commits.LogEntry) {
	for _, entry := range history {
		c := entry.Commit
		fmt.Printf("commit %s\n", ui.Yellow(entry.Hash.String()))
		fmt.Printf("Author: %s <%s>\n", c.Author.Name, c.Author.Email)
		fmt.Printf("Date:   %s\n", c.Author.When.UTC().Format(time.RFC1123))
		fmt.Printf("\n    %s\n\n", c.Summary())
	}
}

func displayHistoryAsTable(history []commits.LogEntry) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Commit", "Author", "Date", "Message")

	for _, entry := range history {
		c := entry.Commit
		message := c.Summary()
		if len(message) > 50 {
			message = message[:47] + "..."
		}

		table.Append(
			ui.Yellow(entry.Hash.Short()),
			ui.Cyan(c.Author.Name),
			ui.Magenta(c.Author.When.UTC().Format("2006-01-02 15:04")),
			message,
		)
	}

	table.Render()
}
