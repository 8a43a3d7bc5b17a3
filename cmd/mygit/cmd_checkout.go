package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	var createFlag bool

	cmd := &cobra.Command{
		Use:   "checkout <branch>",
		Short: "Switch to a branch",
		Long: `Switch HEAD to the named branch. With -b, the branch is created
at the current commit first. Working files are left untouched; only
HEAD moves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := findRepository()
			if err != nil {
				return err
			}

			name := args[0]
			if err := svc.branch.Checkout(name, createFlag); err != nil {
				return fmt.Errorf("failed to checkout branch: %w", err)
			}

			fmt.Printf("Switched to branch %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&createFlag, "create", "b", false, "Create the branch before switching")

	return cmd
}
