package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mygit-vcs/mygit/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "mygit",
		Short:   "mygit - a minimal Git-like version control system",
		Long:    getBanner(),
		Version: fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newDiffCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getBanner() string {
	return `
╔══════════════════════════════════════════════════╗
║                                                  ║
║   ███╗   ███╗██╗   ██╗ ██████╗ ██╗████████╗      ║
║   ████╗ ████║╚██╗ ██╔╝██╔════╝ ██║╚══██╔══╝      ║
║   ██╔████╔██║ ╚████╔╝ ██║  ███╗██║   ██║         ║
║   ██║╚██╔╝██║  ╚██╔╝  ██║   ██║██║   ██║         ║
║   ██║ ╚═╝ ██║   ██║   ╚██████╔╝██║   ██║         ║
║   ╚═╝     ╚═╝   ╚═╝    ╚═════╝ ╚═╝   ╚═╝         ║
║                                                  ║
╚══════════════════════════════════════════════════╝

  A minimal Git-like version control system

  Get started with: mygit init
  Check status with: mygit status
  Need help? Run:   mygit --help

`
}

func setupLogging() {
	level := logger.LevelInfo
	if verbose {
		level = logger.LevelDebug
	} else {
		switch logLevel {
		case "debug":
			level = logger.LevelDebug
		case "info":
			level = logger.LevelInfo
		case "warn":
			level = logger.LevelWarn
		case "error":
			level = logger.LevelError
		}
	}

	format := logger.FormatText
	if logFormat == "json" {
		format = logger.FormatJSON
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}
