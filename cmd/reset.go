package cmd

import (
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Soft-reset the last commit, keeping its changes staged",
	Run:   runResetCmd,
}

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove untracked files and directories",
	Run:   runCleanCmd,
}

// runResetCmd is the main function for the reset command
func runResetCmd(cmd *cobra.Command, args []string) {
	runGit("reset", "--soft", "HEAD~1")
}

// runCleanCmd is the main function for the clean command
func runCleanCmd(cmd *cobra.Command, args []string) {
	runGit("clean", "-fd")
}
