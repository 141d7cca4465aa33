package cmd

import (
	"git_shortcuts/git"

	"github.com/spf13/cobra"
)

// branchesCmd represents the my-branches command
var branchesCmd = &cobra.Command{
	Use:   "my-branches",
	Short: "List local branches sorted by last commit date",
	Long: `List local branches sorted by last commit date, newest first.

Each line carries the current-HEAD marker, the branch name, the author
of the last commit and its relative date.`,
	Run: runBranchesCmd,
}

// runBranchesCmd is the main function for the my-branches command
func runBranchesCmd(cmd *cobra.Command, args []string) {
	runGit(git.BranchListArgs()...)
}
