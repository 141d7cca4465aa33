package cmd

import (
	"git_shortcuts/log"

	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <ref>",
	Short: "Merge the given ref into the current branch",
	Run:   runMergeCmd,
}

// cherryPickCmd represents the cherry-pick command
var cherryPickCmd = &cobra.Command{
	Use:   "cherry-pick <commit>...",
	Short: "Apply the given commits in order",
	Run:   runCherryPickCmd,
}

// runMergeCmd is the main function for the merge command
func runMergeCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.PrintError(log.ErrMissingArgument, "merge requires a source ref", nil)
	}
	runGit("merge", args[0])
}

// runCherryPickCmd is the main function for the cherry-pick command
func runCherryPickCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.PrintError(log.ErrMissingArgument, "cherry-pick requires at least one commit reference", nil)
	}
	runGit(append([]string{"cherry-pick"}, args...)...)
}
