// filepath: git_shortcuts/cmd/remote.go
package cmd

import (
	"github.com/spf13/cobra"
)

// pullCmd represents the pull command
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the current branch from its upstream",
	Run:   runPullCmd,
}

// pushCmd represents the push command
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the current branch, setting its upstream",
	Long: `Push the current branch to the remote, setting the upstream to
<remote>/<current-branch> so later pulls and pushes need no arguments.
The remote defaults to origin and can be changed in the config file.`,
	Run: runPushCmd,
}

// runPullCmd is the main function for the pull command
func runPullCmd(cmd *cobra.Command, args []string) {
	runGit("pull")
}

// runPushCmd is the main function for the push command
func runPushCmd(cmd *cobra.Command, args []string) {
	branch := mustCurrentBranch()
	runGit("push", "--set-upstream", cfg.Remote, branch)
}
