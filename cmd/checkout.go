// filepath: git_shortcuts/cmd/checkout.go
package cmd

import (
	"git_shortcuts/git"
	"git_shortcuts/log"

	"github.com/spf13/cobra"
)

// checkoutCmd represents the checkout command
var checkoutCmd = &cobra.Command{
	Use:   "checkout <branch>",
	Short: "Check out a branch, creating it off the current branch when new",
	Long: `Check out the given branch or ref.

If the branch does not exist locally yet, it is created as a new branch
based on the branch you are currently on. A literal -b flag is accepted
and ignored, so git muscle memory keeps working:

  gsh co feature/login
  gsh co -b feature/login`,
	Run: runCheckoutCmd,
}

// initCheckoutCmd initializes the checkout command with its flags
func initCheckoutCmd() {
	checkoutCmd.Flags().BoolP("branch", "b", false, "Accepted and ignored; new branches are created automatically")
}

// runCheckoutCmd is the main function for the checkout command
func runCheckoutCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.PrintError(log.ErrMissingArgument, "checkout requires a branch name", nil)
	}
	branch := args[0]

	exists, err := git.BranchExists(branch)
	if err != nil {
		log.PrintError(log.ErrGitCommandFailed, "Error checking whether the branch exists", err)
	}

	runGit(git.CheckoutArgs(branch, exists)...)
}
