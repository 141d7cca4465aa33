// filepath: git_shortcuts/cmd/pullrequest.go
package cmd

import (
	"git_shortcuts/log"
	"git_shortcuts/run"

	"github.com/spf13/cobra"
)

var (
	prTitle       string
	prBase        string
	prDescription string
	prWeb         bool
)

// pullRequestCmd represents the pull-request command
var pullRequestCmd = &cobra.Command{
	Use:   "pull-request",
	Short: "Create a pull request for the current branch",
	Long: `Create a pull request for the current branch via the GitHub CLI.

The title and base branch are required; the base may also come from the
pull_request.base key of the config file. The description is optional
and only added to the invocation when non-empty.

Example:
  gsh pr -t "Fix login redirect" -b main
  gsh pr -t "Fix login redirect" -b main -d "Redirect loop on expired sessions" -w`,
	Run: runPullRequestCmd,
}

// initPullRequestCmd initializes the pull-request command with its flags
func initPullRequestCmd() {
	pullRequestCmd.Flags().StringVarP(&prTitle, "title", "t", "", "Pull request title (required)")
	pullRequestCmd.Flags().StringVarP(&prBase, "base", "b", "", "Base branch to merge into")
	pullRequestCmd.Flags().StringVarP(&prDescription, "description", "d", "", "Pull request description")
	pullRequestCmd.Flags().BoolVarP(&prWeb, "web", "w", false, "Open the new pull request in the browser")
}

// runPullRequestCmd is the main function for the pull-request command
func runPullRequestCmd(cmd *cobra.Command, args []string) {
	if prTitle == "" {
		log.PrintError(log.ErrMissingArgument, "pull-request requires a title (--title)", nil)
	}

	base := prBase
	if base == "" {
		base = cfg.PullRequest.Base
	}
	if base == "" {
		log.PrintError(log.ErrMissingArgument, "pull-request requires a base branch (--base)", nil)
	}

	if _, err := run.Command("gh", pullRequestArgs(prTitle, base, prDescription, prWeb)...); err != nil {
		log.PrintError(log.ErrGhCommandFailed, "gh command failed", err)
	}
}

// pullRequestArgs builds the gh invocation that creates the pull request.
// The description becomes its own message segment only when non-empty.
func pullRequestArgs(title string, base string, description string, web bool) []string {
	prArgs := []string{"pr", "create", "--base", base, "--title", title}
	if description != "" {
		prArgs = append(prArgs, "--body", description)
	}
	if web {
		prArgs = append(prArgs, "--web")
	}
	return prArgs
}
