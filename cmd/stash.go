// filepath: git_shortcuts/cmd/stash.go
package cmd

import (
	"fmt"
	"strings"

	"git_shortcuts/git"
	"git_shortcuts/log"

	"github.com/spf13/cobra"
)

// stashListCmd represents the stash-list command
var stashListCmd = &cobra.Command{
	Use:   "stash-list",
	Short: "List all stashes",
	Run:   runStashListCmd,
}

// stashNamedCmd represents the stash-named command
var stashNamedCmd = &cobra.Command{
	Use:   "stash-named <name>",
	Short: "Stash all changes, including untracked files, under a name",
	Run:   runStashNamedCmd,
}

// stashPopCmd represents the stash-pop command
var stashPopCmd = &cobra.Command{
	Use:   "stash-pop [name]",
	Short: "Pop the most recent stash, or a named stash of the current branch",
	Long: `Pop a stash.

Without a name the most recent stash (index 0) is popped. With a name,
the stash list is scanned for an entry that was created on the current
branch with that name, and that specific stash is popped.`,
	Run: runStashPopCmd,
}

// runStashListCmd is the main function for the stash-list command
func runStashListCmd(cmd *cobra.Command, args []string) {
	runGit("stash", "list")
}

// runStashNamedCmd is the main function for the stash-named command
func runStashNamedCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.PrintError(log.ErrMissingArgument, "stash-named requires a stash name", nil)
	}
	// Unquoted multi-word names arrive as separate tokens
	runGit(git.StashPushArgs(strings.Join(args, " "))...)
}

// runStashPopCmd is the main function for the stash-pop command
func runStashPopCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runGit(git.StashPopArgs("")...)
		return
	}
	name := strings.Join(args, " ")

	output, err := git.RunQuiet("stash", "list")
	if err != nil {
		log.PrintError(log.ErrGitCommandFailed, "Error listing stashes", err)
	}

	branch := mustCurrentBranch()
	entry, found := git.FindStash(git.ParseStashList(output), branch, name)
	if !found {
		log.PrintError(log.ErrGitStashNotFound,
			fmt.Sprintf("no stash named %q found for branch %s", name, branch), nil)
	}

	runGit(git.StashPopArgs(entry.Ref())...)
}
