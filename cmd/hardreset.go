// filepath: git_shortcuts/cmd/hardreset.go
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git_shortcuts/log"

	"github.com/spf13/cobra"
)

// hardResetInput is the interactive input source for the confirmation
// prompt. Tests swap it for a canned reader.
var hardResetInput io.Reader = os.Stdin

// hardResetCmd represents the hard-reset command
var hardResetCmd = &cobra.Command{
	Use:   "hard-reset",
	Short: "Throw away all local work and reset to the remote branch",
	Long: `Reset the current branch to its remote-tracking counterpart.

This discards staged and unstaged changes, removes untracked files and
directories, fetches, and hard-resets to <remote>/<current-branch>.
A confirmation prompt is shown before anything destructive runs; only
an answer of y (case-insensitive) proceeds.`,
	Run: runHardResetCmd,
}

// runHardResetCmd is the main function for the hard-reset command
func runHardResetCmd(cmd *cobra.Command, args []string) {
	branch := mustCurrentBranch()

	if !confirmHardReset(hardResetInput, os.Stdout, branch, cfg.Remote) {
		log.PrintInfo("Aborted. Nothing was changed.")
		return
	}

	runGit("reset")
	runGit("checkout", ".")
	runGit("clean", "-fd")
	runGit("fetch")
	runGit("reset", "--hard", cfg.Remote+"/"+branch)
}

// confirmHardReset prompts and waits for a single line of input. Only an
// exact case-insensitive "y" confirms; anything else, including "yes",
// aborts.
func confirmHardReset(in io.Reader, out io.Writer, branch string, remote string) bool {
	fmt.Fprintf(out, "Hard reset %s to %s/%s and discard all local changes? [y/N] ", branch, remote, branch)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
