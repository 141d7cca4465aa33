package cmd

import (
	"strings"

	"git_shortcuts/log"

	"github.com/spf13/cobra"
)

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:   "commit <message>",
	Short: "Commit staged changes with the given message",
	Run:   runCommitCmd,
}

// runCommitCmd is the main function for the commit command
func runCommitCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.PrintError(log.ErrMissingArgument, "commit requires a message", nil)
	}
	// Unquoted multi-word messages arrive as separate tokens
	runGit("commit", "-m", strings.Join(args, " "))
}
