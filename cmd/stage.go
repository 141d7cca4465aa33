package cmd

import (
	"git_shortcuts/log"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Stage the given paths or globs",
	Run:   runAddCmd,
}

// addAllCmd represents the add-all command
var addAllCmd = &cobra.Command{
	Use:   "add-all",
	Short: "Stage all changes",
	Run:   runAddAllCmd,
}

// runAddCmd is the main function for the add command
func runAddCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		log.PrintError(log.ErrMissingArgument, "add requires at least one path; use add-all to stage everything", nil)
	}
	runGit(append([]string{"add"}, args...)...)
}

// runAddAllCmd is the main function for the add-all command
func runAddAllCmd(cmd *cobra.Command, args []string) {
	runGit("add", "-A")
}
