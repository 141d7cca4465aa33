package cmd

import (
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the working tree status",
	Run:   runStatusCmd,
}

// runStatusCmd is the main function for the status command
func runStatusCmd(cmd *cobra.Command, args []string) {
	runGit("status")
}
