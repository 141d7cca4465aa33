package cmd

import (
	"github.com/spf13/cobra"
)

// helpCmd replaces cobra's default help command so the alias table can
// attach a short alias to it
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Run:   runHelpCmd,
}

// runHelpCmd prints the usage text for the named command, or the root
// usage when no command is given
func runHelpCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		rootCmd.Help()
		return
	}

	target, _, err := rootCmd.Find(args)
	if err != nil || target == rootCmd {
		runRootCmd(cmd, args)
		return
	}
	target.Help()
}
