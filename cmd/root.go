// filepath: git_shortcuts/cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"os"

	"git_shortcuts/config"
	"git_shortcuts/env"
	"git_shortcuts/git"
	"git_shortcuts/log"

	"github.com/spf13/cobra"
)

// cfg holds the optional user configuration, loaded once in Initialize.
var cfg *config.Configuration

// aliasTable is the effective alias table (builtin plus user config),
// fixed in Initialize.
var aliasTable map[string][]string

// exit terminates the process; tests swap it to observe the status.
var exit = os.Exit

// rootCmd represents the base command when called without any subcommands.
// ArbitraryArgs lets tokens that match no subcommand reach runRootCmd,
// which shows the full alias table.
var rootCmd = &cobra.Command{
	Use:   "gsh",
	Short: "Shortcut aliases for everyday git and GitHub workflows",
	Long: `A CLI tool that maps short aliases to common git and GitHub operations.

Each shortcut builds the full git (or gh) invocation for you and streams
the tool's output. Run without arguments to see the usage text, or pass
an unknown token to see the full alias table.`,
	Args: cobra.ArbitraryArgs,
	Run:  runRootCmd,
}

// Initialize loads the user configuration, validates the alias table and
// adds all child commands to the root command
func Initialize() {
	c, err := config.ReadConfig(config.DefaultPath())
	if err != nil {
		code := log.ErrConfigReadFailed
		if errors.Is(err, config.ErrParse) {
			code = log.ErrConfigParseFailed
		}
		log.PrintError(code, "Error loading config", err)
	}

	if err := initializeWith(c); err != nil {
		log.PrintError(log.ErrConfigBadAlias, "Invalid alias configuration", err)
	}
}

// initializeWith builds the command tree for the given configuration.
// Called exactly once per process; tests call it with the defaults.
func initializeWith(c *config.Configuration) error {
	cfg = c

	table, err := effectiveAliases(c.Aliases)
	if err != nil {
		return err
	}
	aliasTable = table

	// Commands with flags of their own
	initCheckoutCmd()
	initPullRequestCmd()

	commands := map[string]*cobra.Command{
		"help":         helpCmd,
		"my-branches":  branchesCmd,
		"pull-request": pullRequestCmd,
		"stash-list":   stashListCmd,
		"stash-named":  stashNamedCmd,
		"stash-pop":    stashPopCmd,
		"checkout":     checkoutCmd,
		"cherry-pick":  cherryPickCmd,
		"status":       statusCmd,
		"commit":       commitCmd,
		"merge":        mergeCmd,
		"pull":         pullCmd,
		"add":          addCmd,
		"add-all":      addAllCmd,
		"reset":        resetCmd,
		"hard-reset":   hardResetCmd,
		"clean":        cleanCmd,
		"push":         pushCmd,
	}

	// Add commands to root command with their aliases from the table
	for _, name := range canonicalOrder {
		command := commands[name]
		command.Aliases = aliasTable[name]
		if name == "help" {
			rootCmd.SetHelpCommand(command)
			continue
		}
		rootCmd.AddCommand(command)
	}
	return nil
}

// runRootCmd handles the bare invocation and any token that matches no
// known command or alias
func runRootCmd(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		cmd.Help()
		return
	}

	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, log.FormatError(log.ErrUnknownCommand, fmt.Sprintf("unknown command %q", args[0]), nil))
	fmt.Fprint(out, formatAliasListing(aliasTable))
	exit(1)
}

// Execute runs the environment preflight and then the root command
func Execute() {
	warnings, err := env.Check(env.Tools)
	for _, warning := range warnings {
		log.PrintWarning(warning)
	}
	if err != nil {
		log.PrintError(log.ErrToolMissing, "Environment check failed", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runGit runs a git command, echoing its output; a failure terminates
// the invocation
func runGit(args ...string) {
	if _, err := git.Run(args...); err != nil {
		log.PrintError(log.ErrGitCommandFailed, "git command failed", err)
	}
}

// mustCurrentBranch returns the current branch or terminates the invocation
func mustCurrentBranch() string {
	branch, err := git.CurrentBranch()
	if err != nil {
		log.PrintError(log.ErrGitNoBranch, "Error getting current branch", err)
	}
	return branch
}
