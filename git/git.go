// filepath: git_shortcuts/git/git.go
package git

import (
	"git_shortcuts/run"
)

// Run runs a git command in the current working directory, echoing its
// output to the user and returning the captured text.
func Run(args ...string) (string, error) {
	return run.Command("git", args...)
}

// RunQuiet runs a git command without echoing its output. Used when the
// output is parsed rather than shown (current branch, stash list).
func RunQuiet(args ...string) (string, error) {
	return run.Quiet("git", args...)
}
