// filepath: git_shortcuts/git/branch.go
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// CurrentBranch gets the current branch name of the repository
func CurrentBranch() (string, error) {
	output, err := RunQuiet("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %v", err)
	}
	return strings.TrimSpace(output), nil
}

// BranchExists checks if a branch exists locally
func BranchExists(branch string) (bool, error) {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	err := cmd.Run()

	if err != nil {
		// Exit code 1 means branch doesn't exist, which is not an error for our purposes
		if exitError, ok := err.(*exec.ExitError); ok && exitError.ExitCode() == 1 {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// CheckoutArgs builds the argument vector for checking out a branch.
// A branch that does not yet exist locally is created off the branch
// active at call time; an existing branch gets a plain checkout.
func CheckoutArgs(branch string, exists bool) []string {
	if exists {
		return []string{"checkout", branch}
	}
	return []string{"checkout", "-b", branch}
}

// BranchListArgs builds the argument vector that lists local branches
// sorted by last commit date, annotated with the current-HEAD marker,
// author and relative commit date.
func BranchListArgs() []string {
	return []string{
		"branch",
		"--sort=-committerdate",
		"--format=%(HEAD) %(refname:short) | %(authorname) | %(committerdate:relative)",
	}
}
