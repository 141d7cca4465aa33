// filepath: git_shortcuts/env/env.go
package env

import (
	"fmt"

	"git_shortcuts/run"
)

// Tool describes an external executable the shortcuts delegate to.
type Tool struct {
	Name        string
	InstallHint string
	Required    bool
}

// Tools lists every external executable used by the command handlers.
// git is required for everything; gh is only needed by pull-request,
// so its absence is a warning rather than a hard stop.
var Tools = []Tool{
	{
		Name:        "git",
		InstallHint: "install git from https://git-scm.com/downloads",
		Required:    true,
	},
	{
		Name:        "gh",
		InstallHint: "install the GitHub CLI from https://cli.github.com (needed for pull-request)",
		Required:    false,
	},
}

// Check verifies that every required tool resolves on the search path.
// It returns an error naming the first missing required tool with its
// install hint, and a list of warnings for missing optional tools.
func Check(tools []Tool) ([]string, error) {
	var warnings []string
	for _, tool := range tools {
		if run.LookPath(tool.Name) {
			continue
		}
		if tool.Required {
			return warnings, fmt.Errorf("required tool %q not found: %s", tool.Name, tool.InstallHint)
		}
		warnings = append(warnings, fmt.Sprintf("optional tool %q not found: %s", tool.Name, tool.InstallHint))
	}
	return warnings, nil
}
