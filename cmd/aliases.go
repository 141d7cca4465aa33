// filepath: git_shortcuts/cmd/aliases.go
package cmd

import (
	"fmt"
	"strings"
)

// builtinAliases maps each canonical command name to its short aliases.
// The table is fixed at compile time; Initialize validates that no two
// canonical commands share an alias before any command can run.
var builtinAliases = map[string][]string{
	"help":         {"h"},
	"my-branches":  {"mb"},
	"pull-request": {"pr"},
	"stash-list":   {"sl"},
	"stash-named":  {"sn"},
	"stash-pop":    {"sp"},
	"checkout":     {"co"},
	"cherry-pick":  {"cp"},
	"status":       {"st"},
	"commit":       {"cm"},
	"merge":        {"mg"},
	"pull":         {"pl"},
	"add":          {"a"},
	"add-all":      {"aa"},
	"reset":        {"rs"},
	"hard-reset":   {"hr"},
	"clean":        {"cl"},
	"push":         {"ps"},
}

// canonicalOrder fixes the display order of the alias listing.
var canonicalOrder = []string{
	"help",
	"status",
	"my-branches",
	"checkout",
	"add",
	"add-all",
	"commit",
	"push",
	"pull",
	"merge",
	"cherry-pick",
	"pull-request",
	"stash-list",
	"stash-named",
	"stash-pop",
	"reset",
	"hard-reset",
	"clean",
}

// effectiveAliases merges user-configured aliases into the builtin table.
// User aliases extend a canonical command's alias set, never replace it.
// An alias bound to an unknown command or to more than one command is an error.
func effectiveAliases(userAliases map[string][]string) (map[string][]string, error) {
	table := make(map[string][]string, len(builtinAliases))
	for name, aliases := range builtinAliases {
		table[name] = append([]string(nil), aliases...)
	}

	for name, aliases := range userAliases {
		if _, ok := table[name]; !ok {
			return nil, fmt.Errorf("config aliases refer to unknown command %q", name)
		}
		table[name] = append(table[name], aliases...)
	}

	if err := validateAliases(table); err != nil {
		return nil, err
	}
	return table, nil
}

// validateAliases reports the first token bound to more than one canonical
// command. Canonical names themselves count as tokens: an alias may not
// shadow another command's name.
func validateAliases(table map[string][]string) error {
	owner := make(map[string]string)
	for _, name := range canonicalOrder {
		tokens := append([]string{name}, table[name]...)
		for _, token := range tokens {
			if previous, taken := owner[token]; taken && previous != name {
				return fmt.Errorf("alias %q is bound to both %q and %q", token, previous, name)
			}
			owner[token] = name
		}
	}
	return nil
}

// resolveAlias returns the canonical command owning the given token,
// by exact case-sensitive match against names and aliases.
func resolveAlias(table map[string][]string, token string) (string, bool) {
	for _, name := range canonicalOrder {
		if token == name {
			return name, true
		}
		for _, alias := range table[name] {
			if token == alias {
				return name, true
			}
		}
	}
	return "", false
}

// formatAliasListing renders the full alias table, shown whenever an
// input token matches no known command.
func formatAliasListing(table map[string][]string) string {
	var b strings.Builder
	b.WriteString("Known commands and their aliases:\n")
	for _, name := range canonicalOrder {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", name, strings.Join(table[name], ", ")))
	}
	return b.String()
}
