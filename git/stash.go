// filepath: git_shortcuts/git/stash.go
package git

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// StashEntry is one parsed line of `git stash list` output.
type StashEntry struct {
	Index   int
	Branch  string
	Message string
}

// Ref returns the stash reference for the entry, e.g. "stash@{1}".
func (e StashEntry) Ref() string {
	return fmt.Sprintf("stash@{%d}", e.Index)
}

// Format of a stash line: stash@{0}: On branch: message
var stashLineRe = regexp.MustCompile(`^stash@\{(\d+)\}: On ([^:]+): (.*)$`)

// ParseStashList parses the textual output of `git stash list` into
// structured entries. Lines that do not match the expected format
// (including empty lines) are skipped.
func ParseStashList(output string) []StashEntry {
	var entries []StashEntry
	for _, line := range strings.Split(output, "\n") {
		matches := stashLineRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if matches == nil {
			continue
		}
		index, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		entries = append(entries, StashEntry{
			Index:   index,
			Branch:  matches[2],
			Message: matches[3],
		})
	}
	return entries
}

// FindStash returns the first entry whose originating branch equals the
// given branch and whose message equals the given name.
func FindStash(entries []StashEntry, branch string, name string) (StashEntry, bool) {
	for _, entry := range entries {
		if entry.Branch == branch && entry.Message == name {
			return entry, true
		}
	}
	return StashEntry{}, false
}

// StashPushArgs builds the argument vector that pushes a named stash
// including untracked files.
func StashPushArgs(name string) []string {
	return []string{"stash", "push", "--include-untracked", "-m", name}
}

// StashPopArgs builds the argument vector that pops a stash. An entry
// reference pops that specific stash; an empty ref pops the most recent.
func StashPopArgs(ref string) []string {
	if ref == "" {
		return []string{"stash", "pop"}
	}
	return []string{"stash", "pop", ref}
}
