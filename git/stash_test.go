package git

import (
	"testing"
)

func TestParseStashList(t *testing.T) {
	output := "stash@{0}: On main: wip\n" +
		"stash@{1}: On feature: wip2\n" +
		"\n" +
		"not a stash line\n" +
		"stash@{2}: WIP on main: 1a2b3c4 some commit\n"

	entries := ParseStashList(output)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}

	if entries[0].Index != 0 || entries[0].Branch != "main" || entries[0].Message != "wip" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Index != 1 || entries[1].Branch != "feature" || entries[1].Message != "wip2" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestParseStashListEmpty(t *testing.T) {
	if entries := ParseStashList(""); len(entries) != 0 {
		t.Errorf("expected no entries for empty output, got %+v", entries)
	}
	if entries := ParseStashList("\n\n"); len(entries) != 0 {
		t.Errorf("expected no entries for blank output, got %+v", entries)
	}
}

func TestParseStashListMessageWithColon(t *testing.T) {
	entries := ParseStashList("stash@{3}: On fix/login: redirect: part two\n")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Branch != "fix/login" {
		t.Errorf("expected branch fix/login, got %q", entries[0].Branch)
	}
	if entries[0].Message != "redirect: part two" {
		t.Errorf("expected message to keep its colon, got %q", entries[0].Message)
	}
}

func TestFindStash(t *testing.T) {
	entries := ParseStashList("stash@{0}: On main: wip\nstash@{1}: On feature: wip2\n")

	tests := []struct {
		branch    string
		name      string
		wantIndex int
		wantFound bool
	}{
		{"feature", "wip2", 1, true},
		{"main", "wip", 0, true},
		{"feature", "wip", 0, false},
		{"main", "wip2", 0, false},
		{"develop", "wip", 0, false},
	}

	for _, tc := range tests {
		entry, found := FindStash(entries, tc.branch, tc.name)
		if found != tc.wantFound {
			t.Errorf("FindStash(%q, %q): found=%v, want %v", tc.branch, tc.name, found, tc.wantFound)
			continue
		}
		if found && entry.Index != tc.wantIndex {
			t.Errorf("FindStash(%q, %q): index=%d, want %d", tc.branch, tc.name, entry.Index, tc.wantIndex)
		}
	}
}

func TestStashPopArgs(t *testing.T) {
	got := StashPopArgs("")
	if len(got) != 2 || got[0] != "stash" || got[1] != "pop" {
		t.Errorf("expected plain pop for empty ref, got %v", got)
	}

	got = StashPopArgs("stash@{1}")
	if len(got) != 3 || got[2] != "stash@{1}" {
		t.Errorf("expected targeted pop, got %v", got)
	}
}

func TestStashPushArgs(t *testing.T) {
	got := StashPushArgs("wip on login")
	want := []string{"stash", "push", "--include-untracked", "-m", "wip on login"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStashEntryRef(t *testing.T) {
	entry := StashEntry{Index: 4, Branch: "main", Message: "wip"}
	if entry.Ref() != "stash@{4}" {
		t.Errorf("expected stash@{4}, got %q", entry.Ref())
	}
}
