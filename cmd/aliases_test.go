package cmd

import (
	"strings"
	"testing"
)

func TestBuiltinAliasTableIsValid(t *testing.T) {
	if len(builtinAliases) != len(canonicalOrder) {
		t.Fatalf("alias table has %d commands but display order lists %d",
			len(builtinAliases), len(canonicalOrder))
	}
	for _, name := range canonicalOrder {
		if _, ok := builtinAliases[name]; !ok {
			t.Errorf("display order lists %q but the alias table does not define it", name)
		}
	}

	if err := validateAliases(builtinAliases); err != nil {
		t.Fatalf("builtin alias table is invalid: %v", err)
	}
}

func TestEveryAliasResolvesToItsOwnCommand(t *testing.T) {
	for name, aliases := range builtinAliases {
		tokens := append([]string{name}, aliases...)
		for _, token := range tokens {
			resolved, ok := resolveAlias(builtinAliases, token)
			if !ok {
				t.Errorf("token %q did not resolve", token)
				continue
			}
			if resolved != name {
				t.Errorf("token %q resolved to %q, want %q", token, resolved, name)
			}
		}
	}
}

func TestResolveAliasUnknownToken(t *testing.T) {
	for _, token := range []string{"xyz", "", "CO", "Co", "checkout "} {
		if resolved, ok := resolveAlias(builtinAliases, token); ok {
			t.Errorf("token %q unexpectedly resolved to %q", token, resolved)
		}
	}
}

func TestEffectiveAliasesMergesUserAliases(t *testing.T) {
	table, err := effectiveAliases(map[string][]string{"checkout": {"sw"}})
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	resolved, ok := resolveAlias(table, "sw")
	if !ok || resolved != "checkout" {
		t.Errorf("user alias sw resolved to (%q, %v), want checkout", resolved, ok)
	}

	// Builtin aliases survive the merge
	resolved, ok = resolveAlias(table, "co")
	if !ok || resolved != "checkout" {
		t.Errorf("builtin alias co resolved to (%q, %v), want checkout", resolved, ok)
	}
}

func TestEffectiveAliasesRejectsClashes(t *testing.T) {
	if _, err := effectiveAliases(map[string][]string{"checkout": {"st"}}); err == nil {
		t.Error("expected an error for a user alias clashing with a builtin alias")
	}
	if _, err := effectiveAliases(map[string][]string{"checkout": {"push"}}); err == nil {
		t.Error("expected an error for a user alias shadowing a command name")
	}
	if _, err := effectiveAliases(map[string][]string{"teleport": {"tp"}}); err == nil {
		t.Error("expected an error for an unknown canonical command")
	}
}

func TestEffectiveAliasesDoesNotMutateBuiltins(t *testing.T) {
	before := len(builtinAliases["checkout"])
	if _, err := effectiveAliases(map[string][]string{"checkout": {"sw"}}); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if len(builtinAliases["checkout"]) != before {
		t.Error("merging user aliases mutated the builtin table")
	}
}

func TestFormatAliasListing(t *testing.T) {
	listing := formatAliasListing(builtinAliases)
	for _, name := range canonicalOrder {
		if !strings.Contains(listing, name) {
			t.Errorf("listing is missing command %q", name)
		}
		for _, alias := range builtinAliases[name] {
			if !strings.Contains(listing, alias) {
				t.Errorf("listing is missing alias %q of %q", alias, name)
			}
		}
	}
}
