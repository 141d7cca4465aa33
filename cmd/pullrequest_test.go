package cmd

import (
	"reflect"
	"testing"
)

func TestPullRequestArgs(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		base        string
		description string
		web         bool
		want        []string
	}{
		{
			name:  "title only",
			title: "Fix bug",
			base:  "main",
			want:  []string{"pr", "create", "--base", "main", "--title", "Fix bug"},
		},
		{
			name:        "title and description",
			title:       "Fix bug",
			base:        "main",
			description: "Redirect loop on expired sessions",
			want: []string{"pr", "create", "--base", "main", "--title", "Fix bug",
				"--body", "Redirect loop on expired sessions"},
		},
		{
			name:  "open in browser",
			title: "Fix bug",
			base:  "develop",
			web:   true,
			want:  []string{"pr", "create", "--base", "develop", "--title", "Fix bug", "--web"},
		},
	}

	for _, tc := range tests {
		got := pullRequestArgs(tc.title, tc.base, tc.description, tc.web)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
