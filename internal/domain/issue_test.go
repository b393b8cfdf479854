package domain

import (
	"errors"
	"testing"
)

func TestParseIssueState(t *testing.T) {
	tests := []struct {
		input   string
		want    IssueState
		wantErr bool
	}{
		{"open", IssueStateOpen, false},
		{"CLOSED", IssueStateClosed, false},
		{"All", IssueStateAll, false},
		{" open ", IssueStateOpen, false},
		{"", "", true},
		{"merged", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIssueState(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidState) {
					t.Fatalf("ParseIssueState(%q) error = %v, want ErrInvalidState", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIssueState(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseIssueState(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		input   string
		want    RepoRef
		wantErr bool
	}{
		{"octo/hello", RepoRef{Owner: "octo", Name: "hello"}, false},
		{"https://github.com/octo/hello", RepoRef{Owner: "octo", Name: "hello"}, false},
		{"https://github.com/octo/hello.git", RepoRef{Owner: "octo", Name: "hello"}, false},
		{"git@github.com:octo/hello.git", RepoRef{Owner: "octo", Name: "hello"}, false},
		// Only the first separator splits.
		{"octo/hello/extra", RepoRef{Owner: "octo", Name: "hello/extra"}, false},
		{"octo", RepoRef{}, true},
		{"/hello", RepoRef{}, true},
		{"octo/", RepoRef{}, true},
		{"", RepoRef{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRepoRef(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRepo) {
					t.Fatalf("ParseRepoRef(%q) error = %v, want ErrInvalidRepo", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoRef(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRepoRef(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != tt.want.Owner+"/"+tt.want.Name {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}
