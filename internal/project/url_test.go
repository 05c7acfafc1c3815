package project

import (
	"errors"
	"testing"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Ref
	}{
		{
			name:     "organization project",
			input:    "https://github.com/orgs/acme/projects/7",
			expected: Ref{OwnerType: OwnerTypeOrganization, Owner: "acme", Number: 7},
		},
		{
			name:     "user project",
			input:    "https://github.com/users/octocat/projects/12",
			expected: Ref{OwnerType: OwnerTypeUser, Owner: "octocat", Number: 12},
		},
		{
			name:     "without scheme",
			input:    "github.com/orgs/acme/projects/3",
			expected: Ref{OwnerType: OwnerTypeOrganization, Owner: "acme", Number: 3},
		},
		{
			name:     "trailing view segments ignored",
			input:    "https://github.com/orgs/acme/projects/7/views/2?layout=board",
			expected: Ref{OwnerType: OwnerTypeOrganization, Owner: "acme", Number: 7},
		},
		{
			name:     "owner case preserved",
			input:    "https://github.com/orgs/ACME/projects/1",
			expected: Ref{OwnerType: OwnerTypeOrganization, Owner: "ACME", Number: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Fatalf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestParseURLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrInvalidProjectURL},
		{name: "repository url", input: "https://github.com/acme/widgets", want: ErrInvalidProjectURL},
		{name: "missing projects segment", input: "https://github.com/orgs/acme/7", want: ErrInvalidProjectURL},
		{name: "missing number", input: "https://github.com/orgs/acme/projects/", want: ErrInvalidProjectURL},
		{name: "non numeric number", input: "https://github.com/orgs/acme/projects/abc", want: ErrInvalidProjectURL},
		{name: "zero number", input: "https://github.com/orgs/acme/projects/0", want: ErrInvalidProjectURL},
		{name: "missing owner", input: "https://github.com/orgs//projects/7", want: ErrInvalidProjectURL},
		{name: "not anchored", input: "see https://github.com/orgs/acme/projects/7", want: ErrInvalidProjectURL},
		{name: "http scheme", input: "http://github.com/orgs/acme/projects/7", want: ErrInvalidProjectURL},
		{name: "other host", input: "https://gitlab.com/orgs/acme/projects/7", want: ErrInvalidProjectURL},
		{name: "enterprise owner segment", input: "https://github.com/enterprises/acme/projects/7", want: ErrUnsupportedOwnerType},
		{name: "uppercase owner segment", input: "https://github.com/Orgs/acme/projects/7", want: ErrUnsupportedOwnerType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseURL(tt.input)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestOwnerTypeQueryRoot(t *testing.T) {
	if got := OwnerTypeOrganization.QueryRoot(); got != "organization" {
		t.Errorf("expected organization, got %s", got)
	}
	if got := OwnerTypeUser.QueryRoot(); got != "user" {
		t.Errorf("expected user, got %s", got)
	}
	if got := OwnerType(0).QueryRoot(); got != "" {
		t.Errorf("expected empty root for zero value, got %s", got)
	}
}

func TestParseOwnerType(t *testing.T) {
	if _, err := ParseOwnerType("teams"); !errors.Is(err, ErrUnsupportedOwnerType) {
		t.Fatalf("expected ErrUnsupportedOwnerType, got %v", err)
	}
}
