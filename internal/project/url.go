// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

// Package project resolves GitHub project (V2) references from their URLs.
package project

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidProjectURL is returned when a URL does not look like a project URL.
	ErrInvalidProjectURL = errors.New("invalid project URL")

	// ErrUnsupportedOwnerType is returned for owner segments other than orgs or users.
	ErrUnsupportedOwnerType = errors.New("unsupported project owner type")
)

// URLFormat describes the accepted project URL shape.
const URLFormat = "https://github.com/orgs|users/<ownerName>/projects/<projectNumber>"

var projectURLPattern = regexp.MustCompile(`^(?:https://)?github\.com/([^/]+)/([^/]*)/projects/(\d+)`)

// OwnerType identifies who owns a project. It also selects the GraphQL
// root field used to reach the project.
type OwnerType int

const (
	OwnerTypeOrganization OwnerType = iota + 1
	OwnerTypeUser
)

// ParseOwnerType maps the owner segment of a project URL to an OwnerType.
func ParseOwnerType(token string) (OwnerType, error) {
	switch token {
	case "orgs":
		return OwnerTypeOrganization, nil
	case "users":
		return OwnerTypeUser, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOwnerType, token)
	}
}

// QueryRoot returns the GraphQL root field for the owner type.
func (t OwnerType) QueryRoot() string {
	switch t {
	case OwnerTypeOrganization:
		return "organization"
	case OwnerTypeUser:
		return "user"
	default:
		return ""
	}
}

func (t OwnerType) String() string {
	if root := t.QueryRoot(); root != "" {
		return root
	}
	return fmt.Sprintf("OwnerType(%d)", int(t))
}

// Ref points at a single project.
type Ref struct {
	OwnerType OwnerType
	Owner     string
	Number    int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s %s #%d", r.OwnerType, r.Owner, r.Number)
}

// ParseURL parses a project URL such as https://github.com/orgs/acme/projects/7.
// Matching is anchored at the start and case-sensitive; trailing path
// segments (views, queries) are ignored.
func ParseURL(raw string) (Ref, error) {
	m := projectURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return Ref{}, fmt.Errorf("%w %q: expected format %s", ErrInvalidProjectURL, raw, URLFormat)
	}

	ownerType, err := ParseOwnerType(m[1])
	if err != nil {
		return Ref{}, err
	}

	if m[2] == "" {
		return Ref{}, fmt.Errorf("%w %q: project owner name is missing", ErrInvalidProjectURL, raw)
	}

	number, err := strconv.Atoi(m[3])
	if err != nil || number <= 0 {
		return Ref{}, fmt.Errorf("%w %q: project number must be a positive integer", ErrInvalidProjectURL, raw)
	}

	return Ref{
		OwnerType: ownerType,
		Owner:     m[2],
		Number:    number,
	}, nil
}
