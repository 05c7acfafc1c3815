// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

// Package labels implements the label gate that decides whether an item
// should be added to a project.
package labels

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Operator selects how configured labels are compared with the item's labels.
type Operator string

const (
	// OperatorOr proceeds when any configured label is present. It is the default.
	OperatorOr Operator = "or"
	// OperatorAnd proceeds only when every configured label is present.
	OperatorAnd Operator = "and"
	// OperatorNot proceeds only when none of the configured labels are present.
	OperatorNot Operator = "not"
)

// ParseOperator maps a raw operator string to an Operator.
// Anything other than "and" or "not" falls back to OperatorOr.
func ParseOperator(raw string) Operator {
	switch Operator(strings.ToLower(strings.TrimSpace(raw))) {
	case OperatorAnd:
		return OperatorAnd
	case OperatorNot:
		return OperatorNot
	default:
		return OperatorOr
	}
}

// ParseList splits a comma-separated label list, trimming and lower-casing
// each entry and dropping empty ones.
func ParseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		label := strings.ToLower(strings.TrimSpace(part))
		if label != "" {
			out = append(out, label)
		}
	}
	return out
}

// NewSet builds a lower-cased label set.
func NewSet(names ...string) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for _, name := range names {
		set.Add(strings.ToLower(name))
	}
	return set
}

// Match reports whether an item carrying the present labels passes the
// configured filter under op.
func Match(configured, present mapset.Set[string], op Operator) bool {
	switch op {
	case OperatorAnd:
		return configured.IsSubset(present)
	case OperatorNot:
		return configured.Intersect(present).IsEmpty()
	default:
		return configured.IsEmpty() || !configured.Intersect(present).IsEmpty()
	}
}
