// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

// Package steps contains the modular "Lego block" pipeline steps.
// Each step implements the pipeline.Step interface.
package steps

import (
	"fmt"
	"log"
	"strings"

	"github.com/similigh/add-to-project/internal/core/pipeline"
	"github.com/similigh/add-to-project/internal/labels"
)

// LabelFilter decides whether the item's labels allow it onto the project.
type LabelFilter struct{}

// NewLabelFilter creates a new label filter step.
func NewLabelFilter(deps *pipeline.Dependencies) *LabelFilter {
	return &LabelFilter{}
}

// Name returns the step name.
func (s *LabelFilter) Name() string {
	return "label_filter"
}

// Run skips the pipeline when the configured labels do not match.
func (s *LabelFilter) Run(ctx *pipeline.Context) error {
	configuredList := ctx.Config.LabelList()
	configured := labels.NewSet(configuredList...)
	present := labels.NewSet(ctx.Item.Labels...)
	op := ctx.Config.Operator()

	if labels.Match(configured, present, op) {
		log.Printf("[label_filter] %s #%d passes label filter (operator=%s)", ctx.Item.Kind, ctx.Item.Number, op)
		return nil
	}

	reason := skipReason(op, strings.Join(configuredList, ", "))
	log.Printf("[label_filter] Skipping %s #%d because it %s", ctx.Item.Kind, ctx.Item.Number, reason)
	return ctx.Skip(reason)
}

func skipReason(op labels.Operator, configured string) string {
	switch op {
	case labels.OperatorAnd:
		return fmt.Sprintf("does not match all the labels: %s", configured)
	case labels.OperatorNot:
		return fmt.Sprintf("contains one of the labels: %s", configured)
	default:
		return fmt.Sprintf("does not have one of the labels: %s", configured)
	}
}
