// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-19
// Last Modified: 2026-10-19

package steps

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/similigh/add-to-project/internal/core/pipeline"
)

// OutputItemID is the name of the step output carrying the project item ID.
const OutputItemID = "itemId"

// OutputWriter publishes the project item ID as the action output.
type OutputWriter struct {
	path   string
	stdout io.Writer
}

// NewOutputWriter creates a new output writer step.
func NewOutputWriter(deps *pipeline.Dependencies) *OutputWriter {
	stdout := deps.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &OutputWriter{
		path:   deps.OutputPath,
		stdout: stdout,
	}
}

// Name returns the step name.
func (s *OutputWriter) Name() string {
	return "output_writer"
}

// Run appends itemId=<id> to the output file, or prints it when no file is set.
func (s *OutputWriter) Run(ctx *pipeline.Context) error {
	itemID := ctx.Result.ItemID
	if itemID == "" {
		log.Printf("[output_writer] No item ID to publish")
		return nil
	}

	line := fmt.Sprintf("%s=%s\n", OutputItemID, itemID)

	if s.path == "" {
		if _, err := io.WriteString(s.stdout, line); err != nil {
			return fmt.Errorf("failed to print output: %w", err)
		}
		ctx.Result.OutputWritten = true
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint:gosec // runner-owned output file
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	ctx.Result.OutputWritten = true
	log.Printf("[output_writer] Wrote %s to %s", OutputItemID, s.path)
	return nil
}
