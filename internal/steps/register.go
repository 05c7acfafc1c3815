// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-19

package steps

import (
	"github.com/similigh/add-to-project/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("label_filter", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewLabelFilter(deps), nil
	})

	r.Register("project_resolver", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewProjectResolver(deps), nil
	})

	r.Register("item_adder", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewItemAdder(deps), nil
	})

	r.Register("status_override", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewStatusOverride(deps), nil
	})

	r.Register("output_writer", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewOutputWriter(deps), nil
	})
}
