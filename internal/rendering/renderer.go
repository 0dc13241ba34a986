package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/types"
)

// Renderer maps résumé data and a variant to a markup fragment. It holds no
// per-call state and is safe for concurrent use.
type Renderer struct {
	registry *Registry
}

// NewRenderer creates a renderer over registry, or over DefaultRegistry when
// registry is nil.
func NewRenderer(registry *Registry) *Renderer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Renderer{registry: registry}
}

// Variants lists the variants this renderer can produce.
func (r *Renderer) Variants() []types.Variant {
	return r.registry.Variants()
}

// Render prepares the shared view and hands it to the variant's layout.
// User input never causes an error; only an unregistered variant or a broken
// template does.
func (r *Renderer) Render(variant types.Variant, data types.ResumeData) (string, error) {
	layout, err := r.registry.Get(variant)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := layout.Render(&result, PrepareView(data)); err != nil {
		return "", err
	}
	return result.String(), nil
}

// RenderInput parses a raw form snapshot and renders it.
func (r *Renderer) RenderInput(variant types.Variant, in types.ProfileInput) (string, error) {
	return r.Render(variant, parsing.ParseProfile(in))
}

// Render renders a form snapshot with the default registry.
func Render(variant types.Variant, in types.ProfileInput) (string, error) {
	return NewRenderer(nil).RenderInput(variant, in)
}
