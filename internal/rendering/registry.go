package rendering

import (
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/jonathan/resume-builder/internal/types"
)

// Layout is one presentation strategy: it writes a prepared View as a
// markup fragment. Layouts differ only in structure and labels.
type Layout interface {
	Variant() types.Variant
	Render(w io.Writer, view *View) error
}

// templateLayout renders a named template from the embedded set
type templateLayout struct {
	variant types.Variant
	tmpl    *template.Template
}

func (l *templateLayout) Variant() types.Variant {
	return l.variant
}

func (l *templateLayout) Render(w io.Writer, view *View) error {
	if err := l.tmpl.Execute(w, view); err != nil {
		return &TemplateError{
			Message: fmt.Sprintf("failed to execute %s layout", l.variant),
			Cause:   err,
		}
	}
	return nil
}

// Registry stores layouts by variant and keeps registration order.
type Registry struct {
	mu      sync.RWMutex
	layouts map[types.Variant]Layout
	order   []types.Variant
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		layouts: make(map[types.Variant]Layout),
	}
}

// Register adds a layout under its Variant(). Duplicates return an error.
func (r *Registry) Register(layout Layout) error {
	if layout == nil {
		return fmt.Errorf("rendering: layout is required")
	}
	variant := layout.Variant()
	if variant == "" {
		return fmt.Errorf("rendering: layout variant is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.layouts[variant]; exists {
		return fmt.Errorf("rendering: layout %q already registered", variant)
	}
	r.layouts[variant] = layout
	r.order = append(r.order, variant)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(layout Layout) {
	if err := r.Register(layout); err != nil {
		panic(err)
	}
}

// Get retrieves the layout for a variant.
func (r *Registry) Get(variant types.Variant) (Layout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	layout, ok := r.layouts[variant]
	if !ok {
		return nil, &RenderError{Message: fmt.Sprintf("no layout registered for template %q", variant)}
	}
	return layout, nil
}

// Variants lists registered variants in registration order.
func (r *Registry) Variants() []types.Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Variant, len(r.order))
	copy(out, r.order)
	return out
}
