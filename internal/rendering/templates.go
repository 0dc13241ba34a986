package rendering

import (
	"embed"
	"sync"
	"text/template"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.tmpl templates/*.css
var templateFS embed.FS

var (
	baseOnce      sync.Once
	baseTemplates *template.Template
	baseStyles    string

	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// templateFuncs is the only way values reach the markup: every field goes
// through escape.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"escape": EscapeHTML,
	}
}

// loadTemplates parses the embedded layouts once. The files ship with the
// binary, so a parse failure is a programming error.
func loadTemplates() *template.Template {
	baseOnce.Do(func() {
		baseTemplates = template.Must(
			template.New("resume").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl"),
		)
		css, err := templateFS.ReadFile("templates/resume.css")
		if err != nil {
			panic(err)
		}
		baseStyles = string(css)
	})
	return baseTemplates
}

// DefaultRegistry returns the shared registry holding the modern, classic
// and executive layouts.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		tmpl := loadTemplates()
		reg := NewRegistry()
		for _, v := range types.AllVariants() {
			reg.MustRegister(&templateLayout{variant: v, tmpl: tmpl.Lookup(string(v))})
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
