package rendering

import "strings"

// DocumentOptions controls the standalone page built around a fragment.
type DocumentOptions struct {
	// AutoPrint adds a script that opens the print dialog once the page has
	// loaded. Leave it off when the page is printed by a headless browser.
	AutoPrint bool
}

type documentData struct {
	Name      string
	Styles    string
	Body      string
	AutoPrint bool
}

// Document wraps an already rendered fragment in a minimal A4 page. The
// fragment is inserted verbatim; name is escaped for the title.
func Document(fragment, name string, opts DocumentOptions) (string, error) {
	tmpl := loadTemplates()

	var result strings.Builder
	err := tmpl.ExecuteTemplate(&result, "document", documentData{
		Name:      orDefault(name, DefaultName),
		Styles:    baseStyles,
		Body:      fragment,
		AutoPrint: opts.AutoPrint,
	})
	if err != nil {
		return "", &TemplateError{
			Message: "failed to execute document shell",
			Cause:   err,
		}
	}
	return result.String(), nil
}
