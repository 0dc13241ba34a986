package rendering

import "github.com/jonathan/resume-builder/internal/types"

// Placeholders shown when a scalar field is left empty. They are the same
// for every layout.
const (
	DefaultName     = "Your Name"
	DefaultTitle    = "Professional Title"
	DefaultEmail    = "email@example.com"
	DefaultPhone    = "(123) 456-7890"
	DefaultLocation = "City, State"
	DefaultSummary  = "Professional summary goes here."
)

// View is the layout-independent data handed to every template. Values are
// raw; templates escape them at the point of interpolation.
type View struct {
	Name       string
	Title      string
	Email      string
	Phone      string
	Location   string
	Summary    string
	Experience []types.ExperienceEntry
	Education  []types.EducationEntry
	Skills     []string
}

// PrepareView applies the scalar placeholders. Lists are passed through; a
// layout omits the section of an empty list.
func PrepareView(data types.ResumeData) *View {
	return &View{
		Name:       orDefault(data.Name, DefaultName),
		Title:      orDefault(data.Title, DefaultTitle),
		Email:      orDefault(data.Email, DefaultEmail),
		Phone:      orDefault(data.Phone, DefaultPhone),
		Location:   orDefault(data.Location, DefaultLocation),
		Summary:    orDefault(data.Summary, DefaultSummary),
		Experience: data.Experience,
		Education:  data.Education,
		Skills:     data.Skills,
	}
}

// orDefault only treats the empty string as missing; whitespace is kept.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
