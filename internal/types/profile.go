// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProfileInput is the raw snapshot of the résumé form. Every field is free
// text and may be empty. Experience and Education hold one record per line,
// Skills is comma-separated.
type ProfileInput struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
	Summary    string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Experience string `json:"experience,omitempty" yaml:"experience,omitempty"`
	Education  string `json:"education,omitempty" yaml:"education,omitempty"`
	Skills     string `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Merge returns a copy of p where every empty field is taken from base.
// Used to layer CLI flags over an input file.
func (p ProfileInput) Merge(base ProfileInput) ProfileInput {
	result := p
	pick := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	pick(&result.Name, base.Name)
	pick(&result.Title, base.Title)
	pick(&result.Email, base.Email)
	pick(&result.Phone, base.Phone)
	pick(&result.Location, base.Location)
	pick(&result.Summary, base.Summary)
	pick(&result.Experience, base.Experience)
	pick(&result.Education, base.Education)
	pick(&result.Skills, base.Skills)
	return result
}

// ExperienceEntry is one parsed line of the experience field
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// EducationEntry is one parsed line of the education field
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
}

// ResumeData is the parsed form: scalar fields as entered plus the derived
// lists. It is rebuilt from a ProfileInput on every render.
type ResumeData struct {
	Name       string            `json:"name"`
	Title      string            `json:"title"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Location   string            `json:"location"`
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
}
