package parsing

import "github.com/jonathan/resume-builder/internal/types"

// ParseProfile derives the structured résumé from a form snapshot. Scalar
// fields are copied unchanged; defaults are applied later by the renderer.
func ParseProfile(in types.ProfileInput) types.ResumeData {
	return types.ResumeData{
		Name:       in.Name,
		Title:      in.Title,
		Email:      in.Email,
		Phone:      in.Phone,
		Location:   in.Location,
		Summary:    in.Summary,
		Experience: ParseExperience(in.Experience),
		Education:  ParseEducation(in.Education),
		Skills:     ParseSkills(in.Skills),
	}
}
