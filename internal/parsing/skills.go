package parsing

import "strings"

// ParseSkills splits a comma-separated list, trims each piece and drops the
// empty ones. Order and duplicates are preserved.
func ParseSkills(text string) []string {
	skills := make([]string, 0)
	for _, piece := range strings.Split(text, ",") {
		if s := strings.TrimSpace(piece); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
