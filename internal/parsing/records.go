// Package parsing turns the free-text résumé form into structured records.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// FieldDelimiter separates the positional fields of one record line.
// Splitting is naive: a value that itself contains the delimiter shifts
// every following field.
const FieldDelimiter = " - "

const (
	experienceFields = 4
	educationFields  = 3
)

// ParseMultiline splits text on LF or CRLF and returns the lines that are not
// blank after trimming, in input order. Retained lines are returned as typed.
func ParseMultiline(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// SplitRecord splits one line on FieldDelimiter into exactly n positional
// fields. Missing trailing fields are empty; fields past n are dropped.
func SplitRecord(line string, n int) []string {
	fields := make([]string, n)
	copy(fields, strings.Split(line, FieldDelimiter))
	return fields
}

// ParseExperience parses one "company - position - period - description"
// record per non-blank line.
func ParseExperience(text string) []types.ExperienceEntry {
	lines := ParseMultiline(text)
	entries := make([]types.ExperienceEntry, 0, len(lines))
	for _, line := range lines {
		f := SplitRecord(line, experienceFields)
		entries = append(entries, types.ExperienceEntry{
			Company:     f[0],
			Position:    f[1],
			Period:      f[2],
			Description: f[3],
		})
	}
	return entries
}

// ParseEducation parses one "institution - degree - period" record per
// non-blank line.
func ParseEducation(text string) []types.EducationEntry {
	lines := ParseMultiline(text)
	entries := make([]types.EducationEntry, 0, len(lines))
	for _, line := range lines {
		f := SplitRecord(line, educationFields)
		entries = append(entries, types.EducationEntry{
			Institution: f[0],
			Degree:      f[1],
			Period:      f[2],
		})
	}
	return entries
}
