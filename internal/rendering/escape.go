// Package rendering turns parsed résumé data into sanitized HTML fragments.
package rendering

import "strings"

// EscapeHTML escapes the characters that HTML treats as markup:
// & < > " '
// Every user-controlled value must pass through it exactly once before it is
// written into a template.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	if !strings.ContainsAny(text, `&<>"'`) {
		return text
	}

	var result strings.Builder
	result.Grow(len(text) + 16)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&#34;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
