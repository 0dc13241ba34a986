// Package ingestion loads résumé form input from JSON or YAML files.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads a profile input file. The format is chosen by extension:
// .json, .yaml or .yml. The document is checked against the profile schema
// before it is decoded.
func LoadProfile(path string) (types.ProfileInput, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.ProfileInput{}, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return DecodeProfile(path, content)
}

// DecodeProfile decodes profile content whose format is inferred from name.
func DecodeProfile(name string, content []byte) (types.ProfileInput, error) {
	var doc []byte
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		doc = content
	case ".yaml", ".yml":
		converted, err := yamlToJSON(content)
		if err != nil {
			return types.ProfileInput{}, &LoadError{Path: name, Message: "failed to parse YAML", Cause: err}
		}
		doc = converted
	default:
		return types.ProfileInput{}, &LoadError{
			Path:    name,
			Message: fmt.Sprintf("unsupported file extension %q (expected .json, .yaml or .yml)", ext),
		}
	}

	if err := schemas.ValidateProfileJSON(doc); err != nil {
		return types.ProfileInput{}, &LoadError{Path: name, Message: "profile does not match schema", Cause: err}
	}

	var in types.ProfileInput
	if err := json.Unmarshal(doc, &in); err != nil {
		return types.ProfileInput{}, &LoadError{Path: name, Message: "failed to unmarshal JSON", Cause: err}
	}
	return normalize(in), nil
}

// SaveProfile writes in to path as JSON or YAML, chosen by extension, so the
// file can be read back with LoadProfile.
func SaveProfile(path string, in types.ProfileInput) error {
	content, err := EncodeProfile(path, in)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &LoadError{Path: path, Message: "failed to create directory", Cause: err}
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return &LoadError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}

// EncodeProfile marshals in in the format implied by name.
func EncodeProfile(name string, in types.ProfileInput) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		content, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return nil, &LoadError{Path: name, Message: "failed to marshal JSON", Cause: err}
		}
		return append(content, '\n'), nil
	case ".yaml", ".yml":
		content, err := yaml.Marshal(in)
		if err != nil {
			return nil, &LoadError{Path: name, Message: "failed to marshal YAML", Cause: err}
		}
		return content, nil
	default:
		return nil, &LoadError{
			Path:    name,
			Message: fmt.Sprintf("unsupported file extension %q (expected .json, .yaml or .yml)", ext),
		}
	}
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one schema.
func yamlToJSON(content []byte) ([]byte, error) {
	var raw any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return json.Marshal(raw)
}

// normalize converts CRLF line endings in the multiline fields.
func normalize(in types.ProfileInput) types.ProfileInput {
	in.Summary = normalizeNewlines(in.Summary)
	in.Experience = normalizeNewlines(in.Experience)
	in.Education = normalizeNewlines(in.Education)
	return in
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
