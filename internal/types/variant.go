package types

import (
	"fmt"
	"strings"
)

// Variant identifies one of the fixed résumé layouts.
type Variant string

// Known template variants
const (
	VariantModern    Variant = "modern"
	VariantClassic   Variant = "classic"
	VariantExecutive Variant = "executive"
)

// DefaultVariant is selected when nothing else has been chosen
const DefaultVariant = VariantModern

// AllVariants returns the variants in display order.
func AllVariants() []Variant {
	return []Variant{VariantModern, VariantClassic, VariantExecutive}
}

// String implements fmt.Stringer
func (v Variant) String() string {
	return string(v)
}

// Label returns the human readable name of the variant.
func (v Variant) Label() string {
	switch v {
	case VariantModern:
		return "Modern"
	case VariantClassic:
		return "Classic"
	case VariantExecutive:
		return "Executive"
	default:
		return string(v)
	}
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantModern, VariantClassic, VariantExecutive:
		return true
	}
	return false
}

// InvalidVariantError is returned when a template id is not a known variant
type InvalidVariantError struct {
	Value string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("unknown template %q (expected one of: %s)", e.Value, strings.Join(variantNames(), ", "))
}

// ParseVariant converts a template id into a Variant. Matching ignores case
// and surrounding whitespace. An empty string yields DefaultVariant.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultVariant, nil
	}
	v := Variant(s)
	if !v.Valid() {
		return "", &InvalidVariantError{Value: s}
	}
	return v, nil
}

func variantNames() []string {
	all := AllVariants()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = string(v)
	}
	return names
}
