package errors

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ValidationBuilder collects field problems for config and request checks.
// Build returns nil when nothing was recorded, otherwise an InvalidArgument
// error carrying the problems under MetaValidationErrors.
type ValidationBuilder struct {
	fields map[string][]string
	order  []string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Fieldf records a formatted problem for field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], fmt.Sprintf(format, args...))
	return vb
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Fieldf(field, "is required")
}

// InvalidField records a field with an unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns the collected problems as one error, fields in the order
// they were first reported
func (vb *ValidationBuilder) Build() error {
	if len(vb.order) == 0 {
		return nil
	}

	parts := make([]string, 0, len(vb.order))
	meta := make(map[string][]string, len(vb.fields))
	for _, field := range vb.order {
		msgs := vb.fields[field]
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, ", ")))
		meta[field] = slices.Clone(msgs)
	}
	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta(MetaValidationErrors, meta)
}

// ValidateRequired records field when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxRunes records field when value holds more than maxRunes
// characters. Names are counted in runes so CJK names get the same limit.
func ValidateMaxRunes(field, value string, maxRunes int, vb *ValidationBuilder) {
	if utf8.RuneCountInString(value) > maxRunes {
		vb.Fieldf(field, "must be no more than %d characters", maxRunes)
	}
}

// ValidateRange records field when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum records field when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
