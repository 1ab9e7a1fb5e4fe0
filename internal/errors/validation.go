package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const metaValidationErrors = "validation_errors"

// ValidationBuilder accumulates per-field problems so a config can report
// every bad setting at once instead of failing on the first.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder starts an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: map[string][]string{}}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted problem with field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records that field is missing
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when no field was flagged. Otherwise it returns an
// InvalidArgument error whose message lists fields alphabetically and whose
// meta holds the raw field map under "validation_errors".
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := slices.Sorted(maps.Keys(vb.fields))
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(vb.fields[name], ", "))
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(metaValidationErrors, vb.fields)
}

// ValidateRange flags field unless minValue <= value <= maxValue.
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value >= minValue && value <= maxValue {
		return
	}
	vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
}
