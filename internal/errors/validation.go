package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidationError lists the problems found per config field
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error reports fields in name order
func (v *ValidationError) Error() string {
	names := slices.Sorted(maps.Keys(v.Fields))

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = field + ": " + strings.Join(v.Fields[field], ", ")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidationBuilder collects field problems for a Config.Validate method
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder returns an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// RequiredField records a missing dependency
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when nothing was recorded. Otherwise it returns an
// InvalidArgument error whose cause is the *ValidationError.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	ve := &ValidationError{Fields: vb.fields}
	return WrapWithCode(ve, CodeInvalidArgument, "invalid configuration").
		WithMeta("validation_errors", ve.Fields)
}

// ValidateRange records field when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Field(field, fmt.Sprintf("must be between %d and %d", minValue, maxValue))
	}
}

// ValidateEnum records field when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Field(field, "must be one of: "+strings.Join(allowed, ", "))
	}
}
