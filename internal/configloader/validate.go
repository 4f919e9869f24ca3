package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gobbmd/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g. "tab_width").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for errors and warnings.
// Out-of-range tab widths are errors: they must be rejected before any
// rendering begins.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("unknown output format %q (expected markdown or html)", cfg.Format),
		})
	}

	if cfg.TabWidth < config.MinTabWidth || cfg.TabWidth > config.MaxTabWidth {
		result.Errors = append(result.Errors, ValidationError{
			Field: "tab_width",
			Value: cfg.TabWidth,
			Message: fmt.Sprintf("tab width %d out of range (%d-%d)",
				cfg.TabWidth, config.MinTabWidth, config.MaxTabWidth),
		})
	}

	for _, tag := range cfg.VerbatimTags {
		if tag == "" || strings.ContainsAny(tag, "[]= ") {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "verbatim_tags",
				Value:   tag,
				Message: fmt.Sprintf("invalid verbatim tag name %q", tag),
			})
		}
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "extensions",
				Value:   ext,
				Message: fmt.Sprintf("extension %q does not start with a dot", ext),
			})
		}
	}

	return result
}
