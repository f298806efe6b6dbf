package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ValidateNodeName rejects names that are empty after trimming. Anything
// else is a valid name; a name containing a comma can be declared but no
// text-format link line can reference it.
func ValidateNodeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "node name cannot be empty")
	}
	return nil
}

// ParseValue parses a link value. It must be a finite, non-negative number.
func ParseValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, New(ErrCodeInvalidValue, "value cannot be empty")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, New(ErrCodeInvalidValue, "value %q is not a number", raw)
	}
	if err := ValidateValue(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateValue rejects NaN, infinities and negative link values.
func ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidValue, "value must be a finite number")
	}
	if v < 0 {
		return New(ErrCodeInvalidValue, "value %g cannot be negative", v)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
}

// ValidatePath validates a dataset or output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateRange checks that v lies in [lo, hi].
func ValidateRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return New(ErrCodeInvalidOption, "%s must be between %g and %g, got %g", field, lo, hi, v)
	}
	return nil
}
