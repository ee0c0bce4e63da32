package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown on the submit form.
var FieldLabels = map[string]string{
	"Title":       "Job Title",
	"Company":     "Company",
	"Location":    "Location",
	"Link":        "Application Link",
	"Description": "Description",
	"Type":        "Job Type",
}

// MissingFields returns the labels of every field that failed a "required" rule.
func MissingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var labels []string
	for _, e := range validationErrors {
		if e.Tag() == "required" {
			labels = append(labels, getFieldLabel(e.Field()))
		}
	}
	return labels
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
