package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := formatCamelCase(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: must contain at least %s item(s)", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s: must be a valid URL", label)
	case "valid_phone":
		return fmt.Sprintf("%s: must be a valid phone number", label)
	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or symbols", label)
	case "max_current_year":
		return fmt.Sprintf("%s: must not be in the future", label)
	case "job_type":
		return fmt.Sprintf("%s: must be one of: Full-time, Part-time, Contract, Internship, Remote", label)
	case "skill_level":
		return fmt.Sprintf("%s: must be one of: Beginner, Intermediate, Advanced, Expert", label)
	case "company_size":
		return fmt.Sprintf("%s: must be one of: 1-10, 11-50, 51-200, 201-500, 501-1000, 1000+", label)
	case "app_status":
		return fmt.Sprintf("%s: must be one of: pending, reviewed, shortlisted, interview, hired, rejected", label)
	case "experience_level", "education_level":
		return fmt.Sprintf("%s: is not a recognised level", label)
	case "gtefield":
		return fmt.Sprintf("%s: must be greater than or equal to %s", label, formatCamelCase(param))
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", label, formatCamelCase(param))
	default:
		return fmt.Sprintf("%s: failed %s validation", label, e.Tag())
	}
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
