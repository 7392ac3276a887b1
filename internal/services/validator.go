package services

import (
	"regexp"
	"strings"

	"showcase-api/internal/constants"
	"showcase-api/internal/requests"
)

// FieldError describes a single invalid or missing submission field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Institutional address: bt2 + 7 digits at the fixed domain.
	institutionalEmailRe = regexp.MustCompile(`(?i)^bt2\d{7}@iiitn\.ac\.in$`)
)

// ValidateSubmission checks the text fields of a submission and returns one
// error per violated rule. An empty result means the submission may proceed
// to dispatch. No external calls are made here.
func ValidateSubmission(in requests.UploadWorkRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Student name is required"})
	}
	if strings.TrimSpace(in.Roll) == "" {
		errs = append(errs, FieldError{Field: "roll", Message: "Roll number is required"})
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case !emailRe.MatchString(email):
		errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
	case !institutionalEmailRe.MatchString(email):
		errs = append(errs, FieldError{Field: "email", Message: "Only IIITN students (bt2xxxxxxx@iiitn.ac.in) can upload"})
	}

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "Description is required"})
	}
	if !constants.IsValidCategory(in.Category) {
		errs = append(errs, FieldError{Field: "category", Message: "Valid category is required"})
	}

	return errs
}
