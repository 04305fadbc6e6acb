package usecase

import (
	"net/mail"
	"strings"
)

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, ValidationError{"first_name", "is required"})
	} else if len(input.FirstName) > 100 {
		errs = append(errs, ValidationError{"first_name", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, ValidationError{"last_name", "is required"})
	} else if len(input.LastName) > 100 {
		errs = append(errs, ValidationError{"last_name", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}
