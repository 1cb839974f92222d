package utils

import (
	"fmt"
	"strings"
)

// MinPasswordLength is the weakest password accepted at registration.
const MinPasswordLength = 6

// MissingFieldError identifies which required field was absent or blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// RequireFields checks that every named field is present and non-empty
// after trimming whitespace. Pure: no I/O, no mutation.
func RequireFields(input map[string]string, fields ...string) error {
	for _, field := range fields {
		if strings.TrimSpace(input[field]) == "" {
			return &MissingFieldError{Field: field}
		}
	}
	return nil
}

// ValidEmail performs a format-only check: exactly one "@" with non-empty
// local and domain parts. Deliverability is out of scope.
func ValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// ValidPassword enforces the minimum length.
func ValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}
