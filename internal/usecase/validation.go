package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/botpilothq/console/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateLeadInput enforces the pre-submission rules: a lead without
// a name or email never reaches the record store.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Priority != "" && !entity.Priority(input.Priority).Valid() {
		errors = append(errors, ValidationError{"priority", "must be low, medium or high"})
	}

	if input.NextFollowUp != "" && !isValidDate(input.NextFollowUp) {
		errors = append(errors, ValidationError{"next_follow_up", "must be a valid date (YYYY-MM-DD)"})
	}

	if input.EstimatedValue < 0 {
		errors = append(errors, ValidationError{"estimated_value", "must not be negative"})
	}

	return errors
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}
