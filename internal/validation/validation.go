package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/WNjihia/home-showcase/internal/models"
)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	messageMaxLen = 500
)

var (
	// Matches an optional leading + followed by 10-15 digits, applied to the
	// phone number after stripping separators.
	phoneRegexp = regexp.MustCompile(`^\+?\d{10,15}$`)
	dateRegexp  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

	validate = validator.New()
)

// FieldError reports a single failed field check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field errors for a whole-input validation pass.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidateName checks the requester name length (2-100 characters).
func ValidateName(name string) *FieldError {
	n := utf8.RuneCountInString(name)
	if n < nameMinLen || n > nameMaxLen {
		return &FieldError{Field: "name", Message: fmt.Sprintf("must be between %d and %d characters", nameMinLen, nameMaxLen)}
	}
	return nil
}

// ValidateEmail checks the email against standard address grammar.
func ValidateEmail(email string) *FieldError {
	if err := validate.Var(email, "required,email"); err != nil {
		return &FieldError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

// NormalizePhone strips whitespace, hyphens, parentheses and periods.
// Validation runs on the normalized form; the value as submitted is what
// gets persisted.
func NormalizePhone(phone string) string {
	return phoneStripper.Replace(phone)
}

// ValidatePhone checks the normalized phone number: an optional leading +
// followed by 10-15 digits.
func ValidatePhone(phone string) *FieldError {
	if !phoneRegexp.MatchString(NormalizePhone(phone)) {
		return &FieldError{Field: "phone", Message: "Please enter a valid phone number (10–15 digits)"}
	}
	return nil
}

// ValidatePreferredDate checks the YYYY-MM-DD literal pattern and rejects
// dates strictly before today. Today itself is accepted.
func ValidatePreferredDate(date string, now time.Time) *FieldError {
	if !dateRegexp.MatchString(date) {
		return &FieldError{Field: "preferred_date", Message: "must be a date in YYYY-MM-DD format"}
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return &FieldError{Field: "preferred_date", Message: "must be a date in YYYY-MM-DD format"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return &FieldError{Field: "preferred_date", Message: "must be in the future"}
	}
	return nil
}

// ValidateMessage checks the optional message length (max 500 characters).
func ValidateMessage(message *string) *FieldError {
	if message != nil && utf8.RuneCountInString(*message) > messageMaxLen {
		return &FieldError{Field: "message", Message: fmt.Sprintf("must be at most %d characters", messageMaxLen)}
	}
	return nil
}

// ValidateStatus checks a viewing request status against the allowed set.
func ValidateStatus(status string) *FieldError {
	if !models.AllowedStatuses[status] {
		return &FieldError{Field: "status", Message: "must be one of: pending, approved, rejected"}
	}
	return nil
}

// ViewingRequestInput is the validated shape of a viewing request submission.
type ViewingRequestInput struct {
	PropertyID    uint    `json:"property_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	PreferredDate string  `json:"preferred_date"`
	PreferredTime *string `json:"preferred_time"`
	Message       *string `json:"message"`
}

// ValidateViewingRequest runs every field check and collects all failures, so
// the caller can report the complete set in one response. A non-nil return
// means nothing may be persisted.
func ValidateViewingRequest(input ViewingRequestInput, now time.Time) Errors {
	var errs Errors
	for _, fe := range []*FieldError{
		ValidateName(input.Name),
		ValidateEmail(input.Email),
		ValidatePhone(input.Phone),
		ValidatePreferredDate(input.PreferredDate, now),
		ValidateMessage(input.Message),
	} {
		if fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
