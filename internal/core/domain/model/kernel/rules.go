package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tms/internal/pkg/errs"
)

// Attribute turns a payload field name into the wording used in messages:
// "cnh_number" becomes "cnh number".
func Attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// RequiredMessage is the message for a missing mandatory field.
func RequiredMessage(field string) string {
	return fmt.Sprintf("The %s field is required.", Attribute(field))
}

// TakenMessage is the message for a value that collides with another record.
func TakenMessage(field string) string {
	return fmt.Sprintf("The %s has already been taken.", Attribute(field))
}

// SelectedInvalidMessage is the message for a value outside of an allowed set
// or a reference to a record that does not exist.
func SelectedInvalidMessage(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", Attribute(field))
}

// CheckRequiredString validates a mandatory string trimmed of surrounding
// whitespace. maxLen <= 0 disables the length rule. It returns the trimmed
// value and whether it passed.
func CheckRequiredString(verr *errs.ValidationError, field, value string, maxLen int) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		verr.Add(field, RequiredMessage(field))
		return "", false
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		verr.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", Attribute(field), maxLen))
		return "", false
	}
	return trimmed, true
}

// CheckOptionalString validates a nullable string. Blank strings become nil.
func CheckOptionalString(verr *errs.ValidationError, field string, value *string, maxLen int) (*string, bool) {
	if value == nil {
		return nil, true
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, true
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		verr.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", Attribute(field), maxLen))
		return nil, false
	}
	return &trimmed, true
}
