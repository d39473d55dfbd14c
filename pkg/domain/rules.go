package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	dErrors "registrar/pkg/domain-errors"
)

// CheckMaxLength enforces the rule shared by every free-text field: the value
// must be present and at most limit characters long. Length is counted in
// code points, not bytes.
//
// Errors: returns CodeInvalidInput tagged with field.
func CheckMaxLength(field, value string, limit int) error {
	if value == "" {
		return dErrors.NewField(field, fmt.Sprintf("%s cannot be empty", field))
	}
	if utf8.RuneCountInString(value) > limit {
		return dErrors.NewField(field, fmt.Sprintf("%s must be %d characters or less", field, limit))
	}
	return nil
}

// CheckDigits requires value to be exactly n ASCII digits.
func CheckDigits(field, value string, n int) error {
	if len(value) != n {
		return dErrors.NewField(field, fmt.Sprintf("%s must be exactly %d digits", field, n))
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return dErrors.NewField(field, fmt.Sprintf("%s must contain digits only", field))
		}
	}
	return nil
}

// CheckFuture requires t to be set and strictly after now.
func CheckFuture(field string, t, now time.Time) error {
	if t.IsZero() {
		return dErrors.NewField(field, fmt.Sprintf("%s cannot be empty", field))
	}
	if !t.After(now) {
		return dErrors.NewField(field, fmt.Sprintf("%s must be in the future", field))
	}
	return nil
}
