// Package validate holds the field checks shared by the catalog entities.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrTooLong      = errors.New("field too long")
)

// Required fails with ErrMissingField when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return nil
}

// MaxLen counts runes, not bytes, to match varchar(n) semantics.
func MaxLen(field, value string, n int) error {
	if utf8.RuneCountInString(value) > n {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrTooLong, field, n)
	}
	return nil
}

// IsValidation reports whether err came from one of the checks above.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrTooLong)
}
