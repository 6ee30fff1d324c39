package models

import "errors"

// Validation errors returned by the field constructors. Callers match them
// with errors.Is; the CLI layer turns them into user-facing text.
var (
	// ErrEmptyName is returned when a contact name is the empty string.
	ErrEmptyName = errors.New("contact name must not be empty")

	// ErrInvalidPhone is returned when a phone number is not exactly
	// 10 ASCII digits.
	ErrInvalidPhone = errors.New("phone number must contain exactly 10 digits")

	// ErrInvalidBirthday is returned when a birthday string is not a real
	// calendar date in DD.MM.YYYY format.
	ErrInvalidBirthday = errors.New("birthday must be a valid date in DD.MM.YYYY format")
)
