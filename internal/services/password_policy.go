package services

import (
	"errors"
	"unicode"
)

// bcrypt refuses inputs longer than this.
const MaxPasswordBytes = 72

var (
	ErrWeakPassword    = errors.New("weak password")
	ErrPasswordTooLong = errors.New("password too long")
)

func ValidatePasswordStrength(password string) error {
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}

	var hasLetter, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if hasLetter && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
