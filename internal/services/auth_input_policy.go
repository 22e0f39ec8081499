package services

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const MaxUsernameLength = 50

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrAuthUsernameInvalid    = errors.New("auth username invalid")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

func NormalizeUsername(raw string) (string, error) {
	username := strings.Join(strings.Fields(raw), " ")
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		return "", ErrAuthUsernameInvalid
	}
	return username, nil
}
