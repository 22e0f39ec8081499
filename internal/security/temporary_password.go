package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// TemporaryPasswordAlphabet leaves out characters that are easy to misread: 0/O, 1/l/I.
const TemporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const (
	MinTemporaryPasswordLength = 8

	temporaryPasswordLetters = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	temporaryPasswordDigits  = "23456789"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	var builder strings.Builder
	builder.Grow(length)
	for builder.Len() < length {
		char, err := randomByte(alphabet)
		if err != nil {
			return "", err
		}
		builder.WriteByte(char)
	}
	return builder.String(), nil
}

// TemporaryPassword returns a password that passes the server's strength rules:
// at least MinTemporaryPasswordLength characters with a letter and a digit.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	body, err := RandomString(length-2, TemporaryPasswordAlphabet)
	if err != nil {
		return "", err
	}
	letter, err := randomByte(temporaryPasswordLetters)
	if err != nil {
		return "", err
	}
	digit, err := randomByte(temporaryPasswordDigits)
	if err != nil {
		return "", err
	}

	password := []byte(body + string([]byte{letter, digit}))
	for index := len(password) - 1; index > 0; index-- {
		swap, err := randomIndex(index + 1)
		if err != nil {
			return "", err
		}
		password[index], password[swap] = password[swap], password[index]
	}
	return string(password), nil
}

func randomByte(alphabet string) (byte, error) {
	index, err := randomIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[index], nil
}

func randomIndex(limit int) (int, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}
