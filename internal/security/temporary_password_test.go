package security

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{name: "negative length", length: -1, alphabet: "abc", wantErr: true},
		{name: "empty alphabet", length: 1, alphabet: "", wantErr: true},
		{name: "zero length", length: 0, alphabet: "abc"},
		{name: "single alphabet character", length: 8, alphabet: "X"},
		{name: "temporary alphabet", length: 64, alphabet: TemporaryPasswordAlphabet},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomString(test.length, test.alphabet)
			if test.wantErr {
				if err == nil {
					t.Fatalf("RandomString(%d, %q) expected error, got nil", test.length, test.alphabet)
				}
				return
			}
			if err != nil {
				t.Fatalf("RandomString(%d, %q) returned error: %v", test.length, test.alphabet, err)
			}
			if len(got) != test.length {
				t.Fatalf("RandomString(%d, %q) len = %d, want %d", test.length, test.alphabet, len(got), test.length)
			}
			for _, char := range got {
				if !strings.ContainsRune(test.alphabet, char) {
					t.Fatalf("RandomString(%d, %q) produced char %q outside alphabet", test.length, test.alphabet, char)
				}
			}
		})
	}
}

func TestTemporaryPasswordHasLetterAndDigit(t *testing.T) {
	t.Parallel()

	for attempt := 0; attempt < 50; attempt++ {
		password, err := TemporaryPassword(4)
		if err != nil {
			t.Fatalf("TemporaryPassword returned error: %v", err)
		}
		if len(password) != MinTemporaryPasswordLength {
			t.Fatalf("TemporaryPassword minimum len = %d, want %d", len(password), MinTemporaryPasswordLength)
		}
		if !strings.ContainsAny(password, temporaryPasswordLetters) {
			t.Fatalf("password %q has no letter", password)
		}
		if !strings.ContainsAny(password, temporaryPasswordDigits) {
			t.Fatalf("password %q has no digit", password)
		}
		for _, char := range password {
			if !strings.ContainsRune(TemporaryPasswordAlphabet, char) {
				t.Fatalf("password %q contains char %q outside alphabet", password, char)
			}
		}
	}
}
