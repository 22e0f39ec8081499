// Package session persists the login session of the command line client.
//
// Each value lives in its own file under the session directory, one file per key:
// token, userId, username, email.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const (
	KeyToken    = "token"
	KeyUserID   = "userId"
	KeyUsername = "username"
	KeyEmail    = "email"
)

var allKeys = []string{KeyToken, KeyUserID, KeyUsername, KeyEmail}

var (
	ErrNoSession       = errors.New("no active session")
	ErrIncompleteLogin = errors.New("session requires token and userId")
)

type Session struct {
	Token    string
	UserID   string
	Username string
	Email    string
}

type Store struct {
	kv *diskv.Diskv
}

func Open(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("session directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	return &Store{kv: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
		PathPerm:     0o700,
		FilePerm:     0o600,
	})}, nil
}

func (store *Store) Token() (string, bool) {
	return store.read(KeyToken)
}

func (store *Store) UserID() (string, bool) {
	return store.read(KeyUserID)
}

func (store *Store) Load() (Session, error) {
	token, hasToken := store.read(KeyToken)
	userID, hasUserID := store.read(KeyUserID)
	if !hasToken || !hasUserID {
		return Session{}, ErrNoSession
	}
	username, _ := store.read(KeyUsername)
	email, _ := store.read(KeyEmail)
	return Session{Token: token, UserID: userID, Username: username, Email: email}, nil
}

// Save replaces the stored session. Optional fields left empty are erased so a
// previous user's profile never leaks into the new session.
func (store *Store) Save(session Session) error {
	if strings.TrimSpace(session.Token) == "" || strings.TrimSpace(session.UserID) == "" {
		return ErrIncompleteLogin
	}

	values := map[string]string{
		KeyToken:    strings.TrimSpace(session.Token),
		KeyUserID:   strings.TrimSpace(session.UserID),
		KeyUsername: session.Username,
		KeyEmail:    session.Email,
	}
	for _, key := range allKeys {
		if err := store.write(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

func (store *Store) SetUsername(username string) error {
	return store.write(KeyUsername, username)
}

// Clear removes every session key. Clearing an empty store is not an error.
func (store *Store) Clear() error {
	for _, key := range allKeys {
		if err := store.erase(key); err != nil {
			return err
		}
	}
	return nil
}

func (store *Store) read(key string) (string, bool) {
	value, err := store.kv.Read(key)
	if err != nil {
		return "", false
	}
	trimmed := strings.TrimSpace(string(value))
	return trimmed, trimmed != ""
}

func (store *Store) write(key string, value string) error {
	if value == "" {
		return store.erase(key)
	}
	if err := store.kv.WriteString(key, value); err != nil {
		return fmt.Errorf("write session %s: %w", key, err)
	}
	return nil
}

func (store *Store) erase(key string) error {
	if err := store.kv.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("erase session %s: %w", key, err)
	}
	return nil
}
