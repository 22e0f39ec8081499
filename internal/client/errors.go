package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthenticated is returned before any request is sent when the session
	// has no token or no userId.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrMissingCredentials is returned by Login before any request is sent.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidLoginResponse means the server answered 2xx without a token or id.
	ErrInvalidLoginResponse = errors.New("login response is missing token or id")
)

// TransportError means the request never produced an HTTP response: timeout,
// refused connection, DNS failure or cancellation.
type TransportError struct {
	Op  string
	Err error
}

func (err *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", err.Op, err.Err)
}

func (err *TransportError) Unwrap() error {
	return err.Err
}

// ServerError is a 4xx or 5xx answer, or a success answer whose body could not be read.
type ServerError struct {
	Status  int
	Message string
}

func (err *ServerError) Error() string {
	return fmt.Sprintf("server responded %d: %s", err.Status, err.Message)
}

// UserMessage returns the text to show in a user alert: the server's own message
// when it sent one, else fallback.
func UserMessage(err error, fallback string) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" && !serverErr.generic() {
		return serverErr.Message
	}
	return fallback
}

func (err *ServerError) generic() bool {
	return strings.HasPrefix(err.Message, genericMessagePrefix)
}

const genericMessagePrefix = "request failed with status"

func genericServerMessage(status int) string {
	return fmt.Sprintf("%s %d", genericMessagePrefix, status)
}

// serverErrorFromBody takes {"message": ...} first, then {"error": ...} as the
// reference server writes it.
func serverErrorFromBody(status int, body []byte) *ServerError {
	payload := struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}{}
	if err := json.Unmarshal(body, &payload); err == nil {
		if message := strings.TrimSpace(payload.Message); message != "" {
			return &ServerError{Status: status, Message: message}
		}
		if message := strings.TrimSpace(payload.Error); message != "" {
			return &ServerError{Status: status, Message: message}
		}
	}
	return &ServerError{Status: status, Message: genericServerMessage(status)}
}
