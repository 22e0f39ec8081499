package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type CalendarEntry struct {
	Date    string `json:"date"`
	Comment string `json:"comment"`
	Emoji   string `json:"emoji"`
}

type EmotionCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

type EmotionStats struct {
	UserID   string
	Total    int
	Counts   []EmotionCount
	TopEmoji string
}

type LoginResult struct {
	Token    string
	UserID   string
	Username string
	Email    string
}

type Profile struct {
	UserID   string
	Email    string
	Username string
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// wireID accepts an id sent either as a JSON number or a JSON string.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = wireID(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	if _, err := strconv.ParseUint(number.String(), 10, 64); err != nil {
		return fmt.Errorf("id must be a non-negative integer: %w", err)
	}
	*id = wireID(number.String())
	return nil
}

type wireLogin struct {
	Token    string `json:"token"`
	ID       wireID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (wire wireLogin) result() (LoginResult, error) {
	if wire.Token == "" || wire.ID == "" {
		return LoginResult{}, ErrInvalidLoginResponse
	}
	return LoginResult{
		Token:    wire.Token,
		UserID:   string(wire.ID),
		Username: wire.Username,
		Email:    wire.Email,
	}, nil
}

type wireUser struct {
	ID       wireID `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (wire wireUser) profile() Profile {
	return Profile{UserID: string(wire.ID), Email: wire.Email, Username: wire.Username}
}

type wireEmotionStats struct {
	UserID   wireID         `json:"userId"`
	Total    int            `json:"total"`
	Counts   []EmotionCount `json:"counts"`
	TopEmoji string         `json:"topEmoji"`
}

func (wire wireEmotionStats) stats() EmotionStats {
	counts := wire.Counts
	if counts == nil {
		counts = []EmotionCount{}
	}
	return EmotionStats{
		UserID:   string(wire.UserID),
		Total:    wire.Total,
		Counts:   counts,
		TopEmoji: wire.TopEmoji,
	}
}
