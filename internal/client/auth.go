package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Login exchanges credentials for a token. It does not touch the session store;
// callers persist the result.
func (client *Client) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return LoginResult{}, ErrMissingCredentials
	}

	body, err := jsonBody(map[string]string{"email": email, "password": password})
	if err != nil {
		return LoginResult{}, err
	}

	wire := wireLogin{}
	if err := client.do(ctx, request{
		op:          "login",
		method:      http.MethodPost,
		segments:    []string{"api", "auth", "login"},
		body:        body,
		contentType: "application/json",
	}, &wire); err != nil {
		return LoginResult{}, err
	}
	return wire.result()
}

func (client *Client) Register(ctx context.Context, input RegisterInput) (Profile, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.Username) == "" {
		return Profile{}, ErrMissingCredentials
	}

	body, err := jsonBody(input)
	if err != nil {
		return Profile{}, err
	}

	wire := wireUser{}
	if err := client.do(ctx, request{
		op:          "register",
		method:      http.MethodPost,
		segments:    []string{"api", "auth", "register"},
		body:        body,
		contentType: "application/json",
	}, &wire); err != nil {
		return Profile{}, err
	}
	return wire.profile(), nil
}

func (client *Client) UpdateUsername(ctx context.Context, username string) (Profile, error) {
	token, userID, err := client.credentials()
	if err != nil {
		return Profile{}, err
	}

	body, err := jsonBody(map[string]string{"username": username})
	if err != nil {
		return Profile{}, err
	}

	wire := wireUser{}
	if err := client.do(ctx, request{
		op:          "update profile",
		method:      http.MethodPut,
		segments:    []string{"api", "users", userID},
		token:       token,
		body:        body,
		contentType: "application/json",
	}, &wire); err != nil {
		return Profile{}, err
	}
	return wire.profile(), nil
}

func (client *Client) FetchEmotionStats(ctx context.Context) (EmotionStats, error) {
	token, userID, err := client.credentials()
	if err != nil {
		return EmotionStats{}, err
	}

	wire := wireEmotionStats{}
	if err := client.do(ctx, request{
		op:       "fetch emotion stats",
		method:   http.MethodGet,
		segments: []string{"emotion-stats"},
		query:    url.Values{"userId": {userID}},
		token:    token,
	}, &wire); err != nil {
		return EmotionStats{}, err
	}
	return wire.stats(), nil
}
