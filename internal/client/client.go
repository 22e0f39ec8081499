// Package client talks to the remote calendar store on behalf of one logged in user.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultTimeout = 15 * time.Second

	maxErrorBodyBytes = 64 * 1024
)

// SessionReader supplies the bearer token and the user id of the current login.
type SessionReader interface {
	Token() (string, bool)
	UserID() (string, bool)
}

type Client struct {
	baseURL    *url.URL
	sessions   SessionReader
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		if httpClient != nil {
			client.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.httpClient.Timeout = timeout
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(client *Client) {
		if logger != nil {
			client.logger = logger
		}
	}
}

func New(baseURL string, sessions SessionReader, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", baseURL)
	}
	if sessions == nil {
		return nil, errors.New("session reader is required")
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	client := &Client{
		baseURL:    parsed,
		sessions:   sessions,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// CloseIdleConnections drops keep-alive connections held by the HTTP client.
func (client *Client) CloseIdleConnections() {
	client.httpClient.CloseIdleConnections()
}

// credentials returns the session token and user id, or ErrUnauthenticated when
// either is missing.
func (client *Client) credentials() (string, string, error) {
	token, hasToken := client.sessions.Token()
	userID, hasUserID := client.sessions.UserID()
	if !hasToken || !hasUserID {
		return "", "", ErrUnauthenticated
	}
	return token, userID, nil
}

func (client *Client) token() (string, error) {
	token, ok := client.sessions.Token()
	if !ok {
		return "", ErrUnauthenticated
	}
	return token, nil
}

type request struct {
	op          string
	method      string
	segments    []string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
	// ignoreBody accepts a 2xx answer whose body is not JSON; out keeps its
	// zero value and the caller falls back to what it sent.
	ignoreBody bool
}

func (client *Client) endpoint(segments []string, query url.Values) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}

	target := *client.baseURL
	target.Path = client.baseURL.Path + "/" + strings.Join(segments, "/")
	target.RawPath = client.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	target.RawQuery = query.Encode()
	return target.String()
}

func jsonBody(payload any) (io.Reader, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(encoded), nil
}

// do sends the request and decodes a JSON success body into out when out is not nil.
func (client *Client) do(ctx context.Context, req request, out any) error {
	target := client.endpoint(req.segments, req.query)
	httpRequest, err := http.NewRequestWithContext(ctx, req.method, target, req.body)
	if err != nil {
		return &TransportError{Op: req.op, Err: err}
	}
	httpRequest.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpRequest.Header.Set("Content-Type", req.contentType)
	}
	if req.token != "" {
		httpRequest.Header.Set("Authorization", "Bearer "+req.token)
	}

	started := time.Now()
	response, err := client.httpClient.Do(httpRequest)
	if err != nil {
		client.logger.Debug("request failed",
			zap.String("op", req.op),
			zap.String("method", req.method),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return &TransportError{Op: req.op, Err: err}
	}
	defer response.Body.Close()

	client.logger.Debug("request finished",
		zap.String("op", req.op),
		zap.String("method", req.method),
		zap.Int("status", response.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if response.StatusCode >= http.StatusBadRequest {
		body, err := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
		if err != nil {
			client.logger.Debug("error body read failed",
				zap.String("op", req.op),
				zap.Int("status", response.StatusCode),
				zap.Error(err),
			)
		}
		return serverErrorFromBody(response.StatusCode, body)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		client.logger.Debug("response body read failed",
			zap.String("op", req.op),
			zap.Int("status", response.StatusCode),
			zap.Error(err),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &TransportError{Op: req.op, Err: ctxErr}
		}
		return &TransportError{Op: req.op, Err: err}
	}
	// An empty success body leaves out untouched.
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		if req.ignoreBody {
			client.logger.Debug("ignoring non-JSON success body",
				zap.String("op", req.op),
				zap.Int("status", response.StatusCode),
				zap.Error(err),
			)
			return nil
		}
		return &ServerError{Status: response.StatusCode, Message: "malformed response body: " + err.Error()}
	}
	return nil
}
