package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/moodlog/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

func newCalendarTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "moodlog-api-test.db")
	database, err := db.OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.authService.WithBcryptCost(bcrypt.MinCost)
	handler.accountService.WithBcryptCost(bcrypt.MinCost)

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func sendText(t *testing.T, app *fiber.App, method string, path string, token string, text string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(text))
	request.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func assertStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()

	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, strings.TrimSpace(string(body)))
	}
}

type testAccount struct {
	ID    uint
	Token string
	Email string
}

func (account testAccount) path(format string) string {
	return strings.ReplaceAll(format, "{id}", strconv.FormatUint(uint64(account.ID), 10))
}

func registerAndLogin(t *testing.T, app *fiber.App, email string, password string) testAccount {
	t.Helper()

	response := sendJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
		"username": strings.Split(email, "@")[0],
	})
	assertStatus(t, response, http.StatusCreated)

	response = sendJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	assertStatus(t, response, http.StatusOK)

	login := loginResponse{}
	decodeJSONBody(t, response, &login)
	if login.Token == "" || login.ID == 0 {
		t.Fatalf("expected token and id in login response, got %+v", login)
	}
	return testAccount{ID: login.ID, Token: login.Token, Email: login.Email}
}
