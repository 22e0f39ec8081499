package api

import (
	"net/http"
	"testing"
)

func TestUpdateProfileChangesUsername(t *testing.T) {
	app, _ := newCalendarTestApp(t)
	account := registerAndLogin(t, app, "profile@example.com", "StrongPass1")

	response := sendJSON(t, app, http.MethodPut, account.path("/api/users/{id}"), account.Token, map[string]string{
		"username": "새 이름",
	})
	assertStatus(t, response, http.StatusOK)

	updated := userResponse{}
	decodeJSONBody(t, response, &updated)
	if updated.Username != "새 이름" || updated.ID != account.ID {
		t.Fatalf("unexpected profile response %+v", updated)
	}

	response = sendJSON(t, app, http.MethodGet, account.path("/api/users/{id}"), account.Token, nil)
	assertStatus(t, response, http.StatusOK)
	decodeJSONBody(t, response, &updated)
	if updated.Username != "새 이름" {
		t.Fatalf("expected stored username, got %+v", updated)
	}
}

func TestChangePasswordThenLoginWithNewPassword(t *testing.T) {
	app, _ := newCalendarTestApp(t)
	account := registerAndLogin(t, app, "password@example.com", "StrongPass1")

	response := sendJSON(t, app, http.MethodPut, account.path("/api/users/{id}/password"), account.Token, map[string]string{
		"current_password": "WrongPass1",
		"new_password":     "NewerPass2",
		"confirm_password": "NewerPass2",
	})
	assertStatus(t, response, http.StatusUnauthorized)

	response = sendJSON(t, app, http.MethodPut, account.path("/api/users/{id}/password"), account.Token, map[string]string{
		"current_password": "StrongPass1",
		"new_password":     "NewerPass2",
		"confirm_password": "NewerPass2",
	})
	assertStatus(t, response, http.StatusOK)

	response = sendJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "password@example.com",
		"password": "NewerPass2",
	})
	assertStatus(t, response, http.StatusOK)
}

func TestDeleteAccountRevokesAccess(t *testing.T) {
	app, _ := newCalendarTestApp(t)
	account := registerAndLogin(t, app, "gone@example.com", "StrongPass1")

	response := sendJSON(t, app, http.MethodDelete, account.path("/api/users/{id}"), account.Token, map[string]string{
		"password": "StrongPass1",
	})
	assertStatus(t, response, http.StatusNoContent)

	response = sendJSON(t, app, http.MethodGet, account.path("/api/calendar/{id}"), account.Token, nil)
	assertStatus(t, response, http.StatusUnauthorized)
}
