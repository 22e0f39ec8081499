package client

import (
	"context"
	"net/http"
	"strings"
)

// FetchCalendarEntries returns every entry the current user has stored.
func (client *Client) FetchCalendarEntries(ctx context.Context) ([]CalendarEntry, error) {
	token, userID, err := client.credentials()
	if err != nil {
		return nil, err
	}

	entries := []CalendarEntry{}
	if err := client.do(ctx, request{
		op:       "fetch calendar",
		method:   http.MethodGet,
		segments: []string{"api", "calendar", userID},
		token:    token,
	}, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveCalendarEntry upserts the entry for entry.Date and returns what the store kept.
func (client *Client) SaveCalendarEntry(ctx context.Context, userID string, entry CalendarEntry) (CalendarEntry, error) {
	token, err := client.token()
	if err != nil {
		return CalendarEntry{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return CalendarEntry{}, ErrUnauthenticated
	}

	body, err := jsonBody(entry)
	if err != nil {
		return CalendarEntry{}, err
	}

	saved := CalendarEntry{}
	if err := client.do(ctx, request{
		op:          "save calendar entry",
		method:      http.MethodPost,
		segments:    []string{"api", "calendar", userID},
		token:       token,
		body:        body,
		contentType: "application/json",
		ignoreBody:  true,
	}, &saved); err != nil {
		return CalendarEntry{}, err
	}
	if saved.Date != entry.Date {
		saved = entry
	}
	return saved, nil
}

func (client *Client) DeleteCalendarEntry(ctx context.Context, date string) error {
	token, userID, err := client.credentials()
	if err != nil {
		return err
	}

	return client.do(ctx, request{
		op:       "delete calendar entry",
		method:   http.MethodDelete,
		segments: []string{"api", "calendar", userID, date},
		token:    token,
	}, nil)
}

// PatchCalendarComment replaces only the comment. The body is sent as plain text.
func (client *Client) PatchCalendarComment(ctx context.Context, userID string, date string, comment string) (CalendarEntry, error) {
	token, err := client.token()
	if err != nil {
		return CalendarEntry{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return CalendarEntry{}, ErrUnauthenticated
	}

	patched := CalendarEntry{}
	if err := client.do(ctx, request{
		op:          "patch calendar comment",
		method:      http.MethodPatch,
		segments:    []string{"api", "calendar", userID, date, "comment"},
		token:       token,
		body:        strings.NewReader(comment),
		contentType: "text/plain; charset=utf-8",
		ignoreBody:  true,
	}, &patched); err != nil {
		return CalendarEntry{}, err
	}
	if patched.Date != date {
		patched = CalendarEntry{Date: date, Comment: comment}
	}
	return patched, nil
}
