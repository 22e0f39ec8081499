// Package calendar mirrors the remote per-date emotion store into the two maps the
// calendar view renders from.
//
// Edits are write-then-reflect: a map changes only after the store accepted the
// write. Every remote failure is logged, handed to the Alerter and returned; the
// maps keep their pre-failure state.
package calendar

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/terraincognita07/moodlog/internal/client"
	"go.uber.org/zap"
)

const (
	DotColor      = "#FF6347"
	SelectedColor = "#FFEBB2"
)

var (
	ErrMissingUserID = errors.New("userId가 없습니다")
	ErrMissingDate   = errors.New("date is required")
)

// Store is the slice of the API client the model needs.
type Store interface {
	FetchCalendarEntries(ctx context.Context) ([]client.CalendarEntry, error)
	SaveCalendarEntry(ctx context.Context, userID string, entry client.CalendarEntry) (client.CalendarEntry, error)
	DeleteCalendarEntry(ctx context.Context, date string) error
	PatchCalendarComment(ctx context.Context, userID string, date string, comment string) (client.CalendarEntry, error)
}

// UserIDSource reports the logged in user. The session store satisfies it.
type UserIDSource interface {
	UserID() (string, bool)
}

type MarkedDate struct {
	Marked        bool
	Emoji         string
	Selected      bool
	DotColor      string
	SelectedColor string
}

// EditBuffer holds the date being edited and what is already stored for it.
type EditBuffer struct {
	Date    string
	Comment string
	Emoji   string
}

type Model struct {
	store    Store
	sessions UserIDSource
	alerter  Alerter
	logger   *zap.Logger

	mu          sync.Mutex
	comments    map[string][]string
	markedDates map[string]MarkedDate
	selected    string
	buffer      EditBuffer
}

type Option func(*Model)

func WithAlerter(alerter Alerter) Option {
	return func(model *Model) {
		if alerter != nil {
			model.alerter = alerter
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(model *Model) {
		if logger != nil {
			model.logger = logger
		}
	}
}

func NewModel(store Store, sessions UserIDSource, opts ...Option) *Model {
	model := &Model{
		store:       store,
		sessions:    sessions,
		alerter:     discardAlerter{},
		logger:      zap.NewNop(),
		comments:    map[string][]string{},
		markedDates: map[string]MarkedDate{},
	}
	for _, opt := range opts {
		opt(model)
	}
	return model
}

// Load replaces both maps with the full remote list. The selection survives when
// its date is still present.
func (model *Model) Load(ctx context.Context) error {
	userID, ok := model.sessions.UserID()
	if !ok || strings.TrimSpace(userID) == "" {
		return model.fail(alertLoadFailed, "load", "", client.ErrUnauthenticated)
	}

	entries, err := model.store.FetchCalendarEntries(ctx)
	if err != nil {
		return model.fail(alertLoadFailed, "load", "", err)
	}

	comments := make(map[string][]string, len(entries))
	markedDates := make(map[string]MarkedDate, len(entries))
	for _, entry := range entries {
		if entry.Date == "" {
			continue
		}
		comments[entry.Date] = []string{entry.Comment}
		markedDates[entry.Date] = markedEntry(entry.Emoji, false)
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	model.comments = comments
	model.markedDates = markedDates
	if model.selected != "" {
		if mark, exists := model.markedDates[model.selected]; exists {
			mark.Selected = true
			model.markedDates[model.selected] = mark
			model.buffer = EditBuffer{Date: model.selected, Comment: firstComment(comments[model.selected]), Emoji: mark.Emoji}
		} else {
			model.selected = ""
			model.buffer = EditBuffer{}
		}
	}

	model.logger.Debug("calendar loaded", zap.String("user_id", userID), zap.Int("entries", len(markedDates)))
	return nil
}

// SelectDate marks date as the only selected day and fills the edit buffer from
// whatever is stored for it. No remote call.
func (model *Model) SelectDate(date string) EditBuffer {
	date = strings.TrimSpace(date)

	model.mu.Lock()
	defer model.mu.Unlock()

	model.clearSelectionLocked()
	if date == "" {
		return EditBuffer{}
	}

	mark, exists := model.markedDates[date]
	if !exists {
		mark = MarkedDate{SelectedColor: SelectedColor}
	}
	mark.Selected = true
	model.markedDates[date] = mark
	model.selected = date
	model.buffer = EditBuffer{Date: date, Comment: firstComment(model.comments[date]), Emoji: mark.Emoji}
	return model.buffer
}

// SaveEntry upserts the entry and reflects it locally once the store accepted it.
// Repeated saves are sent as they come.
func (model *Model) SaveEntry(ctx context.Context, userID string, date string, comment string, emoji string) error {
	userID = strings.TrimSpace(userID)
	date = strings.TrimSpace(date)
	if userID == "" {
		return model.fail(alertMissingUserID, "save", date, ErrMissingUserID)
	}
	if date == "" {
		return model.fail(alertMissingDate, "save", date, ErrMissingDate)
	}

	saved, err := model.store.SaveCalendarEntry(ctx, userID, client.CalendarEntry{Date: date, Comment: comment, Emoji: emoji})
	if err != nil {
		return model.fail(alertSaveFailed, "save", date, err)
	}
	if saved.Date != date {
		saved = client.CalendarEntry{Date: date, Comment: comment, Emoji: emoji}
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	model.comments[date] = []string{saved.Comment}
	mark := model.markedDates[date]
	model.markedDates[date] = markedEntry(saved.Emoji, mark.Selected)
	if model.selected == date {
		model.buffer = EditBuffer{Date: date, Comment: saved.Comment, Emoji: saved.Emoji}
	}
	return nil
}

// UpdateComment replaces the comment of an existing entry and leaves its emoji alone.
func (model *Model) UpdateComment(ctx context.Context, date string, comment string) error {
	date = strings.TrimSpace(date)
	if date == "" {
		return model.fail(alertMissingDate, "update comment", date, ErrMissingDate)
	}
	userID, ok := model.sessions.UserID()
	if !ok || strings.TrimSpace(userID) == "" {
		return model.fail(alertMissingUserID, "update comment", date, ErrMissingUserID)
	}

	patched, err := model.store.PatchCalendarComment(ctx, userID, date, comment)
	if err != nil {
		return model.fail(alertCommentFailed, "update comment", date, err)
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	model.comments[date] = []string{patched.Comment}
	mark := model.markedDates[date]
	emoji := mark.Emoji
	if patched.Emoji != "" {
		emoji = patched.Emoji
	}
	model.markedDates[date] = markedEntry(emoji, mark.Selected)
	if model.selected == date {
		model.buffer = EditBuffer{Date: date, Comment: patched.Comment, Emoji: emoji}
	}
	return nil
}

// DeleteEntry removes date from the store and then from both maps.
func (model *Model) DeleteEntry(ctx context.Context, date string) error {
	date = strings.TrimSpace(date)
	if date == "" {
		return model.fail(alertMissingDate, "delete", date, ErrMissingDate)
	}

	if err := model.store.DeleteCalendarEntry(ctx, date); err != nil {
		return model.fail(alertDeleteFailed, "delete", date, err)
	}

	model.mu.Lock()
	defer model.mu.Unlock()

	delete(model.comments, date)
	delete(model.markedDates, date)
	if model.selected == date {
		model.selected = ""
		model.buffer = EditBuffer{}
	}
	return nil
}

func (model *Model) Comments() map[string][]string {
	model.mu.Lock()
	defer model.mu.Unlock()

	result := make(map[string][]string, len(model.comments))
	for date, comments := range model.comments {
		result[date] = append([]string(nil), comments...)
	}
	return result
}

func (model *Model) MarkedDates() map[string]MarkedDate {
	model.mu.Lock()
	defer model.mu.Unlock()

	result := make(map[string]MarkedDate, len(model.markedDates))
	for date, mark := range model.markedDates {
		result[date] = mark
	}
	return result
}

func (model *Model) Selected() (string, bool) {
	model.mu.Lock()
	defer model.mu.Unlock()
	return model.selected, model.selected != ""
}

func (model *Model) EditBuffer() EditBuffer {
	model.mu.Lock()
	defer model.mu.Unlock()
	return model.buffer
}

// Entries lists the marked dates in date order. A selected date without a stored
// entry is skipped.
func (model *Model) Entries() []client.CalendarEntry {
	model.mu.Lock()
	defer model.mu.Unlock()

	entries := make([]client.CalendarEntry, 0, len(model.markedDates))
	for date, mark := range model.markedDates {
		if !mark.Marked {
			continue
		}
		entries = append(entries, client.CalendarEntry{Date: date, Comment: firstComment(model.comments[date]), Emoji: mark.Emoji})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

func (model *Model) clearSelectionLocked() {
	for date, mark := range model.markedDates {
		if !mark.Selected {
			continue
		}
		if !mark.Marked {
			delete(model.markedDates, date)
			continue
		}
		mark.Selected = false
		model.markedDates[date] = mark
	}
	model.selected = ""
	model.buffer = EditBuffer{}
}

func (model *Model) fail(kind alertKind, op string, date string, err error) error {
	model.logger.Warn("calendar operation failed",
		zap.String("op", op),
		zap.String("date", date),
		zap.Error(err),
	)
	model.alerter.Alert(kind.alert(err))
	return err
}

func markedEntry(emoji string, selected bool) MarkedDate {
	return MarkedDate{
		Marked:        true,
		Emoji:         emoji,
		Selected:      selected,
		DotColor:      DotColor,
		SelectedColor: SelectedColor,
	}
}

func firstComment(comments []string) string {
	if len(comments) == 0 {
		return ""
	}
	return comments[0]
}
