package services

import (
	"errors"

	"github.com/terraincognita07/moodlog/internal/models"
)

var (
	ErrCalendarLoadFailed    = errors.New("load calendar failed")
	ErrCalendarSaveFailed    = errors.New("save calendar entry failed")
	ErrCalendarUpdateFailed  = errors.New("update calendar comment failed")
	ErrCalendarDeleteFailed  = errors.New("delete calendar entry failed")
	ErrCalendarEntryNotFound = errors.New("calendar entry not found")
)

type CalendarEntryRepository interface {
	ListByUser(userID uint) ([]models.CalendarEntry, error)
	FindByUserAndDate(userID uint, date string) (models.CalendarEntry, bool, error)
	Upsert(entry *models.CalendarEntry) error
	UpdateComment(userID uint, date string, comment string) (bool, error)
	DeleteByUserAndDate(userID uint, date string) (bool, error)
	CountEmojiByUser(userID uint) ([]models.EmotionCount, error)
}

type CalendarService struct {
	entries CalendarEntryRepository
}

func NewCalendarService(entries CalendarEntryRepository) *CalendarService {
	return &CalendarService{entries: entries}
}

func (service *CalendarService) ListEntries(userID uint) ([]models.CalendarEntry, error) {
	entries, err := service.entries.ListByUser(userID)
	if err != nil {
		return nil, ErrCalendarLoadFailed
	}
	return entries, nil
}

// SaveEntry replaces whatever the user had stored for the date.
func (service *CalendarService) SaveEntry(userID uint, input CalendarEntryInput) (models.CalendarEntry, error) {
	normalized, err := NormalizeCalendarEntryInput(input)
	if err != nil {
		return models.CalendarEntry{}, err
	}

	entry := models.CalendarEntry{
		UserID:  userID,
		Date:    normalized.Date,
		Comment: normalized.Comment,
		Emoji:   normalized.Emoji,
	}
	if err := service.entries.Upsert(&entry); err != nil {
		return models.CalendarEntry{}, ErrCalendarSaveFailed
	}

	stored, found, err := service.entries.FindByUserAndDate(userID, normalized.Date)
	if err != nil || !found {
		return models.CalendarEntry{}, ErrCalendarSaveFailed
	}
	return stored, nil
}

func (service *CalendarService) UpdateComment(userID uint, rawDate string, comment string) (models.CalendarEntry, error) {
	date, err := NormalizeCalendarDate(rawDate)
	if err != nil {
		return models.CalendarEntry{}, err
	}

	updated, err := service.entries.UpdateComment(userID, date, TrimCalendarComment(comment))
	if err != nil {
		return models.CalendarEntry{}, ErrCalendarUpdateFailed
	}
	if !updated {
		return models.CalendarEntry{}, ErrCalendarEntryNotFound
	}

	stored, found, err := service.entries.FindByUserAndDate(userID, date)
	if err != nil {
		return models.CalendarEntry{}, ErrCalendarUpdateFailed
	}
	if !found {
		return models.CalendarEntry{}, ErrCalendarEntryNotFound
	}
	return stored, nil
}

func (service *CalendarService) DeleteEntry(userID uint, rawDate string) error {
	date, err := NormalizeCalendarDate(rawDate)
	if err != nil {
		return err
	}

	deleted, err := service.entries.DeleteByUserAndDate(userID, date)
	if err != nil {
		return ErrCalendarDeleteFailed
	}
	if !deleted {
		return ErrCalendarEntryNotFound
	}
	return nil
}
