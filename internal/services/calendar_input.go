package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/moodlog/internal/models"
)

const (
	MaxCalendarCommentLength = 2000
	MaxCalendarEmojiLength   = 32
)

var ErrInvalidCalendarDate = errors.New("invalid calendar date")

type CalendarEntryInput struct {
	Date    string
	Comment string
	Emoji   string
}

func NormalizeCalendarEntryInput(input CalendarEntryInput) (CalendarEntryInput, error) {
	date, err := NormalizeCalendarDate(input.Date)
	if err != nil {
		return input, err
	}
	input.Date = date
	input.Comment = TrimCalendarComment(input.Comment)
	input.Emoji = TrimCalendarEmoji(input.Emoji)
	return input, nil
}

// NormalizeCalendarDate accepts only the canonical YYYY-MM-DD form of a real day.
func NormalizeCalendarDate(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil || parsed.Format(models.DateLayout) != value {
		return "", ErrInvalidCalendarDate
	}
	return value, nil
}

func TrimCalendarComment(value string) string {
	return truncateUTF8(value, MaxCalendarCommentLength)
}

func TrimCalendarEmoji(value string) string {
	return truncateUTF8(strings.TrimSpace(value), MaxCalendarEmojiLength)
}

func truncateUTF8(value string, maxBytes int) string {
	if len(value) <= maxBytes {
		return value
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}
