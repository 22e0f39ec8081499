package models

import "time"

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

type CalendarEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_calendar_user_date"`
	Date      string    `gorm:"type:text;not null;uniqueIndex:uidx_calendar_user_date"`
	Comment   string    `gorm:"not null;default:''"`
	Emoji     string    `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmotionCount is the number of entries carrying one emoji.
type EmotionCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}
