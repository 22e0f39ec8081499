package api

import (
	"github.com/terraincognita07/moodlog/internal/models"
	"github.com/terraincognita07/moodlog/internal/services"
)

type registerInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Username string `json:"username" form:"username"`
}

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type calendarEntryInput struct {
	Date    string `json:"date" form:"date"`
	Comment string `json:"comment" form:"comment"`
	Emoji   string `json:"emoji" form:"emoji"`
}

type profileInput struct {
	Username string `json:"username" form:"username"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type deleteAccountInput struct {
	Password string `json:"password" form:"password"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token    string `json:"token"`
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type calendarEntryResponse struct {
	Date    string `json:"date"`
	Comment string `json:"comment"`
	Emoji   string `json:"emoji"`
}

type emotionStatsResponse struct {
	UserID   uint                  `json:"userId"`
	Total    int                   `json:"total"`
	Counts   []models.EmotionCount `json:"counts"`
	TopEmoji string                `json:"topEmoji"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{ID: user.ID, Email: user.Email, Username: user.Username}
}

func newCalendarEntryResponse(entry models.CalendarEntry) calendarEntryResponse {
	return calendarEntryResponse{Date: entry.Date, Comment: entry.Comment, Emoji: entry.Emoji}
}

func newCalendarEntryResponses(entries []models.CalendarEntry) []calendarEntryResponse {
	responses := make([]calendarEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, newCalendarEntryResponse(entry))
	}
	return responses
}

func newEmotionStatsResponse(stats services.EmotionStats) emotionStatsResponse {
	counts := stats.Counts
	if counts == nil {
		counts = []models.EmotionCount{}
	}
	return emotionStatsResponse{
		UserID:   stats.UserID,
		Total:    stats.Total,
		Counts:   counts,
		TopEmoji: stats.TopEmoji,
	}
}
