package services

import (
	"errors"

	"github.com/terraincognita07/moodlog/internal/models"
)

var ErrEmotionStatsFailed = errors.New("emotion stats failed")

type EmotionStats struct {
	UserID   uint
	Total    int
	Counts   []models.EmotionCount
	TopEmoji string
}

// EmotionStats counts entries per emoji. Entries saved without an emoji are left out.
func (service *CalendarService) EmotionStats(userID uint) (EmotionStats, error) {
	counts, err := service.entries.CountEmojiByUser(userID)
	if err != nil {
		return EmotionStats{}, ErrEmotionStatsFailed
	}
	return BuildEmotionStats(userID, counts), nil
}

// BuildEmotionStats expects counts ordered by count descending, ties by emoji.
func BuildEmotionStats(userID uint, counts []models.EmotionCount) EmotionStats {
	stats := EmotionStats{
		UserID: userID,
		Counts: make([]models.EmotionCount, 0, len(counts)),
	}
	for _, count := range counts {
		if count.Emoji == "" || count.Count <= 0 {
			continue
		}
		stats.Counts = append(stats.Counts, count)
		stats.Total += count.Count
	}
	if len(stats.Counts) > 0 {
		stats.TopEmoji = stats.Counts[0].Emoji
	}
	return stats
}
