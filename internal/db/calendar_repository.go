package db

import (
	"time"

	"github.com/terraincognita07/moodlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalendarRepository struct {
	database *gorm.DB
}

func NewCalendarRepository(database *gorm.DB) *CalendarRepository {
	return &CalendarRepository{database: database}
}

func (repo *CalendarRepository) ListByUser(userID uint) ([]models.CalendarEntry, error) {
	entries := make([]models.CalendarEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CalendarRepository) FindByUserAndDate(userID uint, date string) (models.CalendarEntry, bool, error) {
	entry := models.CalendarEntry{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CalendarEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CalendarEntry{}, false, nil
	}
	return entry, true, nil
}

// Upsert writes comment and emoji for (entry.UserID, entry.Date) in one statement,
// so concurrent writers to the same key resolve as last-write-wins.
func (repo *CalendarRepository) Upsert(entry *models.CalendarEntry) error {
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"comment", "emoji", "updated_at"}),
	}).Create(entry).Error
}

// UpdateComment reports whether a row for (userID, date) existed.
func (repo *CalendarRepository) UpdateComment(userID uint, date string, comment string) (bool, error) {
	result := repo.database.Model(&models.CalendarEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Updates(map[string]any{
			"comment":    comment,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteByUserAndDate reports whether a row was removed.
func (repo *CalendarRepository) DeleteByUserAndDate(userID uint, date string) (bool, error) {
	result := repo.database.Where("user_id = ? AND date = ?", userID, date).Delete(&models.CalendarEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *CalendarRepository) CountEmojiByUser(userID uint) ([]models.EmotionCount, error) {
	counts := make([]models.EmotionCount, 0)
	if err := repo.database.Model(&models.CalendarEntry{}).
		Select("emoji, COUNT(*) AS count").
		Where("user_id = ? AND emoji <> ''", userID).
		Group("emoji").
		Order("count DESC, emoji ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
