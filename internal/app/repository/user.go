package repository

import (
	"trainingcenter/internal/app/ds"

	"gorm.io/gorm/clause"
)

// Методы для пользователей

// GetUserByTelegramID возвращает пользователя или ErrNotFound.
func (r *Repository) GetUserByTelegramID(telegramID int64) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, "telegram_id = ?", telegramID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// UpsertUser регистрирует пользователя либо обновляет имя и username,
// если он уже известен (повторный /start в боте).
func (r *Repository) UpsertUser(telegramID int64, firstName, username string) (*ds.User, error) {
	user := ds.User{
		TelegramID: telegramID,
		FirstName:  firstName,
		Username:   username,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_name", "username"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}
