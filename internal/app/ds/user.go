package ds

// 1. Таблица пользователей (идентификатор — Telegram ID клиента)
type User struct {
	TelegramID int64  `gorm:"primaryKey"`
	FirstName  string `gorm:"type:varchar(100);not null"`
	Username   string `gorm:"type:varchar(100)"` // Telegram username, может отсутствовать

	Applications []Application `gorm:"foreignKey:UserID"`
}
