package ds

import "time"

// 4. Таблица заявок на коммерческое предложение
type Application struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      int64     `gorm:"not null;index"` // Telegram ID клиента
	CompanyName string    `gorm:"type:varchar(200);not null"`
	PhoneNumber string    `gorm:"type:varchar(20);not null"` // +7XXXXXXXXXX или 8XXXXXXXXXX
	Email       string    `gorm:"type:varchar(100);not null"`
	Status      string    `gorm:"type:varchar(50);not null"` // "In-Progress" или "Priced: <сумма>"
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time

	User     User                 `gorm:"foreignKey:UserID"`
	Services []ApplicationService `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

// 5. Таблица услуг в заявке (строки заявки)
type ApplicationService struct {
	ID                uint    `gorm:"primaryKey"`
	ApplicationID     uint    `gorm:"not null;index"`
	TrainingTypeID    uint    `gorm:"not null"`
	TrainingProgramID uint    `gorm:"not null"`
	TrainingRank      *string `gorm:"type:varchar(50)"` // Разряд обучения, опциональный
	PeopleCount       int     `gorm:"type:int;not null"`
	// Заполняются только после расчёта стоимости администратором
	Price     *int64 `gorm:"type:bigint"`
	LineTotal *int64 `gorm:"type:bigint"`

	Application     Application     `gorm:"foreignKey:ApplicationID"`
	TrainingType    TrainingType    `gorm:"foreignKey:TrainingTypeID"`
	TrainingProgram TrainingProgram `gorm:"foreignKey:TrainingProgramID"`
}
