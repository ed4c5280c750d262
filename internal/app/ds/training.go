package ds

// 2. Таблица видов обучения - ТОЛЬКО справочная информация
type TrainingType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);unique;not null"`

	Programs []TrainingProgram `gorm:"foreignKey:TrainingTypeID"`
}

// 3. Таблица программ обучения, каждая принадлежит одному виду обучения
type TrainingProgram struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"type:varchar(200);not null"`
	TrainingTypeID uint   `gorm:"not null;index"`

	TrainingType TrainingType `gorm:"foreignKey:TrainingTypeID"`
}
