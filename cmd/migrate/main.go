package main

import (
	"log"

	"trainingcenter/internal/app/ds"
	"trainingcenter/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.TrainingType{},
		&ds.TrainingProgram{},
		&ds.Application{},
		&ds.ApplicationService{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	// Начальное наполнение справочников
	if err := seedTrainingCatalog(db); err != nil {
		log.Fatalf("Failed to seed training catalog: %v", err)
	}

	log.Println("Training catalog seeded successfully")
}

// seedTrainingCatalog заполняет справочники видов и программ обучения.
// Повторный запуск безопасен: существующие записи не трогаются.
func seedTrainingCatalog(db *gorm.DB) error {
	types := []ds.TrainingType{
		{ID: 1, Name: "Профессиональное обучение"},
		{ID: 2, Name: "Повышение квалификации"},
		{ID: 3, Name: "Охрана труда"},
	}

	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error
	if err != nil {
		return err
	}

	programs := []ds.TrainingProgram{
		{ID: 1, Name: "Электромонтёр по ремонту и обслуживанию электрооборудования", TrainingTypeID: 1},
		{ID: 2, Name: "Слесарь по ремонту автомобилей", TrainingTypeID: 1},
		{ID: 3, Name: "Стропальщик", TrainingTypeID: 1},
		{ID: 4, Name: "Работы на высоте", TrainingTypeID: 2},
		{ID: 5, Name: "Электробезопасность", TrainingTypeID: 2},
		{ID: 6, Name: "Охрана труда для руководителей и специалистов", TrainingTypeID: 3},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&programs).Error
}
