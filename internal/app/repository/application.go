package repository

import (
	"fmt"

	"trainingcenter/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с заявками

// Структура услуги в заявке с уже разрешёнными названиями справочников
type ServiceInApplication struct {
	TrainingType    string
	TrainingProgram string
	TrainingRank    string // пустая строка — разряд не указан
	PeopleCount     int
	Price           *int64
	LineTotal       *int64
}

// Представление заявки для выдачи наружу: вместо ID справочников — названия
type ApplicationView struct {
	ID          uint
	UserID      int64
	CompanyName string
	PhoneNumber string
	Email       string
	Status      string
	Services    []ServiceInApplication
}

// ServicePrice — введённая администратором цена и рассчитанная стоимость
// одной строки заявки, в порядке следования строк.
type ServicePrice struct {
	Price     int64
	LineTotal int64
}

// CreateApplication атомарно создаёт заявку вместе со всеми её услугами.
// При любой ошибке транзакция откатывается целиком: частично записанная
// заявка невозможна. Возвращает присвоенный ID.
func (r *Repository) CreateApplication(draft *ds.ApplicationDraft) (uint, error) {
	app := ds.Application{
		UserID:      draft.UserID,
		CompanyName: draft.CompanyName,
		PhoneNumber: draft.PhoneNumber,
		Email:       draft.Email,
		Status:      ds.NewInProgress().String(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}

		services := make([]ds.ApplicationService, len(draft.Services))
		for i, s := range draft.Services {
			var rank *string
			if s.TrainingRank != "" {
				rankCopy := s.TrainingRank
				rank = &rankCopy
			}
			services[i] = ds.ApplicationService{
				ApplicationID:     app.ID,
				TrainingTypeID:    s.TrainingTypeID,
				TrainingProgramID: s.TrainingProgramID,
				TrainingRank:      rank,
				PeopleCount:       s.PeopleCount,
			}
		}
		return tx.Create(&services).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create application: %w", err)
	}

	return app.ID, nil
}

// GetApplications возвращает заявки с загруженными услугами и названиями
// справочников. В режиме администратора фильтр по пользователю не применяется.
func (r *Repository) GetApplications(userID int64, admin bool) ([]ApplicationView, error) {
	query := r.db.
		Preload("Services").
		Preload("Services.TrainingType").
		Preload("Services.TrainingProgram").
		Order("id")
	if !admin {
		query = query.Where("user_id = ?", userID)
	}

	var apps []ds.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	views := make([]ApplicationView, len(apps))
	for i, app := range apps {
		views[i] = toView(app)
	}
	return views, nil
}

// GetApplicationByID возвращает одну заявку со всеми услугами.
func (r *Repository) GetApplicationByID(id uint) (*ApplicationView, error) {
	var app ds.Application
	err := r.db.
		Preload("Services").
		Preload("Services.TrainingType").
		Preload("Services.TrainingProgram").
		First(&app, id).Error
	if err != nil {
		return nil, translateError(err)
	}

	view := toView(app)
	return &view, nil
}

// MarkPriced проставляет статус с суммой и цены по строкам заявки в одной
// транзакции. Обновляется только заявка, которая ещё в работе: повторный
// расчёт той же заявки даст 0 затронутых строк. Отсутствие заявки ошибкой
// не считается — вызывающий обязан проверить счётчик.
func (r *Repository) MarkPriced(applicationID uint, status string, prices []ServicePrice) (int64, error) {
	var affected int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&ds.Application{}).
			Where("id = ? AND status = ?", applicationID, ds.NewInProgress().String()).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}

		var services []ds.ApplicationService
		if err := tx.Where("application_id = ?", applicationID).Order("id").Find(&services).Error; err != nil {
			return err
		}
		if len(prices) != len(services) {
			return fmt.Errorf("price count %d does not match service count %d", len(prices), len(services))
		}

		for i := range services {
			p := prices[i]
			err := tx.Model(&services[i]).Updates(map[string]interface{}{
				"price":      p.Price,
				"line_total": p.LineTotal,
			}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to mark application priced: %w", err)
	}

	return affected, nil
}

// DeleteApplication удаляет заявку вместе с услугами в одной транзакции.
// Каскад прописан явно, а не оставлен на откуп ORM.
func (r *Repository) DeleteApplication(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", id).Delete(&ds.ApplicationService{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&ds.Application{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CountApplications считает заявки пользователя.
func (r *Repository) CountApplications(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Application{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ApplicationExists проверяет существование заявки.
func (r *Repository) ApplicationExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Application{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func toView(app ds.Application) ApplicationView {
	services := make([]ServiceInApplication, len(app.Services))
	for i, s := range app.Services {
		rank := ""
		if s.TrainingRank != nil {
			rank = *s.TrainingRank
		}
		services[i] = ServiceInApplication{
			TrainingType:    s.TrainingType.Name,
			TrainingProgram: s.TrainingProgram.Name,
			TrainingRank:    rank,
			PeopleCount:     s.PeopleCount,
			Price:           s.Price,
			LineTotal:       s.LineTotal,
		}
	}

	return ApplicationView{
		ID:          app.ID,
		UserID:      app.UserID,
		CompanyName: app.CompanyName,
		PhoneNumber: app.PhoneNumber,
		Email:       app.Email,
		Status:      app.Status,
		Services:    services,
	}
}
