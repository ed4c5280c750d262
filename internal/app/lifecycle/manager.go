package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trainingcenter/internal/app/ds"
	"trainingcenter/internal/app/lookup"
	"trainingcenter/internal/app/offer"
	"trainingcenter/internal/app/pricing"
	"trainingcenter/internal/app/repository"

	"github.com/sirupsen/logrus"
)

// Менеджер жизненного цикла заявки: проведение по состояниям
// In-Progress -> Priced с побочными эффектами (уведомления, документ).
// Все коллабораторы — интерфейсы, чтобы менеджер тестировался без БД,
// Telegram и MinIO.

// ErrAlreadyPriced — заявка уже отработана, повторный расчёт невозможен.
var ErrAlreadyPriced = errors.New("заявка уже отработана")

// Repository — операции хранения, нужные менеджеру.
type Repository interface {
	CreateApplication(draft *ds.ApplicationDraft) (uint, error)
	GetApplications(userID int64, admin bool) ([]repository.ApplicationView, error)
	GetApplicationByID(id uint) (*repository.ApplicationView, error)
	MarkPriced(applicationID uint, status string, prices []repository.ServicePrice) (int64, error)
	GetUserByTelegramID(telegramID int64) (*ds.User, error)
	UpsertUser(telegramID int64, firstName, username string) (*ds.User, error)
}

// Resolver — батч-разрешение ID справочников в названия.
type Resolver interface {
	ResolveNames(ctx context.Context, typeIDs, programIDs []uint) (*lookup.Names, error)
}

// Renderer — сборка документа коммерческого предложения.
type Renderer interface {
	Render(off pricing.Offer, meta offer.Meta, now time.Time) ([]byte, error)
}

// Notifier — отправка сообщений и документов в чат.
type Notifier interface {
	SendText(recipientID int64, text string, withKeyboard bool) error
	SendDocument(recipientID int64, filename string, data []byte) error
}

// OfferStorage — долговременное хранение готовых предложений.
type OfferStorage interface {
	UploadOffer(data []byte, applicationID uint) (string, error)
}

type Manager struct {
	repo     Repository
	resolver Resolver
	renderer Renderer
	notifier Notifier
	storage  OfferStorage
	adminID  int64
	now      func() time.Time
}

func New(repo Repository, resolver Resolver, renderer Renderer, notifier Notifier,
	storage OfferStorage, adminID int64) *Manager {

	return &Manager{
		repo:     repo,
		resolver: resolver,
		renderer: renderer,
		notifier: notifier,
		storage:  storage,
		adminID:  adminID,
		now:      time.Now,
	}
}

// EnsureUser регистрирует клиента перед работой с заявками.
func (m *Manager) EnsureUser(telegramID int64, firstName, username string) (*ds.User, error) {
	return m.repo.UpsertUser(telegramID, firstName, username)
}

// Submit проводит проверенный черновик через создание заявки: названия
// справочников разрешаются до записи (несуществующий ID программы отклоняет
// заявку целиком), заявка с услугами сохраняется атомарно, после чего клиент
// и администратор получают уведомления. Сбой уведомления не откатывает уже
// созданную заявку и только логируется.
func (m *Manager) Submit(ctx context.Context, draft *ds.ApplicationDraft) (uint, error) {
	typeIDs := make([]uint, len(draft.Services))
	programIDs := make([]uint, len(draft.Services))
	for i, s := range draft.Services {
		typeIDs[i] = s.TrainingTypeID
		programIDs[i] = s.TrainingProgramID
	}

	names, err := m.resolver.ResolveNames(ctx, typeIDs, programIDs)
	if err != nil {
		return 0, err
	}

	applicationID, err := m.repo.CreateApplication(draft)
	if err != nil {
		return 0, err
	}
	logrus.Infof("application %d created for user %d", applicationID, draft.UserID)

	user, err := m.repo.GetUserByTelegramID(draft.UserID)
	if err != nil {
		logrus.Warnf("user %d not found for notification: %v", draft.UserID, err)
		user = &ds.User{TelegramID: draft.UserID}
	}

	servicesBlock := composeServicesBlock(draft.Services, names)

	if err := m.notifier.SendText(draft.UserID, userSubmittedMessage(user.FirstName, applicationID, draft.CompanyName, servicesBlock), true); err != nil {
		logrus.Errorf("failed to notify user %d about application %d: %v", draft.UserID, applicationID, err)
	}
	if err := m.notifier.SendText(m.adminID, adminSubmittedMessage(applicationID, draft, user, servicesBlock), true); err != nil {
		logrus.Errorf("failed to notify admin about application %d: %v", applicationID, err)
	}

	return applicationID, nil
}

// ListForUser возвращает заявки, разбитые на активные и отработанные.
// В режиме администратора фильтр по пользователю не применяется.
func (m *Manager) ListForUser(userID int64, admin bool) (active, completed []repository.ApplicationView, err error) {
	apps, err := m.repo.GetApplications(userID, admin)
	if err != nil {
		return nil, nil, err
	}
	active, completed = PartitionByStatus(apps)
	return active, completed, nil
}

// PartitionByStatus делит заявки на активные и отработанные. Разбиение
// тотально: каждая заявка попадает ровно в одну часть, нераспознанные
// статусы считаются отработанными.
func PartitionByStatus(apps []repository.ApplicationView) (active, completed []repository.ApplicationView) {
	active = make([]repository.ApplicationView, 0, len(apps))
	completed = make([]repository.ApplicationView, 0, len(apps))
	for _, app := range apps {
		if ds.ParseStatus(app.Status).IsActive() {
			active = append(active, app)
		} else {
			completed = append(completed, app)
		}
	}
	return active, completed
}

// MarkPriced переводит заявку в статус с суммой. Возвращает число затронутых
// записей: 0 означает, что заявки нет или она уже отработана.
func (m *Manager) MarkPriced(applicationID uint, total int64, prices []repository.ServicePrice) (int64, error) {
	return m.repo.MarkPriced(applicationID, ds.NewPriced(total).String(), prices)
}

// PriceAndGenerateOffer — отработка заявки администратором: расчёт стоимости,
// сборка документа, смена статуса и уведомления. Порядок жёсткий:
// рендер -> запись -> уведомления; сбой шага отменяет все последующие,
// поэтому неудачный рендер не оставляет заявку в статусе Priced.
func (m *Manager) PriceAndGenerateOffer(ctx context.Context, applicationID uint, lines []pricing.Line) error {
	app, err := m.repo.GetApplicationByID(applicationID)
	if err != nil {
		return err
	}
	if !ds.ParseStatus(app.Status).IsActive() {
		return ErrAlreadyPriced
	}

	off, err := pricing.ComputeOffer(lines)
	if err != nil {
		return err
	}

	document, err := m.renderer.Render(off, offer.Meta{
		ApplicationID: app.ID,
		CompanyName:   app.CompanyName,
		PhoneNumber:   app.PhoneNumber,
		Email:         app.Email,
	}, m.now())
	if err != nil {
		return err
	}

	prices := make([]repository.ServicePrice, len(off.Lines))
	for i, line := range off.Lines {
		prices[i] = repository.ServicePrice{Price: line.UnitPrice, LineTotal: line.Total}
	}

	affected, err := m.repo.MarkPriced(applicationID, ds.NewPriced(off.GrandTotal).String(), prices)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyPriced
	}
	logrus.Infof("application %d priced, total %d", applicationID, off.GrandTotal)

	filename := fmt.Sprintf("offer_%d.docx", applicationID)

	if m.storage != nil {
		objectName, err := m.storage.UploadOffer(document, applicationID)
		if err != nil {
			logrus.Errorf("failed to store offer for application %d: %v", applicationID, err)
		} else {
			logrus.Infof("offer for application %d stored as %s", applicationID, objectName)
		}
	}

	if err := m.notifier.SendText(app.UserID, userPricedMessage(applicationID, off.GrandTotal), false); err != nil {
		logrus.Errorf("failed to notify user %d about offer %d: %v", app.UserID, applicationID, err)
	}
	if err := m.notifier.SendDocument(m.adminID, filename, document); err != nil {
		logrus.Errorf("failed to send offer document for application %d: %v", applicationID, err)
	}

	return nil
}
