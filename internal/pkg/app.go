package pkg

import (
	"context"
	"fmt"

	"trainingcenter/internal/app/config"
	"trainingcenter/internal/app/dsn"
	"trainingcenter/internal/app/handler"
	"trainingcenter/internal/app/lifecycle"
	"trainingcenter/internal/app/lookup"
	"trainingcenter/internal/app/notify"
	"trainingcenter/internal/app/offer"
	"trainingcenter/internal/app/redis"
	"trainingcenter/internal/app/repository"
	"trainingcenter/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config   *config.Config
	Router   *gin.Engine
	Handler  *handler.Handler
	Notifier *notify.TelegramNotifier
}

// NewApp собирает все зависимости сервиса. Redis и MinIO необязательны:
// без них сервис работает, теряя кэш справочников и архив предложений.
func NewApp(ctx context.Context, cfg *config.Config) (*Application, error) {
	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		return nil, fmt.Errorf("failed to init repository: %w", err)
	}

	var cache lookup.Cache
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Warnf("redis unavailable, lookup cache disabled: %v", err)
	} else {
		cache = redisClient
	}

	var offerStorage lifecycle.OfferStorage
	minioClient, err := storage.NewMinIOClient(cfg.Minio)
	if err != nil {
		logrus.Warnf("minio unavailable, offer archive disabled: %v", err)
	} else {
		offerStorage = minioClient
	}

	notifier, err := notify.NewTelegramNotifier(cfg.Telegram)
	if err != nil {
		return nil, fmt.Errorf("failed to init notifier: %w", err)
	}

	resolver := lookup.New(repo, cache)
	renderer := offer.NewRenderer(cfg.OfferTemplate)
	manager := lifecycle.New(repo, resolver, renderer, notifier, offerStorage, cfg.Telegram.AdminID)

	notifier.RegisterHandlers(manager)

	return &Application{
		Config:   cfg,
		Router:   gin.Default(),
		Handler:  handler.New(repo, manager),
		Notifier: notifier,
	}, nil
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	go a.Notifier.Start()
	defer a.Notifier.Stop()

	a.Handler.RegisterRoutes(a.Router)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
