package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost   string
	ServicePort   int
	OfferTemplate string // путь к docx-шаблону коммерческого предложения
	Redis         RedisConfig
	Minio         MinioConfig
	Telegram      TelegramConfig
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type TelegramConfig struct {
	Token     string
	AdminID   int64  // чат администратора для уведомлений о заявках
	WebAppURL string // адрес мини-приложения для кнопок в сообщениях
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"

	envBotToken = "BOT_TOKEN"
	envAdminID  = "ADMIN_ID"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// инициализация Redis конфигурации из env
	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// инициализация MinIO конфигурации из env
	cfg.Minio.Endpoint = os.Getenv(envMinioEndpoint)
	cfg.Minio.AccessKey = os.Getenv(envMinioAccessKey)
	cfg.Minio.SecretKey = os.Getenv(envMinioSecretKey)
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "commercial-offers"
	}

	// инициализация Telegram конфигурации из env
	cfg.Telegram.Token = os.Getenv(envBotToken)
	if adminID := os.Getenv(envAdminID); adminID != "" {
		cfg.Telegram.AdminID, err = strconv.ParseInt(adminID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("admin id must be int value: %w", err)
		}
	}

	if cfg.OfferTemplate == "" {
		cfg.OfferTemplate = "resources/offer_template.docx"
	}

	log.Info("config parsed")

	return cfg, nil
}
