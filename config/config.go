package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/esc4n0rx/Integra/pkg/database"

	"go.uber.org/zap"
)

type Config struct {
	Port string
	DB   DB
	SMTP SMTP

	// default recipient for the pick-list email when the request omits one
	DefaultRecipient string

	KafkaBrokers []string
	KafkaTopic   string
}

type DB struct {
	database.Config
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func Load(log *zap.Logger) *Config {
	return &Config{
		Port: getEnv("APP_PORT", log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", log),
			Port:     getEnvInt("SMTP_PORT", log),
			User:     getEnv("SMTP_USER", log),
			Password: getEnv("SMTP_PASSWORD", log),
			From:     getEnv("SMTP_FROM", log),
		},
		DefaultRecipient: os.Getenv("DEFAULT_EMAIL_DESTINATARIO"),
		KafkaBrokers:     splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:       os.Getenv("KAFKA_TOPIC_PEDIDOS"),
	}
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvInt(key string, log *zap.Logger) int {
	valStr := getEnv(key, log)
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Error("Ошибка преобразования переменной окружения в int", zap.String("key", key), zap.Error(err))
		panic("invalid int value for environment variable: " + key)
	}
	return val
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
