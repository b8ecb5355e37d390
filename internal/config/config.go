package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL  string
	MaterialsDir string
	Location     *time.Location
	HTTPAddr     string
	LogLevel     string
	Env          string // dev|prod
	SentryDSN    string
	DBTimeout    time.Duration

	// Учётка администратора для первичного заполнения пустой базы.
	AdminUsername string
	AdminPassword string
	AdminFullName string
	AdminEmail    string
}

func Load() (*Config, error) {
	tz := getenv("TZ", "Europe/Moscow")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	dbTimeout, err := parseDuration(getenv("DB_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("DB_TIMEOUT: %w", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("переменная DATABASE_URL не задана")
	}

	cfg := &Config{
		DatabaseURL:   dsn,
		MaterialsDir:  getenv("MATERIALS_DIR", "./data/materials"),
		Location:      loc,
		HTTPAddr:      getenv("HTTP_ADDR", "127.0.0.1:8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		Env:           getenv("ENV", "dev"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		DBTimeout:     dbTimeout,
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminFullName: getenv("ADMIN_FULL_NAME", "Администратор"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@localhost"),
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseDuration(s string) (time.Duration, error) {
	// допускаем голое число секунд ("5") и обычный формат ("5s", "800ms")
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}
