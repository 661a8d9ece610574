package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы БД
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config содержит настройки приложения
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Export   ExportConfig
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver string
	Path   string
	Seed   bool

	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string
	File  string
}

// ExportConfig - куда складывать выгрузки
type ExportConfig struct {
	Dir string
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
		)
	}
	return SQLiteDSN(c.Path)
}

// SQLiteDSN строит DSN для go-sqlite3 с включёнными внешними ключами
func SQLiteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on"
}

// Load загружает конфигурацию из .env и переменных окружения.
// Все ключи необязательны.
func Load() (*Config, error) {
	_ = godotenv.Load()

	seed, err := strconv.ParseBool(getEnv("DB_SEED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SEED: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Path:     getEnv("DB_PATH", "employees.db"),
			Seed:     seed,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "employees"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "employees.log"),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "."),
		},
	}

	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
