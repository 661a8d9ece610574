package storage

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/employee-manager/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store владеет подключением к БД. Экземпляр передаётся явно в репозитории,
// глобального подключения нет.
type Store struct {
	DB     *gorm.DB
	driver string
}

// Open открывает БД выбранного драйвера. logOut получает предупреждения GORM.
func Open(cfg config.DatabaseConfig, logOut io.Writer) (*Store, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.New(log.New(logOut, "", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := connectPostgres(cfg, gormCfg)
		if err != nil {
			return nil, err
		}
		return &Store{DB: db, driver: cfg.Driver}, nil
	default:
		return openSQLite(cfg.DSN(), gormCfg)
	}
}

// OpenSQLite открывает SQLite по пути (":memory:" для временной БД)
func OpenSQLite(path string) (*Store, error) {
	return openSQLite(config.SQLiteDSN(path), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
}

func openSQLite(dsn string, gormCfg *gorm.Config) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	// Однопользовательская сессия; одно соединение также держит :memory: БД живой
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{DB: db, driver: config.DriverSQLite}, nil
}

func connectPostgres(cfg config.DatabaseConfig, gormCfg *gorm.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < 30; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err == nil {
			sqlDB, _ := db.DB()
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
}

// Driver возвращает имя драйвера (sqlite или postgres)
func (s *Store) Driver() string {
	return s.driver
}

// Close освобождает пул соединений
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
