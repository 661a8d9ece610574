package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/employee-manager/internal/config"
	"github.com/employee-manager/internal/console"
	"github.com/employee-manager/internal/controller"
	"github.com/employee-manager/internal/repository"
	"github.com/employee-manager/internal/service"
	"github.com/employee-manager/internal/storage"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	// Инициализация логгера: консоль занята меню, поэтому пишем в файл
	logOut, closeLog := openLogOutput(cfg.Log.File)
	defer closeLog()

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	// Подключение к БД
	store, err := storage.Open(cfg.Database, logOut)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "Failed to open the database:", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций и демо-данных
	if err := storage.Migrate(ctx, store); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "Failed to prepare the database:", err)
		os.Exit(1)
	}
	if cfg.Database.Seed {
		seeded, err := storage.Seed(ctx, store)
		if err != nil {
			logger.Error("failed to seed database", slog.Any("error", err))
			fmt.Fprintln(os.Stderr, "Failed to load sample data:", err)
			os.Exit(1)
		}
		if seeded {
			logger.Info("sample data loaded")
		}
	}

	// Инициализация репозиториев
	deptRepo := repository.NewDepartmentRepository(store.DB)
	empRepo := repository.NewEmployeeRepository(store.DB)

	// Инициализация сервисов
	deptService := service.NewDepartmentService(deptRepo, empRepo)
	empService := service.NewEmployeeService(empRepo, deptRepo)

	// Инициализация контроллеров
	view := console.New(os.Stdin, os.Stdout)
	router := controller.NewRouter(
		view,
		controller.NewEmployeeController(empService, deptService, view),
		controller.NewDepartmentController(deptService, view),
		controller.NewReportController(empService, view, cfg.Export.Dir),
		logger,
	).Setup()

	// Чтение stdin не прерывается по отмене контекста, поэтому по сигналу выходим сами
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-quit
		logger.Info("session interrupted", slog.String("signal", sig.String()))
		fmt.Fprintln(os.Stdout, "\n\nProgram interrupted by user. Goodbye!")
		cancel()
		_ = store.Close()
		closeLog()
		os.Exit(0)
	}()

	logger.Info("session started", slog.String("driver", store.Driver()))
	if err := router.Run(ctx); err != nil {
		logger.Error("session failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("session finished")
}

// openLogOutput открывает файл лога; если не вышло, пишем в stderr
func openLogOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file %s, logging to stderr: %v\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}
