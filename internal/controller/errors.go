package controller

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/employee-manager/internal/domain"
	"github.com/employee-manager/internal/middleware"
)

// handleServiceError показывает ошибку пользователю.
// Возвращает false, если сессию нужно завершить.
func handleServiceError(view View, logger *slog.Logger, err error) bool {
	switch {
	case errors.Is(err, io.EOF):
		return false
	case errors.Is(err, domain.ErrNotConfirmed):
		view.Info("Operation cancelled.")
	case errors.Is(err, domain.ErrInvalidInput):
		view.Error(withDetail("Invalid input", err, domain.ErrInvalidInput))
	case errors.Is(err, domain.ErrInvalidReference):
		view.Error(withDetail("Invalid reference", err, domain.ErrInvalidReference))
	case errors.Is(err, domain.ErrEmployeeNotFound):
		view.Error("Employee not found.")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		view.Error("Department not found.")
	case errors.Is(err, domain.ErrDuplicateName):
		view.Error(withDetail("A department with this name already exists", err, domain.ErrDuplicateDepartmentName))
	case errors.Is(err, domain.ErrHasDependents):
		view.Error(withDetail("Cannot delete department", err, domain.ErrHasDependents))
	case errors.Is(err, domain.ErrForeignKeyViolation):
		view.Error("The referenced department no longer exists.")
	case errors.Is(err, middleware.ErrRecovered):
		view.Error("An unexpected error occurred. See the log for details.")
	default:
		logger.Error("internal error", slog.Any("error", err))
		view.Error("An unexpected error occurred. See the log for details.")
	}
	return true
}

// withDetail дополняет сообщение подробностями из обёрнутой ошибки
func withDetail(message string, err, kind error) string {
	detail := strings.TrimPrefix(err.Error(), kind.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" || detail == err.Error() {
		return message + "."
	}
	return message + ": " + detail
}

// askID запрашивает числовой идентификатор
func askID(view View, prompt string) (int64, error) {
	raw, err := view.Ask(prompt)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", domain.ErrInvalidInput, raw)
	}
	return id, nil
}
