package repository

import (
	"errors"
	"strings"

	"github.com/employee-manager/internal/domain"
	"gorm.io/gorm"
)

// translateError приводит нарушения ограничений хранилища к бизнес-ошибкам.
// Сообщения драйвера проверяются на случай, если GORM не перевёл ошибку сам.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "UNIQUE constraint failed"):
		return domain.ErrDuplicateName
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domain.ErrForeignKeyViolation
	}
	return err
}
