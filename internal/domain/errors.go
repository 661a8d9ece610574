package domain

import (
	"errors"
	"fmt"
)

// Определение бизнес-ошибок
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidReference    = errors.New("referenced record does not exist")
	ErrDuplicateName       = errors.New("name already exists")
	ErrNotFound            = errors.New("not found")
	ErrHasDependents       = errors.New("record still has dependent records")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")

	// ErrNotConfirmed - пользователь отказался от подтверждения, ничего не изменено
	ErrNotConfirmed = errors.New("operation not confirmed")
)

// Ошибки конкретных сущностей оборачивают общие, чтобы работал errors.Is
var (
	ErrEmployeeNotFound        = fmt.Errorf("employee %w", ErrNotFound)
	ErrDepartmentNotFound      = fmt.Errorf("department %w", ErrNotFound)
	ErrDuplicateDepartmentName = fmt.Errorf("department %w", ErrDuplicateName)
)
