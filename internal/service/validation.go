package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/employee-manager/internal/domain"
	"github.com/go-playground/validator/v10"
)

// inputValidator проверяет сырые строки, введённые пользователем
type inputValidator struct {
	validate *validator.Validate
}

func newInputValidator() *inputValidator {
	return &inputValidator{validate: validator.New()}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// name - обязательное непустое имя
func (v *inputValidator) name(field, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := v.validate.Var(name, "required"); err != nil {
		return "", invalidInput("%s is required", field)
	}
	return name, nil
}

// maxSearchTermLength ограничивает шаблон LIKE (в SQLite он не длиннее 50000 байт)
const maxSearchTermLength = 200

// searchTerm - непустая подстрока для поиска по имени
func (v *inputValidator) searchTerm(raw string) (string, error) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return "", invalidInput("search term cannot be empty")
	}
	if err := v.validate.Var(term, fmt.Sprintf("max=%d", maxSearchTermLength)); err != nil {
		return "", invalidInput("search term must be at most %d characters", maxSearchTermLength)
	}
	return term, nil
}

// departmentRef разбирает ID отдела; пустая строка - без отдела
func (v *inputValidator) departmentRef(raw string) (*int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if err := v.validate.Var(s, "number"); err != nil {
		return nil, invalidInput("department id %q must be a whole number", s)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, invalidInput("department id %q is out of range", s)
	}
	return &id, nil
}

// salary разбирает зарплату; пустая строка - не задана
func (v *inputValidator) salary(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if err := v.validate.Var(s, "numeric"); err != nil {
		return nil, invalidInput("salary %q is not a number", s)
	}
	salary, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, invalidInput("salary %q is not a number", s)
	}
	if salary < 0 {
		return nil, invalidInput("salary must be non-negative")
	}
	return &salary, nil
}

// hireDate проверяет формат YYYY-MM-DD; пустая строка - не задана
func (v *inputValidator) hireDate(raw string) (*string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if err := v.validate.Var(s, "datetime="+domain.HireDateLayout); err != nil {
		return nil, invalidInput("hire date %q must use the YYYY-MM-DD format", s)
	}
	return &s, nil
}
