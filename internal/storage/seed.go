package storage

import (
	"context"
	"fmt"

	"github.com/employee-manager/internal/domain"
	"gorm.io/gorm"
)

type seedEmployee struct {
	name       string
	department string
	salary     float64
	hireDate   string
}

var seedDepartments = []string{"HR", "Engineering", "Sales"}

var seedEmployees = []seedEmployee{
	{"Alice Smith", "HR", 60000, "2020-01-15"},
	{"Bob Johnson", "Engineering", 80000, "2019-03-22"},
	{"Carol Lee", "Engineering", 95000, "2018-07-10"},
	{"David Kim", "Sales", 55000, "2021-11-01"},
	{"Eva Brown", "HR", 62000, "2022-05-18"},
}

// Seed заполняет пустую БД демонстрационными данными.
// Возвращает true, если данные были добавлены.
func Seed(ctx context.Context, s *Store) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&domain.Department{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count departments: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]int64, len(seedDepartments))
		for _, name := range seedDepartments {
			dept := &domain.Department{Name: name}
			if err := tx.Create(dept).Error; err != nil {
				return fmt.Errorf("create department %q: %w", name, err)
			}
			ids[name] = dept.ID
		}

		for _, e := range seedEmployees {
			deptID := ids[e.department]
			salary := e.salary
			hireDate := e.hireDate
			emp := &domain.Employee{
				Name:         e.name,
				DepartmentID: &deptID,
				Salary:       &salary,
				HireDate:     &hireDate,
			}
			if err := tx.Create(emp).Error; err != nil {
				return fmt.Errorf("create employee %q: %w", e.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
