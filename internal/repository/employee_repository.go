package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/employee-manager/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error)
	SearchByName(ctx context.Context, term string) ([]domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, id int64, columns map[string]any) error
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// withDepartment добавляет к выборке имя отдела
func (r *employeeRepository) withDepartment(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Select("employees.*, departments.name AS department_name").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id")
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.withDepartment(ctx).Order("employees.id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.withDepartment(ctx).Where("employees.id = ?", id).Take(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.withDepartment(ctx).
		Where("employees.department_id = ?", departmentID).
		Order("employees.id ASC").
		Find(&employees).Error
	return employees, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchByName ищет подстроку в имени без учёта регистра.
// Обе стороны сравнения приводятся к нижнему регистру в БД.
func (r *employeeRepository) SearchByName(ctx context.Context, term string) ([]domain.Employee, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var employees []domain.Employee
	err := r.withDepartment(ctx).
		Where(`LOWER(employees.name) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("employees.id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	if err := r.db.WithContext(ctx).Create(emp).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update меняет только переданные колонки
func (r *employeeRepository) Update(ctx context.Context, id int64, columns map[string]any) error {
	if len(columns) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

type overallStats struct {
	TotalEmployees int64
	AverageSalary  *float64
	MinSalary      *float64
	MaxSalary      *float64
}

func (r *employeeRepository) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var overall overallStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_employees,
			AVG(salary) AS average_salary,
			MIN(salary) AS min_salary,
			MAX(salary) AS max_salary
		FROM employees
	`).Scan(&overall).Error
	if err != nil {
		return nil, err
	}

	var byDept []domain.DepartmentStats
	err = r.db.WithContext(ctx).Raw(`
		SELECT
			d.name AS department_name,
			COUNT(e.id) AS employee_count,
			AVG(e.salary) AS average_salary
		FROM departments d
		LEFT JOIN employees e ON d.id = e.department_id
		GROUP BY d.id, d.name
		ORDER BY employee_count DESC, d.name ASC
	`).Scan(&byDept).Error
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{
		TotalEmployees: overall.TotalEmployees,
		AverageSalary:  overall.AverageSalary,
		MinSalary:      overall.MinSalary,
		MaxSalary:      overall.MaxSalary,
		ByDepartment:   byDept,
	}, nil
}
