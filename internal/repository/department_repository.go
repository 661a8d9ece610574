package repository

import (
	"context"
	"errors"

	"github.com/employee-manager/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с отделами
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	CountEmployees(ctx context.Context, id int64) (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).
		Preload("Employees", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}

	for i := range dept.Employees {
		dept.Employees[i].DepartmentName = &dept.Name
	}
	return &dept, nil
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	if err := r.db.WithContext(ctx).Create(dept).Error; err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *departmentRepository) Update(ctx context.Context, id int64, name string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return r.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	if result.Error != nil {
		return r.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// ExistsByName проверяет точное совпадение имени, исключая отдел excludeID
func (r *departmentRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Department{}).Where("name = ?", name)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) CountEmployees(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("department_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *departmentRepository) translate(err error) error {
	err = translateError(err)
	if errors.Is(err, domain.ErrDuplicateName) {
		return domain.ErrDuplicateDepartmentName
	}
	return err
}
