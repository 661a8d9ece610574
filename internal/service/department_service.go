package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/employee-manager/internal/domain"
	"github.com/employee-manager/internal/dto"
	"github.com/employee-manager/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64, confirmed bool) (*domain.Department, error)
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
	input    *inputValidator
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, empRepo repository.EmployeeRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		empRepo:  empRepo,
		input:    newInputValidator(),
	}
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.List(ctx)
}

// GetByID возвращает отдел вместе с его сотрудниками
func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByIDWithEmployees(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	name, err := s.input.name("department name", req.Name)
	if err != nil {
		return nil, err
	}

	// Проверяем уникальность имени
	exists, err := s.deptRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateDepartmentName, name)
	}

	dept := &domain.Department{Name: name}
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	name, err := s.input.name("department name", req.Name)
	if err != nil {
		return nil, err
	}

	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Имя может совпадать только с собственным
	exists, err := s.deptRepo.ExistsByName(ctx, name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateDepartmentName, name)
	}

	if err := s.deptRepo.Update(ctx, id, name); err != nil {
		return nil, err
	}

	dept.Name = name
	return dept, nil
}

// Delete удаляет отдел только если в нём нет сотрудников
func (s *departmentService) Delete(ctx context.Context, id int64, confirmed bool) (*domain.Department, error) {
	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.deptRepo.CountEmployees(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %d employee(s) are still assigned to %q", domain.ErrHasDependents, count, dept.Name)
	}

	if !confirmed {
		return nil, domain.ErrNotConfirmed
	}

	if err := s.deptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: employees are still assigned to %q", domain.ErrHasDependents, dept.Name)
		}
		return nil, err
	}

	return dept, nil
}
