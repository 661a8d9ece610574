package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/employee-manager/internal/domain"
	"github.com/employee-manager/internal/dto"
	"github.com/employee-manager/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64, confirmed bool) (*domain.Employee, error)
	Search(ctx context.Context, term string) ([]domain.Employee, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	input    *inputValidator
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, deptRepo repository.DepartmentRepository) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		deptRepo: deptRepo,
		input:    newInputValidator(),
	}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	name, err := s.input.name("employee name", req.Name)
	if err != nil {
		return nil, err
	}

	deptID, err := s.input.departmentRef(req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureDepartment(ctx, deptID); err != nil {
		return nil, err
	}

	salary, err := s.input.salary(req.Salary)
	if err != nil {
		return nil, err
	}

	hireDate, err := s.input.hireDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		Name:         name,
		DepartmentID: deptID,
		Salary:       salary,
		HireDate:     hireDate,
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return s.empRepo.GetByID(ctx, emp.ID)
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	changes, err := s.validateChanges(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.empRepo.Update(ctx, id, changes.Columns()); err != nil {
		return nil, err
	}

	return s.empRepo.GetByID(ctx, id)
}

// validateChanges проверяет только те поля, которые пользователь решил изменить
func (s *employeeService) validateChanges(ctx context.Context, req *dto.UpdateEmployeeRequest) (*dto.EmployeeChanges, error) {
	changes := &dto.EmployeeChanges{}

	if req.Name != nil {
		name, err := s.input.name("employee name", *req.Name)
		if err != nil {
			return nil, err
		}
		changes.Name = &name
	}

	if req.DepartmentID != nil {
		deptID, err := s.input.departmentRef(*req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if err := s.ensureDepartment(ctx, deptID); err != nil {
			return nil, err
		}
		changes.DepartmentID = &deptID
	}

	if req.Salary != nil {
		salary, err := s.input.salary(*req.Salary)
		if err != nil {
			return nil, err
		}
		changes.Salary = &salary
	}

	if req.HireDate != nil {
		hireDate, err := s.input.hireDate(*req.HireDate)
		if err != nil {
			return nil, err
		}
		changes.HireDate = &hireDate
	}

	return changes, nil
}

// ensureDepartment проверяет, что указанный отдел существует
func (s *employeeService) ensureDepartment(ctx context.Context, deptID *int64) error {
	if deptID == nil {
		return nil
	}
	if _, err := s.deptRepo.GetByID(ctx, *deptID); err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			return fmt.Errorf("%w: department %d does not exist", domain.ErrInvalidReference, *deptID)
		}
		return err
	}
	return nil
}

func (s *employeeService) Delete(ctx context.Context, id int64, confirmed bool) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !confirmed {
		return nil, domain.ErrNotConfirmed
	}

	if err := s.empRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Search(ctx context.Context, term string) ([]domain.Employee, error) {
	term, err := s.input.searchTerm(term)
	if err != nil {
		return nil, err
	}
	return s.empRepo.SearchByName(ctx, term)
}

func (s *employeeService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return s.empRepo.Statistics(ctx)
}
