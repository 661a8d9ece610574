package service_test

import (
	"context"
	"sort"
	"strings"

	"github.com/employee-manager/internal/domain"
)

type mockDepartmentRepo struct {
	departments map[int64]*domain.Department
	employees   *mockEmployeeRepo
	nextID      int64
	deleteErr   error
}

func newMockDepartmentRepo(employees *mockEmployeeRepo) *mockDepartmentRepo {
	return &mockDepartmentRepo{
		departments: make(map[int64]*domain.Department),
		employees:   employees,
		nextID:      1,
	}
}

func (m *mockDepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	var result []domain.Department
	for _, dept := range m.departments {
		result = append(result, *dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	if dept, ok := m.departments[id]; ok {
		copied := *dept
		return &copied, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) GetByIDWithEmployees(ctx context.Context, id int64) (*domain.Department, error) {
	dept, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dept.Employees, _ = m.employees.ListByDepartment(ctx, id)
	return dept, nil
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	for _, d := range m.departments {
		if d.Name == dept.Name {
			return domain.ErrDuplicateDepartmentName
		}
	}
	dept.ID = m.nextID
	m.nextID++
	copied := *dept
	m.departments[dept.ID] = &copied
	return nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, id int64, name string) error {
	dept, ok := m.departments[id]
	if !ok {
		return domain.ErrDepartmentNotFound
	}
	dept.Name = name
	return nil
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

func (m *mockDepartmentRepo) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	for _, dept := range m.departments {
		if dept.Name == name && (excludeID == nil || dept.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDepartmentRepo) CountEmployees(ctx context.Context, id int64) (int64, error) {
	emps, _ := m.employees.ListByDepartment(ctx, id)
	return int64(len(emps)), nil
}

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[int64]*domain.Employee),
		nextID:    1,
	}
}

func (m *mockEmployeeRepo) sorted(keep func(*domain.Employee) bool) []domain.Employee {
	var result []domain.Employee
	for _, emp := range m.employees {
		if keep(emp) {
			result = append(result, *emp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	return m.sorted(func(*domain.Employee) bool { return true }), nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := m.employees[id]; ok {
		copied := *emp
		return &copied, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	return m.sorted(func(e *domain.Employee) bool {
		return e.DepartmentID != nil && *e.DepartmentID == departmentID
	}), nil
}

func (m *mockEmployeeRepo) SearchByName(ctx context.Context, term string) ([]domain.Employee, error) {
	term = strings.ToLower(term)
	return m.sorted(func(e *domain.Employee) bool {
		return strings.Contains(strings.ToLower(e.Name), term)
	}), nil
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	m.nextID++
	copied := *emp
	m.employees[emp.ID] = &copied
	return nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id int64, columns map[string]any) error {
	emp, ok := m.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	for col, value := range columns {
		switch col {
		case "name":
			emp.Name = value.(string)
		case "department_id":
			emp.DepartmentID = value.(*int64)
		case "salary":
			emp.Salary = value.(*float64)
		case "hire_date":
			emp.HireDate = value.(*string)
		}
	}
	return nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return &domain.Statistics{TotalEmployees: int64(len(m.employees))}, nil
}

func ptr[T any](v T) *T { return &v }
