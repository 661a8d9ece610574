package dto

// CreateDepartmentRequest - запрос на создание отдела
type CreateDepartmentRequest struct {
	Name string
}

// UpdateDepartmentRequest - запрос на переименование отдела
type UpdateDepartmentRequest struct {
	Name string
}

// CreateEmployeeRequest - сырые строки, введённые пользователем.
// Пустое необязательное поле означает «не задано».
type CreateEmployeeRequest struct {
	Name         string
	DepartmentID string
	Salary       string
	HireDate     string
}

// UpdateEmployeeRequest - частичное обновление сотрудника.
// nil - поле не меняется, указатель на "" - очистить необязательное поле.
type UpdateEmployeeRequest struct {
	Name         *string
	DepartmentID *string
	Salary       *string
	HireDate     *string
}

// IsEmpty сообщает, что ни одно поле не выбрано для изменения
func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.Name == nil && r.DepartmentID == nil && r.Salary == nil && r.HireDate == nil
}

// EmployeeChanges - проверенные изменения, которые уходят в репозиторий
type EmployeeChanges struct {
	Name         *string
	DepartmentID **int64
	Salary       **float64
	HireDate     **string
}

// Columns возвращает только выбранные колонки для UPDATE
func (c *EmployeeChanges) Columns() map[string]any {
	cols := make(map[string]any)
	if c.Name != nil {
		cols["name"] = *c.Name
	}
	if c.DepartmentID != nil {
		cols["department_id"] = *c.DepartmentID
	}
	if c.Salary != nil {
		cols["salary"] = *c.Salary
	}
	if c.HireDate != nil {
		cols["hire_date"] = *c.HireDate
	}
	return cols
}
