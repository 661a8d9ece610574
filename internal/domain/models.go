package domain

// HireDateLayout - формат даты найма (YYYY-MM-DD)
const HireDateLayout = "2006-01-02"

// Department представляет отдел
type Department struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	ID           int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string   `json:"name" gorm:"not null"`
	DepartmentID *int64   `json:"department_id" gorm:"index"`
	Salary       *float64 `json:"salary"`
	HireDate     *string  `json:"hire_date"`

	// DepartmentName заполняется только при чтении через LEFT JOIN
	DepartmentName *string `json:"department_name,omitempty" gorm:"->;-:migration"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// DepartmentStats - агрегаты по одному отделу
type DepartmentStats struct {
	DepartmentName string   `json:"department_name"`
	EmployeeCount  int64    `json:"employee_count"`
	AverageSalary  *float64 `json:"avg_salary"`
}

// Statistics - сводная статистика по сотрудникам
type Statistics struct {
	TotalEmployees int64             `json:"total_employees"`
	AverageSalary  *float64          `json:"average_salary"`
	MinSalary      *float64          `json:"min_salary"`
	MaxSalary      *float64          `json:"max_salary"`
	ByDepartment   []DepartmentStats `json:"by_department"`
}
