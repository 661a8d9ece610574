package controller

import "github.com/employee-manager/internal/domain"

// View - всё, что контроллерам нужно от консоли: ввод строк и вывод результатов.
// Ask и Confirm возвращают io.EOF, когда ввод закончился.
type View interface {
	Ask(prompt string) (string, error)
	Confirm(prompt string) (bool, error)

	ShowMenu(title string, options []string)
	ShowEmployees(employees []domain.Employee)
	ShowEmployee(employee *domain.Employee)
	ShowDepartments(departments []domain.Department)
	ShowDepartment(department *domain.Department)
	ShowStatistics(stats *domain.Statistics)

	Error(message string)
	Success(message string)
	Info(message string)
}
