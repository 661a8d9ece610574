package controller

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/employee-manager/internal/middleware"
)

// menuItem - пункт меню; submenu открывает вложенное меню
type menuItem struct {
	label   string
	name    string
	action  middleware.ActionFunc
	submenu *menu
}

type menu struct {
	title string
	items []menuItem
	exit  string
}

// Router строит меню и направляет выбор пользователя в контроллеры
type Router struct {
	view        View
	logger      *slog.Logger
	employees   *EmployeeController
	departments *DepartmentController
	reports     *ReportController
	root        *menu
}

// NewRouter создаёт новый роутер
func NewRouter(
	view View,
	employees *EmployeeController,
	departments *DepartmentController,
	reports *ReportController,
	logger *slog.Logger,
) *Router {
	return &Router{
		view:        view,
		logger:      logger,
		employees:   employees,
		departments: departments,
		reports:     reports,
	}
}

// Setup настраивает все меню
func (r *Router) Setup() *Router {
	employeeMenu := &menu{
		title: "Employee Management",
		exit:  "Back to Main Menu",
		items: []menuItem{
			r.item("View All Employees", "list_employees", r.employees.List),
			r.item("View Employee Details", "employee_detail", r.employees.Detail),
			r.item("Add New Employee", "create_employee", r.employees.Create),
			r.item("Update Employee", "update_employee", r.employees.Update),
			r.item("Delete Employee", "delete_employee", r.employees.Delete),
			r.item("Search Employees", "search_employees", r.employees.Search),
		},
	}

	departmentMenu := &menu{
		title: "Department Management",
		exit:  "Back to Main Menu",
		items: []menuItem{
			r.item("View All Departments", "list_departments", r.departments.List),
			r.item("View Department Details", "department_detail", r.departments.Detail),
			r.item("Add New Department", "create_department", r.departments.Create),
			r.item("Rename Department", "update_department", r.departments.Update),
			r.item("Delete Department", "delete_department", r.departments.Delete),
		},
	}

	r.root = &menu{
		title: "Employee Management System",
		exit:  "Exit",
		items: []menuItem{
			{label: "Employee Management", submenu: employeeMenu},
			{label: "Department Management", submenu: departmentMenu},
			r.item("View Statistics", "statistics", r.reports.Statistics),
			r.item("Export Report (xlsx)", "export_report", r.reports.Export),
		},
	}
	return r
}

// item применяет middleware к действию
func (r *Router) item(label, name string, action middleware.ActionFunc) menuItem {
	return menuItem{
		label: label,
		name:  name,
		action: middleware.Chain(name, action,
			middleware.Recoverer(r.logger),
			middleware.Logger(r.logger),
		),
	}
}

// Run крутит главное меню до выхода или конца ввода
func (r *Router) Run(ctx context.Context) error {
	if r.root == nil {
		r.Setup()
	}
	r.runMenu(ctx, r.root)
	r.view.Info("Thank you for using the Employee Management System!")
	return nil
}

// runMenu возвращает false, если сессия завершена
func (r *Router) runMenu(ctx context.Context, m *menu) bool {
	options := make([]string, 0, len(m.items)+1)
	for _, it := range m.items {
		options = append(options, it.label)
	}
	options = append(options, m.exit)

	for {
		if ctx.Err() != nil {
			return false
		}

		r.view.ShowMenu(m.title, options)
		raw, err := r.view.Ask("Enter your choice")
		if err != nil {
			return handleServiceError(r.view, r.logger, err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || choice < 1 || choice > len(options) {
			r.view.Error("Please enter a number between 1 and " + strconv.Itoa(len(options)) + ".")
			continue
		}
		if choice == len(options) {
			return true
		}

		it := m.items[choice-1]
		if it.submenu != nil {
			if !r.runMenu(ctx, it.submenu) {
				return false
			}
			continue
		}

		if err := it.action(ctx); err != nil {
			if !handleServiceError(r.view, r.logger, err) {
				return false
			}
		}
	}
}
