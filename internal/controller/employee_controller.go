package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/employee-manager/internal/domain"
	"github.com/employee-manager/internal/dto"
	"github.com/employee-manager/internal/service"
)

// clearValue - ввод, очищающий необязательное поле при обновлении
const clearValue = "-"

type EmployeeController struct {
	empService  service.EmployeeService
	deptService service.DepartmentService
	view        View
}

func NewEmployeeController(
	empService service.EmployeeService,
	deptService service.DepartmentService,
	view View,
) *EmployeeController {
	return &EmployeeController{
		empService:  empService,
		deptService: deptService,
		view:        view,
	}
}

func (c *EmployeeController) List(ctx context.Context) error {
	employees, err := c.empService.List(ctx)
	if err != nil {
		return err
	}
	c.view.ShowEmployees(employees)
	return nil
}

func (c *EmployeeController) Detail(ctx context.Context) error {
	id, err := askID(c.view, "Employee ID")
	if err != nil {
		return err
	}

	emp, err := c.empService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.view.ShowEmployee(emp)
	return nil
}

func (c *EmployeeController) Create(ctx context.Context) error {
	if err := c.showDepartments(ctx); err != nil {
		return err
	}

	var req dto.CreateEmployeeRequest
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Employee Name", &req.Name},
		{"Department ID (blank for none)", &req.DepartmentID},
		{"Salary (blank if unknown)", &req.Salary},
		{"Hire Date YYYY-MM-DD (blank if unknown)", &req.HireDate},
	}
	for _, f := range fields {
		value, err := c.view.Ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dest = value
	}

	emp, err := c.empService.Create(ctx, &req)
	if err != nil {
		return err
	}

	c.view.Success(fmt.Sprintf("Employee '%s' added with ID %d.", emp.Name, emp.ID))
	return nil
}

func (c *EmployeeController) Update(ctx context.Context) error {
	id, err := askID(c.view, "Employee ID")
	if err != nil {
		return err
	}

	emp, err := c.empService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.view.ShowEmployee(emp)

	ok, err := c.view.Confirm("Do you want to update this employee?")
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotConfirmed
	}

	if err := c.showDepartments(ctx); err != nil {
		return err
	}
	c.view.Info(fmt.Sprintf("Press Enter to keep the current value, '%s' to clear an optional field.", clearValue))

	var req dto.UpdateEmployeeRequest
	if req.Name, err = c.askChange("Employee Name", emp.Name, false); err != nil {
		return err
	}
	if req.DepartmentID, err = c.askChange("Department ID", formatOptional(emp.DepartmentID), true); err != nil {
		return err
	}
	if req.Salary, err = c.askChange("Salary", formatOptional(emp.Salary), true); err != nil {
		return err
	}
	if req.HireDate, err = c.askChange("Hire Date YYYY-MM-DD", formatOptional(emp.HireDate), true); err != nil {
		return err
	}

	if req.IsEmpty() {
		c.view.Info("Nothing to update.")
		return nil
	}

	updated, err := c.empService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	c.view.Success(fmt.Sprintf("Employee '%s' updated successfully!", updated.Name))
	return nil
}

// askChange: nil - оставить как есть, "" - очистить поле.
// Обязательное поле очистить нельзя.
func (c *EmployeeController) askChange(label, current string, clearable bool) (*string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}

	raw, err := c.view.Ask(prompt)
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(raw)
	switch {
	case value == "":
		return nil, nil
	case value == clearValue && clearable:
		empty := ""
		return &empty, nil
	case value == clearValue:
		return nil, fmt.Errorf("%w: %s is required and cannot be cleared", domain.ErrInvalidInput, strings.ToLower(label))
	}
	return &value, nil
}

func (c *EmployeeController) Delete(ctx context.Context) error {
	id, err := askID(c.view, "Employee ID")
	if err != nil {
		return err
	}

	emp, err := c.empService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.view.ShowEmployee(emp)

	ok, err := c.view.Confirm("Are you sure you want to delete this employee?")
	if err != nil {
		return err
	}

	deleted, err := c.empService.Delete(ctx, id, ok)
	if err != nil {
		return err
	}

	c.view.Success(fmt.Sprintf("Employee '%s' deleted successfully!", deleted.Name))
	return nil
}

func (c *EmployeeController) Search(ctx context.Context) error {
	term, err := c.view.Ask("Search by name")
	if err != nil {
		return err
	}

	employees, err := c.empService.Search(ctx, term)
	if err != nil {
		return err
	}
	c.view.ShowEmployees(employees)
	return nil
}

func (c *EmployeeController) showDepartments(ctx context.Context) error {
	depts, err := c.deptService.List(ctx)
	if err != nil {
		return err
	}
	c.view.ShowDepartments(depts)
	return nil
}

func formatOptional[T int64 | float64 | string](v *T) string {
	if v == nil {
		return ""
	}
	switch value := any(*v).(type) {
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
