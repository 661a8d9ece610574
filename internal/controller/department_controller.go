package controller

import (
	"context"
	"fmt"

	"github.com/employee-manager/internal/domain"
	"github.com/employee-manager/internal/dto"
	"github.com/employee-manager/internal/service"
)

type DepartmentController struct {
	deptService service.DepartmentService
	view        View
}

func NewDepartmentController(deptService service.DepartmentService, view View) *DepartmentController {
	return &DepartmentController{
		deptService: deptService,
		view:        view,
	}
}

func (c *DepartmentController) List(ctx context.Context) error {
	depts, err := c.deptService.List(ctx)
	if err != nil {
		return err
	}
	c.view.ShowDepartments(depts)
	return nil
}

// Detail показывает отдел и его сотрудников
func (c *DepartmentController) Detail(ctx context.Context) error {
	id, err := askID(c.view, "Department ID")
	if err != nil {
		return err
	}

	dept, err := c.deptService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.view.ShowDepartment(dept)
	return nil
}

func (c *DepartmentController) Create(ctx context.Context) error {
	name, err := c.view.Ask("Department Name")
	if err != nil {
		return err
	}

	dept, err := c.deptService.Create(ctx, &dto.CreateDepartmentRequest{Name: name})
	if err != nil {
		return err
	}

	c.view.Success(fmt.Sprintf("Department '%s' added with ID %d.", dept.Name, dept.ID))
	return nil
}

func (c *DepartmentController) Update(ctx context.Context) error {
	id, err := askID(c.view, "Department ID")
	if err != nil {
		return err
	}

	dept, err := c.deptService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.view.ShowDepartment(dept)

	ok, err := c.view.Confirm("Do you want to rename this department?")
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotConfirmed
	}

	name, err := c.view.Ask("New Department Name")
	if err != nil {
		return err
	}

	updated, err := c.deptService.Update(ctx, id, &dto.UpdateDepartmentRequest{Name: name})
	if err != nil {
		return err
	}

	c.view.Success(fmt.Sprintf("Department renamed to '%s'.", updated.Name))
	return nil
}

func (c *DepartmentController) Delete(ctx context.Context) error {
	id, err := askID(c.view, "Department ID")
	if err != nil {
		return err
	}

	dept, err := c.deptService.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.view.ShowDepartment(dept)

	ok, err := c.view.Confirm("Are you sure you want to delete this department?")
	if err != nil {
		return err
	}

	deleted, err := c.deptService.Delete(ctx, id, ok)
	if err != nil {
		return err
	}

	c.view.Success(fmt.Sprintf("Department '%s' deleted successfully!", deleted.Name))
	return nil
}
